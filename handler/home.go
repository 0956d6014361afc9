package handler

import "net/http"

func (h *Handler) homeHandler(w http.ResponseWriter, r *http.Request) {
	shelves, err := h.service.Home(r.Context())
	if h.canceled(r) {
		return
	}
	if err != nil {
		h.serverErrorResponse(w, r, err)
		return
	}
	td := h.newTemplateData(r)
	td.Title = "Inicio"
	td.Shelves = shelves
	h.render(w, r, http.StatusOK, "home.html", td)
}
