package handler

import (
	"errors"
	"net/http"

	"github.com/emzola/bookmanager/service"
)

func (h *Handler) listCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	h.renderCategories(w, r, http.StatusOK, service.CategoryForm{}, nil)
}

// renderCategories renders the category list with the admin forms. formErr
// is the failure of the last create attempt, if any.
func (h *Handler) renderCategories(w http.ResponseWriter, r *http.Request, status int, form service.CategoryForm, formErr error) {
	categories, err := h.service.ListCategories(r.Context())
	if h.canceled(r) {
		return
	}
	td := h.newTemplateData(r)
	td.Title = "Categorías"
	td.Form = form
	if err != nil {
		td.ListError = failureMessage(err)
		if status == http.StatusOK {
			status = failureStatus(err)
		}
	}
	td.Categories = categories
	var verr *service.ValidationError
	switch {
	case formErr == nil:
	case errors.As(formErr, &verr):
		td.Errors = verr.Errors
	default:
		td.Message = failureMessage(formErr)
	}
	h.render(w, r, status, "categories.html", td)
}

func (h *Handler) createCategoryHandler(w http.ResponseWriter, r *http.Request) {
	h.saveCategory(w, r, 0)
}

func (h *Handler) updateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	categoryID, err := h.readIDParam(r, "categoryId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	h.saveCategory(w, r, categoryID)
}

func (h *Handler) saveCategory(w http.ResponseWriter, r *http.Request, categoryID int64) {
	if err := r.ParseForm(); err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	form := service.CategoryForm{
		Name:        r.PostForm.Get("name"),
		Description: r.PostForm.Get("description"),
	}
	_, err := h.service.SaveCategory(r.Context(), categoryID, form)
	if h.canceled(r) {
		return
	}
	if err != nil {
		if errors.Is(err, service.ErrRecordNotFound) {
			h.recordNotFoundResponse(w, r, err)
			return
		}
		h.renderCategories(w, r, failureStatus(err), form, err)
		return
	}
	if categoryID == 0 {
		h.flash(r, "Categoría creada correctamente")
	} else {
		h.flash(r, "Categoría actualizada correctamente")
	}
	h.redirect(w, r, "/categories")
}

func (h *Handler) deleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	categoryID, err := h.readIDParam(r, "categoryId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	err = h.service.DeleteCategory(r.Context(), categoryID)
	if h.canceled(r) {
		return
	}
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.recordNotFoundResponse(w, r, err)
		default:
			h.renderCategories(w, r, failureStatus(err), service.CategoryForm{}, err)
		}
		return
	}
	h.flash(r, "Categoría eliminada correctamente")
	h.redirect(w, r, "/categories")
}
