package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/emzola/bookmanager/api"
	"github.com/emzola/bookmanager/internal/validator"
	"github.com/emzola/bookmanager/service"
	"github.com/julienschmidt/httprouter"
)

type envelope map[string]any

// readIDParam pulls a numeric url parameter from the request.
func (h *Handler) readIDParam(r *http.Request, name string) (int64, error) {
	params := httprouter.ParamsFromContext(r.Context())
	id, err := strconv.ParseInt(params.ByName(name), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New("invalid id parameter")
	}
	return id, nil
}

// readString returns a string value from the query string, or the provided
// default value if no matching key could be found.
func (h *Handler) readString(qs url.Values, key string, defaultValue string) string {
	s := strings.TrimSpace(qs.Get(key))
	if s == "" {
		return defaultValue
	}
	return s
}

// readInt reads a string value from the query string and converts it to an
// integer before returning. If no matching key could be found it returns the
// provided default value. If the value couldn't be converted to an integer,
// then we record an error message in the provided Validator instance.
func (h *Handler) readInt(qs url.Values, key string, defaultValue int, v *validator.Validator) int {
	s := qs.Get(key)
	if s == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		v.AddError(key, "debe ser un número entero")
		return defaultValue
	}
	return i
}

// encodeJSON serializes data to JSON and writes the appropriate HTTP status code and headers if necessary.
func (h *Handler) encodeJSON(w http.ResponseWriter, status int, data envelope, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}
	js = append(js, '\n')
	for k, v := range headers {
		w.Header()[k] = v
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(js)
	return nil
}

// redirect persists pending session changes and sends a 303 to target.
func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, target string) {
	if err := h.saveCookie(w, r); err != nil {
		h.serverErrorResponse(w, r, err)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h *Handler) saveCookie(w http.ResponseWriter, r *http.Request) error {
	if c := h.contextGetCookie(r); c != nil {
		return c.save(w, r)
	}
	return nil
}

func (h *Handler) flash(r *http.Request, message string) {
	if c := h.contextGetCookie(r); c != nil {
		c.addFlash(message)
	}
}

// canceled reports whether the client went away while the request was being
// served. Results fetched for such a request are dropped without a response.
func (h *Handler) canceled(r *http.Request) bool {
	return r.Context().Err() != nil
}

// failureMessage turns a failed operation into the message shown to the
// user. Rejections from the remote API are surfaced verbatim.
func failureMessage(err error) string {
	var apiErr *api.Error
	switch {
	case errors.As(err, &apiErr) && apiErr.IsNetwork():
		return "Error de red: no se pudo contactar con el servidor"
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.Is(err, service.ErrRecordNotFound):
		return "No encontrado"
	case errors.Is(err, service.ErrUploadsDisabled):
		return "La subida de portadas no está disponible"
	case errors.Is(err, service.ErrUnsupportedMediaType):
		return "La portada debe ser una imagen JPEG o PNG"
	case errors.Is(err, service.ErrContentTooLarge):
		return "La portada no puede superar los 5 MB"
	default:
		return "Ha ocurrido un error inesperado"
	}
}

// failureStatus picks the status of a page re-rendered after a failed operation.
func failureStatus(err error) int {
	var apiErr *api.Error
	switch {
	case errors.Is(err, service.ErrFailedValidation):
		return http.StatusUnprocessableEntity
	case errors.As(err, &apiErr) && apiErr.IsNetwork():
		return http.StatusBadGateway
	case errors.As(err, &apiErr) && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500:
		return apiErr.StatusCode
	case errors.As(err, &apiErr):
		return http.StatusBadGateway
	case errors.Is(err, service.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrNotPermitted):
		return http.StatusForbidden
	case errors.Is(err, service.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, service.ErrContentTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}
