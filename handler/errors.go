package handler

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
)

func (h *Handler) logError(r *http.Request, err error) {
	h.logger.PrintError(err, map[string]string{
		"request_method": r.Method,
		"request_url":    r.URL.String(),
		"request_id":     h.contextGetRequestID(r),
	})
}

// errorResponse renders the error page with the given status and message.
func (h *Handler) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	td := h.newTemplateData(r)
	td.Title = http.StatusText(status)
	td.Message = message
	h.render(w, r, status, "error.html", td)
}

func (h *Handler) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	h.logError(r, err)
	message := "El servidor encontró un problema y no pudo procesar la solicitud"
	h.errorResponse(w, r, http.StatusInternalServerError, message)
}

// upstreamErrorResponse reports a failed call to the remote API.
func (h *Handler) upstreamErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	h.logError(r, err)
	h.errorResponse(w, r, failureStatus(err), failureMessage(err))
}

func (h *Handler) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	message := "El recurso solicitado no existe"
	h.errorResponse(w, r, http.StatusNotFound, message)
}

// recordNotFoundResponse answers a 404 from the remote API with the API's
// own message.
func (h *Handler) recordNotFoundResponse(w http.ResponseWriter, r *http.Request, err error) {
	h.errorResponse(w, r, http.StatusNotFound, failureMessage(err))
}

// failedValidationResponse reports malformed query parameters.
func (h *Handler) failedValidationResponse(w http.ResponseWriter, r *http.Request, errors map[string]string) {
	keys := make([]string, 0, len(errors))
	for k := range errors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+errors[k])
	}
	h.errorResponse(w, r, http.StatusUnprocessableEntity, strings.Join(parts, "; "))
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	message := fmt.Sprintf("El método %s no está permitido para este recurso", r.Method)
	h.errorResponse(w, r, http.StatusMethodNotAllowed, message)
}

func (h *Handler) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	h.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (h *Handler) notPermittedResponse(w http.ResponseWriter, r *http.Request) {
	message := "No tienes permiso para realizar esta acción"
	h.errorResponse(w, r, http.StatusForbidden, message)
}

func (h *Handler) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request) {
	message := "Demasiadas solicitudes, inténtalo más tarde"
	h.errorResponse(w, r, http.StatusTooManyRequests, message)
}

// invalidCredentialsResponse answers a failed basic auth challenge in plain
// text; it is only used outside the session middleware.
func (h *Handler) invalidCredentialsResponse(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "invalid authentication credentials", http.StatusUnauthorized)
}
