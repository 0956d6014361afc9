package handler

import (
	"errors"
	"net/http"

	"github.com/emzola/bookmanager/service"
	"github.com/julienschmidt/httprouter"
)

type loginForm struct {
	Email string
}

func (h *Handler) showLoginHandler(w http.ResponseWriter, r *http.Request) {
	if h.contextGetSession(r).IsAuthenticated() {
		h.redirect(w, r, "/")
		return
	}
	td := h.newTemplateData(r)
	td.Title = "Iniciar sesión"
	td.Form = loginForm{}
	h.render(w, r, http.StatusOK, "login.html", td)
}

func (h *Handler) loginHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	email := r.PostForm.Get("email")
	err := h.service.Login(r.Context(), h.contextGetSession(r), email, r.PostForm.Get("password"))
	if h.canceled(r) {
		return
	}
	if err != nil {
		td := h.newTemplateData(r)
		td.Title = "Iniciar sesión"
		td.Form = loginForm{Email: email}
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			td.Errors = verr.Errors
		} else {
			td.Message = failureMessage(err)
		}
		h.render(w, r, failureStatus(err), "login.html", td)
		return
	}
	h.redirect(w, r, "/")
}

func (h *Handler) showRegisterHandler(w http.ResponseWriter, r *http.Request) {
	td := h.newTemplateData(r)
	td.Title = "Registrarse"
	td.Form = service.RegisterForm{}
	h.render(w, r, http.StatusOK, "register.html", td)
}

// registerHandler creates the account and sends the user to the login page;
// the account can't be used until its email is verified.
func (h *Handler) registerHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	form := service.RegisterForm{
		Name:         r.PostForm.Get("name"),
		Email:        r.PostForm.Get("email"),
		Password:     r.PostForm.Get("password"),
		Confirmation: r.PostForm.Get("confirmation"),
	}
	err := h.service.Register(r.Context(), h.contextGetSession(r), form)
	if h.canceled(r) {
		return
	}
	if err != nil {
		td := h.newTemplateData(r)
		td.Title = "Registrarse"
		td.Form = service.RegisterForm{Name: form.Name, Email: form.Email}
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			td.Errors = verr.Errors
		} else {
			td.Message = failureMessage(err)
		}
		h.render(w, r, failureStatus(err), "register.html", td)
		return
	}
	h.flash(r, "Registro exitoso. Revisa tu correo para verificar tu cuenta antes de iniciar sesión.")
	h.redirect(w, r, "/login")
}

func (h *Handler) logoutHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.contextGetSession(r).Logout(); err != nil {
		h.serverErrorResponse(w, r, err)
		return
	}
	h.flash(r, "Has cerrado sesión")
	h.redirect(w, r, "/")
}

// verifyEmailHandler shows the outcome of an email verification link and,
// on success, moves on to the login page after a few seconds.
func (h *Handler) verifyEmailHandler(w http.ResponseWriter, r *http.Request) {
	token := httprouter.ParamsFromContext(r.Context()).ByName("token")
	message, err := h.service.VerifyEmail(r.Context(), token)
	if h.canceled(r) {
		return
	}
	td := h.newTemplateData(r)
	td.Title = "Verificación de correo"
	if err != nil {
		if errors.Is(err, service.ErrRecordNotFound) {
			td.Message = "El enlace de verificación no es válido o ha caducado"
		} else {
			td.Message = failureMessage(err)
		}
		h.render(w, r, failureStatus(err), "verify_email.html", td)
		return
	}
	td.Message = message
	td.Redirect = "/login"
	h.render(w, r, http.StatusOK, "verify_email.html", td)
}
