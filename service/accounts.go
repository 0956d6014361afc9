package service

import (
	"context"
	"strings"

	"github.com/emzola/bookmanager/data"
	"github.com/emzola/bookmanager/internal/validator"
	"github.com/emzola/bookmanager/session"
)

// DefaultVerifiedMessage is shown when the API confirms a verification without a message.
const DefaultVerifiedMessage = "Correo verificado correctamente. Ya puedes iniciar sesión."

type accounts interface {
	Login(ctx context.Context, sess *session.Session, email, password string) error
	Register(ctx context.Context, sess *session.Session, form RegisterForm) error
	VerifyEmail(ctx context.Context, token string) (string, error)
}

// RegisterForm holds the register form inputs.
type RegisterForm struct {
	Name         string
	Email        string
	Password     string
	Confirmation string
}

// Login service checks the credentials are present and logs the session in.
func (s *service) Login(ctx context.Context, sess *session.Session, email, password string) error {
	email = strings.TrimSpace(email)
	v := validator.New()
	data.ValidateEmail(v, email)
	data.ValidatePasswordPlaintext(v, password)
	if !v.Valid() {
		return failedValidation(v.Errors)
	}
	return sess.Login(ctx, email, password)
}

// Register service validates the form and registers the account. The
// session stays anonymous until the user verifies their email and logs in.
func (s *service) Register(ctx context.Context, sess *session.Session, form RegisterForm) error {
	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)
	v := validator.New()
	if data.ValidateRegistration(v, form.Name, form.Email, form.Password, form.Confirmation); !v.Valid() {
		return failedValidation(v.Errors)
	}
	return sess.Register(ctx, form.Name, form.Email, form.Password)
}

// VerifyEmail service confirms an email verification token and returns the
// message to show the user.
func (s *service) VerifyEmail(ctx context.Context, token string) (string, error) {
	res, err := s.api.Auth().VerifyEmail(ctx, token)
	if err != nil {
		return "", translate(err)
	}
	if res.Message != "" {
		return res.Message, nil
	}
	return DefaultVerifiedMessage, nil
}
