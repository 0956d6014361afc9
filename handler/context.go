package handler

import (
	"context"
	"net/http"

	"github.com/emzola/bookmanager/data"
	"github.com/emzola/bookmanager/session"
)

// Type contextKey is a custom contextKey type, with the underlying type string.
// This is necessary to prevent name collisions with external packages.
type contextKey string

const (
	requestIDContextKey = contextKey("requestID")
	cookieContextKey    = contextKey("cookie")
)

func (h *Handler) contextSetRequestID(r *http.Request, id string) *http.Request {
	ctx := context.WithValue(r.Context(), requestIDContextKey, id)
	return r.WithContext(ctx)
}

func (h *Handler) contextGetRequestID(r *http.Request) string {
	id, _ := r.Context().Value(requestIDContextKey).(string)
	return id
}

func (h *Handler) contextSetCookie(r *http.Request, c *cookieStore) *http.Request {
	ctx := context.WithValue(r.Context(), cookieContextKey, c)
	return r.WithContext(ctx)
}

// contextGetCookie returns the cookie-backed credential store of the request,
// or nil on routes served without the session middleware.
func (h *Handler) contextGetCookie(r *http.Request) *cookieStore {
	c, _ := r.Context().Value(cookieContextKey).(*cookieStore)
	return c
}

// contextGetSession retrieves the session holder from the request context. The
// only time that we'll use this helper is when we logically expect there to be
// a holder, and if it doesn't exist it will firmly be an 'unexpected' error.
func (h *Handler) contextGetSession(r *http.Request) *session.Session {
	s := session.FromContext(r.Context())
	if s == nil {
		panic("missing session value in request context")
	}
	return s
}

// contextGetUser returns the logged in user, or nil for anonymous visitors.
func (h *Handler) contextGetUser(r *http.Request) *data.User {
	s := session.FromContext(r.Context())
	if s == nil {
		return nil
	}
	return s.User()
}
