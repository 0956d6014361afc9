package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/emzola/bookmanager/data/dto"
)

// AuthAPI groups the authentication endpoints.
type AuthAPI struct {
	c *Client
}

// Auth returns the authentication endpoints.
func (c *Client) Auth() AuthAPI {
	return AuthAPI{c: c}
}

// Register creates an account. The account stays inactive until its email is verified.
func (a AuthAPI) Register(ctx context.Context, body dto.RegisterRequestBody) (*Response[json.RawMessage], error) {
	return Do[json.RawMessage](ctx, a.c, Request{Method: http.MethodPost, Path: "/auth/register", Body: body})
}

// Login exchanges credentials for the user and an access/refresh token pair.
func (a AuthAPI) Login(ctx context.Context, body dto.LoginRequestBody) (*Response[dto.AuthResponse], error) {
	return Do[dto.AuthResponse](ctx, a.c, Request{Method: http.MethodPost, Path: "/auth/login", Body: body})
}

// VerifyEmail activates the account the token was issued for.
func (a AuthAPI) VerifyEmail(ctx context.Context, token string) (*Response[json.RawMessage], error) {
	return Do[json.RawMessage](ctx, a.c, Request{Method: http.MethodGet, Path: "/auth/verify-email/" + url.PathEscape(token)})
}
