package session

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/emzola/bookmanager/api"
	"github.com/emzola/bookmanager/internal/jsonlog"
	"github.com/emzola/bookmanager/internal/storage"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const loginResponse = `{
	"success": true,
	"data": {
		"user": {"id": 7, "name": "Ana", "email": "ana@example.com", "role": "user", "isVerified": true},
		"accessToken": "access-7",
		"refreshToken": "refresh-7"
	}
}`

func newAuthServer(t *testing.T) (api.AuthAPI, *int) {
	t.Helper()
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		switch r.URL.Path {
		case "/auth/login":
			if body["password"] != "secret1" {
				w.WriteHeader(http.StatusUnauthorized)
				io.WriteString(w, `{"success":false,"error":"Credenciales inválidas"}`)
				return
			}
			io.WriteString(w, loginResponse)
		case "/auth/register":
			w.WriteHeader(http.StatusCreated)
			io.WriteString(w, `{"success":true,"message":"Usuario registrado","data":{"id":8}}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return api.New(srv.URL, srv.Client()).Auth(), &calls
}

func newLogger() *jsonlog.Logger {
	return jsonlog.New(io.Discard, jsonlog.LevelInfo)
}

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	auth, _ := newAuthServer(t)
	store := storage.NewMemory()
	s := New(auth, store, newLogger())

	assert.Equal(t, StatusLoading, s.Status())
	require.NoError(t, s.Init(ctx))
	assert.Equal(t, StatusAnonymous, s.Status())
	assert.Nil(t, s.User())

	require.NoError(t, s.Login(ctx, "ana@example.com", "secret1"))
	assert.True(t, s.IsAuthenticated())
	require.NotNil(t, s.User())
	assert.Equal(t, int64(7), s.User().ID)
	token, _ := store.Get(storage.KeyAccessToken)
	refresh, _ := store.Get(storage.KeyRefreshToken)
	assert.Equal(t, "access-7", token)
	assert.Equal(t, "refresh-7", refresh)

	// A fresh holder over the same store restores the session.
	restored := New(auth, store, newLogger())
	require.NoError(t, restored.Init(ctx))
	assert.True(t, restored.IsAuthenticated())
	assert.Equal(t, "Ana", restored.User().Name)

	require.NoError(t, s.Logout())
	assert.Equal(t, StatusAnonymous, s.Status())
	assert.Nil(t, s.User())
	for _, key := range []string{storage.KeyAccessToken, storage.KeyRefreshToken, storage.KeyUser} {
		_, ok := store.Get(key)
		assert.False(t, ok, "expected %s to be cleared", key)
	}

	afterLogout := New(auth, store, newLogger())
	require.NoError(t, afterLogout.Init(ctx))
	assert.False(t, afterLogout.IsAuthenticated())
}

func TestSessionLoginFailure(t *testing.T) {
	ctx := context.Background()
	auth, _ := newAuthServer(t)
	store := storage.NewMemory()
	s := New(auth, store, newLogger())
	require.NoError(t, s.Init(ctx))

	err := s.Login(ctx, "ana@example.com", "wrong")
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Credenciales inválidas", apiErr.Message)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.False(t, s.IsAuthenticated())
	_, ok := store.Get(storage.KeyAccessToken)
	assert.False(t, ok)
}

func TestSessionRegisterDoesNotLogIn(t *testing.T) {
	ctx := context.Background()
	auth, calls := newAuthServer(t)
	store := storage.NewMemory()
	s := New(auth, store, newLogger())
	require.NoError(t, s.Init(ctx))

	require.NoError(t, s.Register(ctx, "Luis", "luis@example.com", "secret1"))
	assert.Equal(t, 1, *calls)
	assert.False(t, s.IsAuthenticated())
	_, ok := store.Get(storage.KeyAccessToken)
	assert.False(t, ok)
}

func TestSessionInitDiscardsBadCredentials(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	sign := func(exp time.Time) string {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
		}).SignedString([]byte("test-key"))
		require.NoError(t, err)
		return tok
	}
	user := `{"id":7,"name":"Ana","role":"user"}`

	tests := []struct {
		name  string
		token string
		user  string
		want  Status
	}{
		{"expired JWT", sign(now.Add(-time.Minute)), user, StatusAnonymous},
		{"valid JWT", sign(now.Add(time.Hour)), user, StatusAuthenticated},
		{"opaque token", "opaque-token", user, StatusAuthenticated},
		{"corrupt user", "opaque-token", `{"id":`, StatusAnonymous},
		{"missing user", "opaque-token", "", StatusAnonymous},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := storage.NewMemory()
			store.Set(storage.KeyAccessToken, tt.token)
			store.Set(storage.KeyRefreshToken, "refresh")
			if tt.user != "" {
				store.Set(storage.KeyUser, tt.user)
			}
			s := New(nil, store, newLogger())
			s.now = func() time.Time { return now }
			require.NoError(t, s.Init(ctx))
			assert.Equal(t, tt.want, s.Status())
			_, tokenKept := store.Get(storage.KeyAccessToken)
			assert.Equal(t, tt.want == StatusAuthenticated, tokenKept)
		})
	}
}

func TestContext(t *testing.T) {
	assert.Nil(t, FromContext(context.Background()))
	s := New(nil, storage.NewMemory(), newLogger())
	assert.Same(t, s, FromContext(NewContext(context.Background(), s)))
}
