// Package session holds the authenticated identity of one client: the current
// user and the credentials persisted in its durable storage.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/emzola/bookmanager/api"
	"github.com/emzola/bookmanager/data"
	"github.com/emzola/bookmanager/data/dto"
	"github.com/emzola/bookmanager/internal/jsonlog"
	"github.com/emzola/bookmanager/internal/storage"
	"github.com/golang-jwt/jwt/v4"
)

// Status is the state of the session holder.
type Status int8

const (
	// StatusLoading means the persisted credentials haven't been restored yet;
	// guards must not decide anything while in this state.
	StatusLoading Status = iota
	StatusAnonymous
	StatusAuthenticated
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusAnonymous:
		return "anonymous"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return ""
	}
}

var ErrTokenExpired = errors.New("access token expired")

// AuthClient is the part of the access layer the session needs.
type AuthClient interface {
	Register(ctx context.Context, body dto.RegisterRequestBody) (*api.Response[json.RawMessage], error)
	Login(ctx context.Context, body dto.LoginRequestBody) (*api.Response[dto.AuthResponse], error)
}

// Session is the auth state holder. It is created in StatusLoading and
// becomes usable once Init has run.
type Session struct {
	mu     sync.RWMutex
	status Status
	user   *data.User
	auth   AuthClient
	store  storage.Store
	logger *jsonlog.Logger
	now    func() time.Time
}

// New returns a session holder bound to a credential store.
func New(auth AuthClient, store storage.Store, logger *jsonlog.Logger) *Session {
	return &Session{
		status: StatusLoading,
		auth:   auth,
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Init restores the session from the persisted credentials. A missing token
// leaves the session anonymous. A stored user that can't be decoded, or a JWT
// access token past its expiry, clears the credentials.
func (s *Session) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	token, ok := s.store.Get(storage.KeyAccessToken)
	if !ok || token == "" {
		s.status = StatusAnonymous
		s.user = nil
		return nil
	}
	if err := s.checkExpiry(token); err != nil {
		s.status = StatusAnonymous
		s.user = nil
		return s.clear()
	}
	raw, ok := s.store.Get(storage.KeyUser)
	var user data.User
	if !ok || json.Unmarshal([]byte(raw), &user) != nil {
		s.logger.PrintWarn("discarding credentials without a readable user", nil)
		s.status = StatusAnonymous
		s.user = nil
		return s.clear()
	}
	s.user = &user
	s.status = StatusAuthenticated
	return nil
}

// checkExpiry rejects JWT access tokens whose exp claim has passed. Opaque
// tokens are accepted; the remote API decides whether they are still valid.
func (s *Session) checkExpiry(token string) error {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return nil
	}
	if claims.ExpiresAt != nil && !claims.ExpiresAt.After(s.now()) {
		return ErrTokenExpired
	}
	return nil
}

// Register creates an account. It never establishes a session: the account
// must be verified by email before the user can log in.
func (s *Session) Register(ctx context.Context, name, email, password string) error {
	_, err := s.auth.Register(ctx, dto.RegisterRequestBody{Name: name, Email: email, Password: password})
	return err
}

// Login authenticates against the remote API and persists the returned credentials.
func (s *Session) Login(ctx context.Context, email, password string) error {
	res, err := s.auth.Login(ctx, dto.LoginRequestBody{Email: email, Password: password})
	if err != nil {
		return err
	}
	user := res.Data.User
	js, err := json.Marshal(user)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, kv := range [][2]string{
		{storage.KeyAccessToken, res.Data.AccessToken},
		{storage.KeyRefreshToken, res.Data.RefreshToken},
		{storage.KeyUser, string(js)},
	} {
		if err := s.store.Set(kv[0], kv[1]); err != nil {
			return err
		}
	}
	s.user = &user
	s.status = StatusAuthenticated
	return nil
}

// Logout clears the persisted credentials and the current user.
func (s *Session) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.status = StatusAnonymous
	return s.clear()
}

func (s *Session) clear() error {
	return s.store.Delete(storage.KeyAccessToken, storage.KeyRefreshToken, storage.KeyUser)
}

// User returns a copy of the current user, or nil when nobody is logged in.
func (s *Session) User() *data.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

func (s *Session) IsAuthenticated() bool {
	return s.Status() == StatusAuthenticated
}

type contextKey string

const sessionContextKey = contextKey("session")

// NewContext returns a copy of ctx carrying the session.
func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, s)
}

// FromContext returns the session carried by ctx, or nil.
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(sessionContextKey).(*Session)
	return s
}
