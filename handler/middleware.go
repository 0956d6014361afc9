package handler

import (
	"crypto/sha256"
	"crypto/subtle"
	"expvar"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"

	"github.com/emzola/bookmanager/internal/storage"
	"github.com/emzola/bookmanager/session"
	"github.com/felixge/httpsnoop"
	"github.com/google/uuid"
	"github.com/jellydator/ttlcache/v3"
	"golang.org/x/time/rate"
)

// recoverPanic middleware recovers from panics and will always be run in the event of a panic.
func (h *Handler) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				h.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// requestID middleware tags every request with an id that is echoed in the
// response and attached to error logs.
func (h *Handler) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, h.contextSetRequestID(r, id))
	})
}

// rateLimit middleware implements IP-based rate limiting. Limiters live in a
// TTL cache so clients that go quiet are forgotten.
func (h *Handler) rateLimit(next http.Handler) http.Handler {
	var mu sync.Mutex
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Only carry out rate limiting check if rate limiting is enabled
		if h.config.Limiter.Enabled && h.limiters != nil {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				h.serverErrorResponse(w, r, err)
				return
			}
			mu.Lock()
			var limiter *rate.Limiter
			if item := h.limiters.Get(ip); item != nil {
				limiter = item.Value()
			} else {
				limiter = rate.NewLimiter(rate.Limit(h.config.Limiter.RPS), h.config.Limiter.Burst)
				h.limiters.Set(ip, limiter, ttlcache.DefaultTTL)
			}
			mu.Unlock()
			if !limiter.Allow() {
				h.rateLimitExceededResponse(w, r)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// loadSession middleware restores the session holder from the signed cookie
// and binds both the holder and its credential store to the request context.
func (h *Handler) loadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := h.cookies.Get(r, h.config.Session.Name)
		if err != nil {
			// A cookie signed with another key decodes to a fresh session.
			h.logger.PrintWarn("discarding unreadable session cookie", map[string]string{
				"request_id": h.contextGetRequestID(r),
				"error":      err.Error(),
			})
		}
		store := &cookieStore{sess: sess}
		if err != nil {
			store.dirty = true
		}
		holder := session.New(h.auth, store, h.logger)
		ctx := storage.NewContext(r.Context(), store)
		ctx = session.NewContext(ctx, holder)
		r = h.contextSetCookie(r.WithContext(ctx), store)
		if err := holder.Init(r.Context()); err != nil {
			h.serverErrorResponse(w, r, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireAuthenticatedUser middleware guards a screen. While the session is
// still being restored it renders a placeholder that reloads itself. An
// anonymous visitor is sent to the login page and the attempted destination
// is not remembered.
func (h *Handler) requireAuthenticatedUser(next http.HandlerFunc) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch h.contextGetSession(r).Status() {
		case session.StatusLoading:
			td := h.newTemplateData(r)
			td.Redirect = r.URL.RequestURI()
			h.render(w, r, http.StatusOK, "loading.html", td)
			return
		case session.StatusAnonymous:
			h.redirect(w, r, "/login")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireAdmin middleware checks that the user is authenticated and an administrator.
func (h *Handler) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	fn := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.contextGetUser(r).IsAdmin() {
			h.notPermittedResponse(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
	return h.requireAuthenticatedUser(fn)
}

// metrics middleware exposes request-level metrics.
func (h *Handler) metrics(next http.Handler) http.Handler {
	if h.config.Metrics.Enabled {
		totalRequestsReceived := expvar.NewInt("total_requests_received")
		totalResponsesSent := expvar.NewInt("total_responses_sent")
		totalProcessingTimeMicrosecond := expvar.NewInt("total_processing_time_μs")
		totalResponsesSentBystatus := expvar.NewMap("total_responses_sent_by_status")
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			totalRequestsReceived.Add(1)
			metrics := httpsnoop.CaptureMetrics(next, w, r)
			totalResponsesSent.Add(1)
			totalProcessingTimeMicrosecond.Add(metrics.Duration.Microseconds())
			totalResponsesSentBystatus.Add(strconv.Itoa(metrics.Code), 1)
		})
	}
	return next
}

// basicAuth middleware implements basic authentication for the /debug/vars endpoint.
func (h *Handler) basicAuth(next http.HandlerFunc) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if ok && h.config.BasicAuth.Username != "" {
			usernameHash := sha256.Sum256([]byte(username))
			passwordHash := sha256.Sum256([]byte(password))
			expectedUsernameHash := sha256.Sum256([]byte(h.config.BasicAuth.Username))
			expectedPasswordHash := sha256.Sum256([]byte(h.config.BasicAuth.Password))
			usernameMatch := (subtle.ConstantTimeCompare(usernameHash[:], expectedUsernameHash[:]) == 1)
			passwordMatch := (subtle.ConstantTimeCompare(passwordHash[:], expectedPasswordHash[:]) == 1)
			if usernameMatch && passwordMatch {
				next.ServeHTTP(w, r)
				return
			}
		}
		w.Header().Set("WWW-Authenticate", `Basic realm="restricted", charset="UTF-8"`)
		h.invalidCredentialsResponse(w, r)
	})
}
