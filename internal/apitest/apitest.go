// Package apitest provides an in-process stand-in for the remote catalog API.
package apitest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/emzola/bookmanager/api"
)

// Call is a request received by the fake API.
type Call struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   string
}

// Server answers canned responses keyed by method and path, and records every call.
type Server struct {
	srv    *httptest.Server
	mu     sync.Mutex
	routes map[string]http.HandlerFunc
	calls  []Call
}

// New starts a fake API that is closed when the test ends. Unknown routes
// answer 404 with the API's not-found envelope.
func New(t testing.TB) *Server {
	t.Helper()
	s := &Server{routes: make(map[string]http.HandlerFunc)}
	s.srv = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.srv.Close)
	return s
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	path := strings.TrimPrefix(r.URL.Path, "/api")
	s.mu.Lock()
	s.calls = append(s.calls, Call{
		Method: r.Method,
		Path:   path,
		Query:  r.URL.RawQuery,
		Header: r.Header.Clone(),
		Body:   string(body),
	})
	fn, ok := s.routes[r.Method+" "+path]
	s.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"success":false,"error":"Not found"}`)
		return
	}
	fn(w, r)
}

// Handle registers a canned response.
func (s *Server) Handle(method, path string, status int, body string) {
	s.HandleFunc(method, path, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		io.WriteString(w, body)
	})
}

// HandleFunc registers a handler for one route.
func (s *Server) HandleFunc(method, path string, fn http.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[method+" "+path] = fn
}

// BaseURL is the API root to hand to api.New.
func (s *Server) BaseURL() string {
	return s.srv.URL + "/api"
}

// Client returns an access-layer client bound to the fake API.
func (s *Server) Client(opts ...api.Option) *api.Client {
	return api.New(s.BaseURL(), s.srv.Client(), opts...)
}

// Calls returns every call received so far.
func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// CallsTo returns the calls received for one route.
func (s *Server) CallsTo(method, path string) []Call {
	var out []Call
	for _, c := range s.Calls() {
		if c.Method == method && c.Path == path {
			out = append(out, c)
		}
	}
	return out
}

// Close shuts the fake API down early, turning later calls into transport failures.
func (s *Server) Close() {
	s.srv.Close()
}
