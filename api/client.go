// Package api is the access layer for the remote book API. Every call returns a
// typed envelope or an *Error; callers must treat a failed call as one that did
// not happen.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/emzola/bookmanager/data"
	"github.com/emzola/bookmanager/internal/metrics"
	"github.com/emzola/bookmanager/internal/storage"
)

// DefaultBaseURL is the local development address of the remote API.
const DefaultBaseURL = "http://localhost:3000/api"

const maxResponseBytes = 10 << 20

// Client issues requests against the remote API.
type Client struct {
	baseURL  string
	http     *http.Client
	recorder metrics.Recorder
}

// Option configures a Client.
type Option func(*Client)

// WithRecorder observes every call with r.
func WithRecorder(r metrics.Recorder) Option {
	return func(c *Client) {
		c.recorder = r
	}
}

// New returns a client for the API rooted at baseURL.
func New(baseURL string, httpClient *http.Client, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     httpClient,
		recorder: metrics.Nop{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the root every path is resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request describes one call. When RequiresAuth is set the access token is
// read from the credential store bound to the call's context.
type Request struct {
	Method       string
	Path         string
	Query        url.Values
	Body         any
	Header       http.Header
	RequiresAuth bool
}

// Response is the envelope every endpoint answers with.
type Response[T any] struct {
	Success    bool             `json:"success"`
	Data       T                `json:"data"`
	Message    string           `json:"message,omitempty"`
	Pagination *data.Pagination `json:"pagination,omitempty"`
}

// envelope is the wire form of Response; a missing "success" field is not a failure.
type envelope[T any] struct {
	Success    *bool            `json:"success"`
	Data       T                `json:"data"`
	Message    string           `json:"message"`
	Pagination *data.Pagination `json:"pagination"`
}

// Do issues req and decodes the envelope's data as T.
func Do[T any](ctx context.Context, c *Client, req Request) (*Response[T], error) {
	if req.Method == "" {
		req.Method = http.MethodGet
	}
	start := time.Now()
	status := 0
	defer func() {
		c.recorder.ObserveRequest(family(req.Path), req.Method, status, time.Since(start))
	}()

	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	res, err := c.http.Do(httpReq)
	if err != nil {
		return nil, networkError(err)
	}
	defer res.Body.Close()
	status = res.StatusCode

	body, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBytes))
	if err != nil {
		return nil, networkError(err)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, rejectedError(res.StatusCode, body)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return &Response[T]{Success: true}, nil
	}
	var env envelope[T]
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if env.Success != nil && !*env.Success {
		e := &Error{Message: env.Message, StatusCode: res.StatusCode}
		if e.Message == "" {
			e.Message = defaultErrorMessage
		}
		return nil, e
	}
	return &Response[T]{
		Success:    true,
		Data:       env.Data,
		Message:    env.Message,
		Pagination: env.Pagination,
	}, nil
}

func (c *Client) newRequest(ctx context.Context, req Request) (*http.Request, error) {
	u := c.baseURL + req.Path
	if len(req.Query) > 0 {
		u += "?" + req.Query.Encode()
	}
	var body io.Reader
	if req.Body != nil && req.Method != http.MethodGet {
		js, err := json.Marshal(req.Body)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(js)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u, body)
	if err != nil {
		return nil, err
	}
	for k, v := range req.Header {
		httpReq.Header[k] = append([]string(nil), v...)
	}
	// Set last so caller headers can't drop it.
	httpReq.Header.Set("Content-Type", "application/json")
	if req.RequiresAuth {
		if store, ok := storage.FromContext(ctx); ok {
			if token, ok := store.Get(storage.KeyAccessToken); ok && token != "" {
				httpReq.Header.Set("Authorization", "Bearer "+token)
			}
		}
	}
	return httpReq, nil
}

// family returns the first path segment, e.g. "books" for "/books/my/books".
func family(path string) string {
	path = strings.TrimPrefix(path, "/")
	if i := strings.IndexAny(path, "/?"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "root"
	}
	return path
}
