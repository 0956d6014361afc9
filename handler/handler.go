package handler

import (
	"html/template"
	"net/http"

	"github.com/emzola/bookmanager/config"
	"github.com/emzola/bookmanager/internal/jsonlog"
	"github.com/emzola/bookmanager/service"
	"github.com/emzola/bookmanager/session"
	"github.com/gorilla/sessions"
	"github.com/jellydator/ttlcache/v3"
	"golang.org/x/time/rate"
)

// Handler defines Handler layer.
type Handler struct {
	config    config.Config
	logger    *jsonlog.Logger
	limiters  *ttlcache.Cache[string, *rate.Limiter]
	service   service.Service
	auth      session.AuthClient
	cookies   sessions.Store
	promHTTP  http.Handler
	templates map[string]*template.Template
}

// New creates a new instance of Handler. metricsHandler serves /metrics and
// may be nil.
func New(cfg config.Config, logger *jsonlog.Logger, limiters *ttlcache.Cache[string, *rate.Limiter], svc service.Service, auth session.AuthClient, cookies sessions.Store, metricsHandler http.Handler) (*Handler, error) {
	templates, err := newTemplateCache()
	if err != nil {
		return nil, err
	}
	if metricsHandler == nil {
		metricsHandler = http.NotFoundHandler()
	}
	return &Handler{
		config:    cfg,
		logger:    logger,
		limiters:  limiters,
		service:   svc,
		auth:      auth,
		cookies:   cookies,
		promHTTP:  metricsHandler,
		templates: templates,
	}, nil
}
