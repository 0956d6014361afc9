package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/emzola/bookmanager/api"
	"github.com/emzola/bookmanager/clients"
	"github.com/emzola/bookmanager/config"
	"github.com/emzola/bookmanager/handler"
	"github.com/emzola/bookmanager/internal/jsonlog"
	"github.com/emzola/bookmanager/internal/metrics"
	"github.com/emzola/bookmanager/service"
	"github.com/gorilla/sessions"
	"github.com/jellydator/ttlcache/v3"
	"golang.org/x/time/rate"
)

// app defines the application's layers and shared resources.
type app struct {
	config  config.Config
	service service.Service
	handler *handler.Handler
}

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG"), "Path to a YAML configuration file")
	flag.Parse()

	logger := jsonlog.New(os.Stdout, jsonlog.LevelInfo)

	// Initialize configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	level, err := jsonlog.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	logger = jsonlog.New(os.Stdout, level).With(map[string]string{"env": cfg.Server.Env})

	// Remote API client, observed by Prometheus
	recorder := metrics.NewPrometheusRecorder()
	client := api.New(cfg.API.BaseURL, clients.NewHTTPClient(cfg.API.Timeout), api.WithRecorder(recorder))

	// Optional cover uploads
	var uploader service.Uploader
	if cfg.UploadsEnabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		s3Client, err := clients.NewS3Client(ctx, cfg)
		cancel()
		if err != nil {
			logger.PrintFatal(err, nil)
		}
		uploader = clients.NewUploader(s3Client)
		logger.PrintInfo("cover uploads enabled", map[string]string{"bucket": cfg.S3.Bucket})
	}

	// Signed cookie holding the session credentials
	cookies := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	cookies.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   cfg.Session.MaxAge,
		HttpOnly: true,
		Secure:   cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	}

	// Other shared resources: waitgroup and per-client rate limiters
	var wg sync.WaitGroup
	limiters := ttlcache.New(ttlcache.WithTTL[string, *rate.Limiter](3 * time.Minute))
	wg.Add(1)
	go func() {
		defer wg.Done()
		limiters.Start()
	}()

	// Application layers
	svc := service.New(cfg, logger, client, uploader)
	h, err := handler.New(cfg, logger, limiters, svc, client.Auth(), cookies, recorder.Handler())
	if err != nil {
		logger.PrintFatal(err, nil)
	}

	// Instantiate application
	app := &app{
		config:  cfg,
		service: svc,
		handler: h,
	}

	// Start HTTP server
	err = app.serve(&wg, logger, limiters.Stop)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
}
