package service

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/emzola/bookmanager/api"
	"github.com/emzola/bookmanager/config"
	"github.com/emzola/bookmanager/internal/jsonlog"
)

type Service interface {
	home
	books
	bookForms
	categories
	accounts
}

// Uploader stores an object and reports where it went. *manager.Uploader satisfies it.
type Uploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// service defines the screen layer sitting between the handlers and the remote API.
type service struct {
	config   config.Config
	logger   *jsonlog.Logger
	api      *api.Client
	uploader Uploader
}

// New creates a new instance of Service. uploader may be nil, in which case
// cover uploads are disabled.
func New(cfg config.Config, logger *jsonlog.Logger, client *api.Client, uploader Uploader) *service {
	return &service{
		config:   cfg,
		logger:   logger,
		api:      client,
		uploader: uploader,
	}
}
