package ctrl

import (
	"context"
	"io"
	"time"

	"github.com/JMURv/gate-access/internal/auth"
	"github.com/JMURv/gate-access/internal/config"
	"github.com/JMURv/gate-access/internal/repo/s3"
	"github.com/JMURv/gate-access/internal/smtp"
)

type AppRepo interface {
	deviceRepo
	scanRepo
	ticketRepo
}

type AppCtrl interface {
	deviceCtrl
	scanCtrl
	ticketCtrl
}

type CacheService interface {
	io.Closer
	GetToStruct(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, t time.Duration, key string, val any)
	Delete(ctx context.Context, key string)
	InvalidateKeysByPattern(ctx context.Context, pattern string)
}

type Controller struct {
	au    auth.Core
	repo  AppRepo
	cache CacheService
	s3    s3.Service
	email smtp.EmailService
	scan  config.ScanConfig
}

func New(
	au auth.Core,
	repo AppRepo,
	cache CacheService,
	s3 s3.Service,
	email smtp.EmailService,
	scan config.ScanConfig,
) *Controller {
	return &Controller{
		au:    au,
		repo:  repo,
		cache: cache,
		s3:    s3,
		email: email,
		scan:  scan,
	}
}
