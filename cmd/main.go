package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/JMURv/gate-access/docs"
	"github.com/JMURv/gate-access/internal/auth"
	"github.com/JMURv/gate-access/internal/cache/redis"
	"github.com/JMURv/gate-access/internal/config"
	"github.com/JMURv/gate-access/internal/ctrl"
	grpchdl "github.com/JMURv/gate-access/internal/hdl/grpc"
	httphdl "github.com/JMURv/gate-access/internal/hdl/http"
	"github.com/JMURv/gate-access/internal/observability/metrics/prometheus"
	"github.com/JMURv/gate-access/internal/observability/tracing/jaeger"
	"github.com/JMURv/gate-access/internal/ratelimit"
	"github.com/JMURv/gate-access/internal/repo/db"
	"github.com/JMURv/gate-access/internal/repo/s3"
	"github.com/JMURv/gate-access/internal/smtp"
	"go.uber.org/zap"
)

const configPath = "configs/local.config.env"

func mustRegisterLogger(mode string) {
	switch mode {
	case "prod":
		zap.ReplaceGlobals(zap.Must(zap.NewProduction()))
	case "dev":
		zap.ReplaceGlobals(zap.Must(zap.NewDevelopment()))
	}
}

func main() {
	defer func() {
		if err := recover(); err != nil {
			zap.L().Panic("panic occurred", zap.Any("error", err))
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conf := config.MustLoad(configPath)
	mustRegisterLogger(conf.Server.Mode)

	go prometheus.New(conf.Server.Port + 5).Start(ctx)
	go jaeger.Start(ctx, conf.ServiceName, conf.Jaeger)

	au := auth.New(conf)
	cache := redis.New(conf.Redis)
	repo := db.New(conf)
	storage := s3.New(conf.S3)
	email := smtp.New(conf)
	limiter := ratelimit.New()

	svc := ctrl.New(au, repo, cache, storage, email, conf.Scan)
	h := httphdl.New(svc, limiter, conf)
	g := grpchdl.New(conf.ServiceName)

	go h.Start(conf.Server.Port)
	go g.Start(conf.Server.Port + 1)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-c

	zap.L().Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := h.Close(shutdownCtx); err != nil {
		zap.L().Warn("Error closing HTTP handler", zap.Error(err))
	}

	if err := g.Close(); err != nil {
		zap.L().Warn("Error closing gRPC handler", zap.Error(err))
	}

	limiter.Close()

	if err := cache.Close(); err != nil {
		zap.L().Warn("Failed to close connection to Redis: ", zap.Error(err))
	}

	if err := repo.Close(shutdownCtx); err != nil {
		zap.L().Warn("Error closing repository", zap.Error(err))
	}

	os.Exit(0)
}
