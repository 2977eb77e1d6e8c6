package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/JMURv/gate-access/internal/config"
	"github.com/JMURv/gate-access/internal/ctrl"
	mid "github.com/JMURv/gate-access/internal/hdl/http/middleware"
	"github.com/JMURv/gate-access/internal/hdl/http/utils"
	"github.com/JMURv/gate-access/internal/ratelimit"
	chi "github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type Handler struct {
	Router  *chi.Mux
	srv     *http.Server
	ctrl    ctrl.AppCtrl
	limiter *ratelimit.Limiter
	conf    config.Config
}

func New(ctrl ctrl.AppCtrl, limiter *ratelimit.Limiter, conf config.Config) *Handler {
	return &Handler{
		Router:  chi.NewRouter(),
		ctrl:    ctrl,
		limiter: limiter,
		conf:    conf,
	}
}

func (h *Handler) Start(port int) {
	h.Router.Use(
		mid.Logger(zap.L()),
		middleware.StripSlashes,
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		mid.Prometheus,
		mid.OT,
	)

	h.RegisterDeviceRoutes()
	h.RegisterScanRoutes()
	h.RegisterAdminRoutes()
	h.Router.Get("/swagger/*", httpSwagger.WrapHandler)
	h.Router.Get(
		"/health", func(w http.ResponseWriter, r *http.Request) {
			utils.SuccessResponse(w, http.StatusOK, "OK")
		},
	)

	h.srv = &http.Server{
		Handler:      h.Router,
		Addr:         fmt.Sprintf(":%v", port),
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	zap.L().Info(
		"Starting HTTP server",
		zap.String("addr", h.srv.Addr),
	)

	err := h.srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		zap.L().Error("Server error", zap.Error(err))
	}
}

func (h *Handler) Close(ctx context.Context) error {
	return h.srv.Shutdown(ctx)
}
