package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/JMURv/gate-access/internal/auth"
	"github.com/JMURv/gate-access/internal/config"
	"github.com/JMURv/gate-access/internal/dto"
	"github.com/JMURv/gate-access/internal/hdl"
	"github.com/JMURv/gate-access/internal/hdl/http/utils"
	metrics "github.com/JMURv/gate-access/internal/observability/metrics/prometheus"
	"github.com/JMURv/gate-access/internal/ratelimit"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type deviceVerifier interface {
	VerifyDevice(ctx context.Context, tokenStr string) (*dto.DeviceContext, error)
}

// DeviceAuth resolves the bearer token into a device context. Every failure
// answers 401 with a generic message; which check failed is only logged.
func DeviceAuth(ctrl deviceVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				header := r.Header.Get("Authorization")
				if header == "" {
					utils.ErrResponse(w, http.StatusUnauthorized, auth.ErrMissingHeader)
					return
				}

				token := strings.TrimPrefix(header, "Bearer ")
				d, err := ctrl.VerifyDevice(r.Context(), token)
				if err != nil {
					zap.L().Debug(
						"Device verification failed",
						zap.String("remote", r.RemoteAddr),
						zap.Error(err),
					)
					utils.ErrResponse(w, http.StatusUnauthorized, auth.ErrInvalidToken)
					return
				}

				ctx := context.WithValue(r.Context(), config.DeviceKey, d)
				next.ServeHTTP(w, r.WithContext(ctx))
			},
		)
	}
}

// DeviceFromContext retrieves the context set by DeviceAuth.
func DeviceFromContext(ctx context.Context) (*dto.DeviceContext, bool) {
	d, ok := ctx.Value(config.DeviceKey).(*dto.DeviceContext)
	return d, ok
}

// RateLimitByIP applies the generic per-IP fixed-window policy.
func RateLimitByIP(l *ratelimit.Limiter, window time.Duration, max int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				dec := l.Allow("ip:"+r.RemoteAddr, window, max)
				if !dec.Allowed {
					w.Header().Set("Retry-After", strconv.Itoa(int(dec.RetryAfter.Seconds())))
					utils.ErrResponse(w, http.StatusTooManyRequests, hdl.ErrRateLimited)
					return
				}

				next.ServeHTTP(w, r)
			},
		)
	}
}

// RateLimitByDevice keys the window on the authenticated device id, so it
// must run after DeviceAuth.
func RateLimitByDevice(l *ratelimit.Limiter, window time.Duration, max int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				d, ok := DeviceFromContext(r.Context())
				if !ok {
					utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrFailedToGetDevice)
					return
				}

				dec := l.Allow("device:"+d.DeviceID.String(), window, max)
				if !dec.Allowed {
					w.Header().Set("Retry-After", strconv.Itoa(int(dec.RetryAfter.Seconds())))
					utils.ErrResponse(w, http.StatusTooManyRequests, hdl.ErrRateLimited)
					return
				}

				next.ServeHTTP(w, r)
			},
		)
	}
}

// AdminKey guards the back-office surface with a static key from config.
func AdminKey(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				if r.Header.Get("X-Admin-Key") != key {
					utils.ErrResponse(w, http.StatusForbidden, auth.ErrInvalidCredentials)
					return
				}

				next.ServeHTTP(w, r)
			},
		)
	}
}

type LoggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func NewLoggingResponseWriter(w http.ResponseWriter) *LoggingResponseWriter {
	return &LoggingResponseWriter{w, http.StatusOK}
}

func (lrw *LoggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func Prometheus(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			s := time.Now()
			op := fmt.Sprintf("%s %s", r.Method, r.URL.Path)

			lrw := NewLoggingResponseWriter(w)
			next.ServeHTTP(lrw, r)
			metrics.ObserveRequest(time.Since(s), lrw.statusCode, op)
		},
	)
}

func Logger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				start := time.Now()
				lrw := NewLoggingResponseWriter(w)
				logger.Debug(
					"-->",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("remote", r.RemoteAddr),
				)

				next.ServeHTTP(lrw, r)

				logger.Info(
					"<--",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", lrw.statusCode),
					zap.Duration("duration", time.Since(start)),
					zap.String("remote", r.RemoteAddr),
				)
			},
		)
	}
}

func OT(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			span, ctx := opentracing.StartSpanFromContext(r.Context(), fmt.Sprintf("%s %s", r.Method, r.URL.Path))
			defer span.Finish()

			next.ServeHTTP(w, r.WithContext(ctx))
		},
	)
}
