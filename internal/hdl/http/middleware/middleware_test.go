package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/JMURv/gate-access/internal/auth"
	"github.com/JMURv/gate-access/internal/config"
	"github.com/JMURv/gate-access/internal/dto"
	"github.com/JMURv/gate-access/internal/ratelimit"
	"github.com/JMURv/gate-access/tests/mocks"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func withDevice(r *http.Request, d *dto.DeviceContext) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), config.DeviceKey, d))
}

func TestDeviceAuth(t *testing.T) {
	mock := gomock.NewController(t)
	defer mock.Finish()

	mctrl := mocks.NewMockAppCtrl(mock)
	device := &dto.DeviceContext{
		DeviceID:       uuid.New(),
		DevicePublicID: "gate-a1",
	}

	var captured *dto.DeviceContext
	next := http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			d, ok := DeviceFromContext(r.Context())
			require.True(t, ok)
			captured = d
			w.WriteHeader(http.StatusOK)
		},
	)

	handler := DeviceAuth(mctrl)(next)

	t.Run("MissingHeader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/scan", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
	})

	t.Run("InvalidTokenAnswersGeneric401", func(t *testing.T) {
		mctrl.EXPECT().
			VerifyDevice(gomock.Any(), "bad-token").
			Return(nil, auth.ErrTokenRevoked)

		req := httptest.NewRequest(http.MethodPost, "/scan", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)

		// The revocation detail must not leak to the caller.
		var body struct {
			Errors []string `json:"errors"`
		}
		require.NoError(t, json.NewDecoder(w.Result().Body).Decode(&body))
		assert.Equal(t, auth.ErrInvalidToken.Error(), body.Errors[0])
	})

	t.Run("ValidTokenPassesDeviceContext", func(t *testing.T) {
		mctrl.EXPECT().
			VerifyDevice(gomock.Any(), "good-token").
			Return(device, nil)

		req := httptest.NewRequest(http.MethodPost, "/scan", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Result().StatusCode)
		assert.Equal(t, device, captured)
	})
}

func TestRateLimitByDevice(t *testing.T) {
	limiter := ratelimit.New()
	defer limiter.Close()

	device := &dto.DeviceContext{DeviceID: uuid.New()}

	next := http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
	)
	handler := RateLimitByDevice(limiter, time.Minute, 2)(next)

	t.Run("NoDeviceInContext", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/scan", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusInternalServerError, w.Result().StatusCode)
	})

	t.Run("LimitExceeded", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			req := withDevice(httptest.NewRequest(http.MethodPost, "/scan", nil), device)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Result().StatusCode)
		}

		req := withDevice(httptest.NewRequest(http.MethodPost, "/scan", nil), device)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusTooManyRequests, w.Result().StatusCode)
		assert.NotEmpty(t, w.Header().Get("Retry-After"))
	})

	t.Run("OtherDeviceUnaffected", func(t *testing.T) {
		other := &dto.DeviceContext{DeviceID: uuid.New()}
		req := withDevice(httptest.NewRequest(http.MethodPost, "/scan", nil), other)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	})
}

func TestRateLimitByIP(t *testing.T) {
	limiter := ratelimit.New()
	defer limiter.Close()

	next := http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
	)
	handler := RateLimitByIP(limiter, time.Minute, 1)(next)

	req := httptest.NewRequest(http.MethodPost, "/devices/auth", nil)
	req.RemoteAddr = "1.2.3.4:5678"
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Result().StatusCode)

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Result().StatusCode)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestAdminKey(t *testing.T) {
	next := http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
	)
	handler := AdminKey("super-secret")(next)

	t.Run("MissingKey", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/devices", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Result().StatusCode)
	})

	t.Run("WrongKey", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/devices", nil)
		req.Header.Set("X-Admin-Key", "nope")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Result().StatusCode)
	})

	t.Run("CorrectKey", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/devices", nil)
		req.Header.Set("X-Admin-Key", "super-secret")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	})
}
