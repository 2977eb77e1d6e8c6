package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/JMURv/gate-access/internal/auth"
	"github.com/JMURv/gate-access/internal/dto"
	"github.com/JMURv/gate-access/internal/hdl"
	mid "github.com/JMURv/gate-access/internal/hdl/http/middleware"
	"github.com/JMURv/gate-access/internal/hdl/http/utils"
	"go.uber.org/zap"
)

func (h *Handler) RegisterDeviceRoutes() {
	h.Router.With(
		mid.RateLimitByIP(h.limiter, h.conf.RateLimit.AuthWindow, h.conf.RateLimit.AuthMax),
	).Post("/devices/auth", h.authenticateDevice)
	h.Router.With(mid.DeviceAuth(h.ctrl)).Post("/devices/logout", h.logoutDevice)
}

// authenticateDevice godoc
//
//	@Summary		Authenticate a scanning device
//	@Description	Exchange a device public id and secret for a bearer token
//	@Tags			Device
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.DeviceLoginRequest	true	"Device credentials"
//	@Success		200		{object}	dto.DeviceLoginResponse
//	@Failure		400		{object}	utils.ErrorsResponse
//	@Failure		401		{object}	utils.ErrorsResponse
//	@Failure		429		{object}	utils.ErrorsResponse
//	@Failure		500		{object}	utils.ErrorsResponse
//	@Router			/devices/auth [post]
func (h *Handler) authenticateDevice(w http.ResponseWriter, r *http.Request) {
	req := &dto.DeviceLoginRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	// Login carries its own stricter window, keyed on caller ip plus the
	// claimed public id so one ip cannot brute force many devices at once.
	dec := h.limiter.Allow(
		"login:"+r.RemoteAddr+":"+req.PublicID,
		h.conf.RateLimit.LoginWindow,
		h.conf.RateLimit.LoginMax,
	)
	if !dec.Allowed {
		w.Header().Set("Retry-After", strconv.Itoa(int(dec.RetryAfter.Seconds())))
		utils.ErrResponse(w, http.StatusTooManyRequests, hdl.ErrRateLimited)
		return
	}

	res, err := h.ctrl.AuthenticateDevice(r.Context(), r.RemoteAddr, req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) || errors.Is(err, auth.ErrDeviceInactive) {
			utils.ErrResponse(w, http.StatusUnauthorized, auth.ErrInvalidCredentials)
			return
		}

		zap.L().Error("Failed to authenticate device", zap.Error(err))
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// logoutDevice godoc
//
//	@Summary		Logout a device
//	@Description	Revoke every outstanding token of the calling device
//	@Tags			Device
//	@Produce		json
//	@Param			Authorization	header	string	true	"Bearer token"
//	@Success		200				"tokens revoked"
//	@Failure		401				{object}	utils.ErrorsResponse
//	@Failure		500				{object}	utils.ErrorsResponse
//	@Router			/devices/logout [post]
func (h *Handler) logoutDevice(w http.ResponseWriter, r *http.Request) {
	d, ok := mid.DeviceFromContext(r.Context())
	if !ok {
		zap.L().Error(hdl.ErrFailedToGetDevice.Error())
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	if err := h.ctrl.LogoutDevice(r.Context(), d); err != nil {
		zap.L().Error("Failed to logout device", zap.Error(err))
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.StatusResponse(w, http.StatusOK)
}
