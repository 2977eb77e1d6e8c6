package http

import (
	"net/http"

	"github.com/JMURv/gate-access/internal/dto"
	"github.com/JMURv/gate-access/internal/hdl"
	mid "github.com/JMURv/gate-access/internal/hdl/http/middleware"
	"github.com/JMURv/gate-access/internal/hdl/http/utils"
	"go.uber.org/zap"
)

func (h *Handler) RegisterScanRoutes() {
	h.Router.With(
		mid.DeviceAuth(h.ctrl),
		mid.RateLimitByDevice(h.limiter, h.conf.RateLimit.ScanWindow, h.conf.RateLimit.ScanMax),
	).Post("/scan", h.scan)
}

// scan godoc
//
//	@Summary		Redeem a ticket
//	@Description	Run the redemption protocol for a ticket code at an event
//	@Tags			Scan
//	@Accept			json
//	@Produce		json
//	@Param			Authorization	header		string			true	"Bearer token"
//	@Param			body			body		dto.ScanRequest	true	"Scan payload"
//	@Success		200				{object}	dto.ScanResponse
//	@Failure		400				{object}	utils.ErrorsResponse
//	@Failure		401				{object}	utils.ErrorsResponse
//	@Failure		429				{object}	utils.ErrorsResponse
//	@Failure		500				{object}	utils.ErrorsResponse
//	@Router			/scan [post]
func (h *Handler) scan(w http.ResponseWriter, r *http.Request) {
	d, ok := mid.DeviceFromContext(r.Context())
	if !ok {
		zap.L().Error(hdl.ErrFailedToGetDevice.Error())
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	req := &dto.ScanRequest{}
	if ok = utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.ProcessScan(r.Context(), d, req, r.RemoteAddr)
	if err != nil {
		zap.L().Error(
			"Failed to process scan",
			zap.String("deviceID", d.DeviceID.String()),
			zap.String("code", req.TicketCode),
			zap.Error(err),
		)
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}
