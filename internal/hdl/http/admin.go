package http

import (
	"errors"
	"net/http"

	"github.com/JMURv/gate-access/internal/ctrl"
	"github.com/JMURv/gate-access/internal/dto"
	"github.com/JMURv/gate-access/internal/hdl"
	mid "github.com/JMURv/gate-access/internal/hdl/http/middleware"
	"github.com/JMURv/gate-access/internal/hdl/http/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (h *Handler) RegisterAdminRoutes() {
	h.Router.Route(
		"/admin", func(r chi.Router) {
			r.Use(mid.AdminKey(h.conf.Admin.APIKey))

			r.Post("/devices", h.createDevice)
			r.Get("/devices", h.listDevices)
			r.Get("/devices/{id}", h.getDevice)
			r.Put("/devices/{id}", h.updateDevice)
			r.Delete("/devices/{id}", h.deleteDevice)

			r.Post("/tickets", h.createTicket)
			r.Post("/tickets/{id}/block", h.blockTicket)

			r.Get("/events/{id}/scan-logs", h.listScanLogs)
			r.Post("/events/{id}/scan-logs/export", h.exportScanLogs)
		},
	)
}

// createDevice godoc
//
//	@Summary		Register a scanning device
//	@Description	Creates a device and returns its credentials; the secret is shown only once
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			X-Admin-Key	header		string					true	"Admin key"
//	@Param			body		body		dto.CreateDeviceRequest	true	"Device payload"
//	@Success		201			{object}	dto.CreateDeviceResponse
//	@Failure		400			{object}	utils.ErrorsResponse
//	@Failure		403			{object}	utils.ErrorsResponse
//	@Failure		409			{object}	utils.ErrorsResponse
//	@Failure		500			{object}	utils.ErrorsResponse
//	@Router			/admin/devices [post]
func (h *Handler) createDevice(w http.ResponseWriter, r *http.Request) {
	req := &dto.CreateDeviceRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.CreateDevice(r.Context(), req)
	if err != nil {
		if errors.Is(err, ctrl.ErrAlreadyExists) {
			utils.ErrResponse(w, http.StatusConflict, err)
			return
		}

		zap.L().Error("Failed to create device", zap.Error(err))
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusCreated, res)
}

// listDevices godoc
//
//	@Summary	List devices of an organizer
//	@Tags		Admin
//	@Produce	json
//	@Param		X-Admin-Key	header		string	true	"Admin key"
//	@Param		organizerId	query		string	true	"Organizer id"
//	@Param		page		query		int		false	"Page number"	default(1)
//	@Param		size		query		int		false	"Page size"		default(40)
//	@Success	200			{object}	dto.PaginatedDeviceResponse
//	@Failure	400			{object}	utils.ErrorsResponse
//	@Failure	500			{object}	utils.ErrorsResponse
//	@Router		/admin/devices [get]
func (h *Handler) listDevices(w http.ResponseWriter, r *http.Request) {
	organizerID, err := uuid.Parse(r.URL.Query().Get("organizerId"))
	if err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrFailedToParseUUID)
		return
	}

	page, size := utils.ParsePaginationValues(r)
	res, err := h.ctrl.ListDevices(r.Context(), organizerID, page, size)
	if err != nil {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// getDevice godoc
//
//	@Summary	Retrieve a device
//	@Tags		Admin
//	@Produce	json
//	@Param		X-Admin-Key	header		string	true	"Admin key"
//	@Param		id			path		string	true	"Device id"
//	@Success	200			{object}	models.Device
//	@Failure	404			{object}	utils.ErrorsResponse
//	@Failure	500			{object}	utils.ErrorsResponse
//	@Router		/admin/devices/{id} [get]
func (h *Handler) getDevice(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrFailedToParseUUID)
		return
	}

	res, err := h.ctrl.GetDevice(r.Context(), id)
	if err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// updateDevice godoc
//
//	@Summary	Update a device
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Param		X-Admin-Key	header	string					true	"Admin key"
//	@Param		id			path	string					true	"Device id"
//	@Param		body		body	dto.UpdateDeviceRequest	true	"Device payload"
//	@Success	200			"device updated"
//	@Failure	400			{object}	utils.ErrorsResponse
//	@Failure	404			{object}	utils.ErrorsResponse
//	@Failure	500			{object}	utils.ErrorsResponse
//	@Router		/admin/devices/{id} [put]
func (h *Handler) updateDevice(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrFailedToParseUUID)
		return
	}

	req := &dto.UpdateDeviceRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	if err = h.ctrl.UpdateDevice(r.Context(), id, req); err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.StatusResponse(w, http.StatusOK)
}

// deleteDevice godoc
//
//	@Summary	Delete a device
//	@Description	Revokes all device tokens, then removes the device
//	@Tags		Admin
//	@Produce	json
//	@Param		X-Admin-Key	header	string	true	"Admin key"
//	@Param		id			path	string	true	"Device id"
//	@Success	204			"device deleted"
//	@Failure	404			{object}	utils.ErrorsResponse
//	@Failure	500			{object}	utils.ErrorsResponse
//	@Router		/admin/devices/{id} [delete]
func (h *Handler) deleteDevice(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrFailedToParseUUID)
		return
	}

	if err = h.ctrl.DeleteDevice(r.Context(), id); err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.StatusResponse(w, http.StatusNoContent)
}

// createTicket godoc
//
//	@Summary	Create a ticket
//	@Description	Seam for the ticket-sales collaborator; duplicate codes are an explicit conflict
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Param		X-Admin-Key	header		string					true	"Admin key"
//	@Param		body		body		dto.CreateTicketRequest	true	"Ticket payload"
//	@Success	201			{object}	dto.CreateTicketResponse
//	@Failure	400			{object}	utils.ErrorsResponse
//	@Failure	409			{object}	utils.ErrorsResponse
//	@Failure	500			{object}	utils.ErrorsResponse
//	@Router		/admin/tickets [post]
func (h *Handler) createTicket(w http.ResponseWriter, r *http.Request) {
	req := &dto.CreateTicketRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.CreateTicket(r.Context(), req)
	if err != nil {
		if errors.Is(err, ctrl.ErrAlreadyExists) {
			utils.ErrResponse(w, http.StatusConflict, err)
			return
		}
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusCreated, res)
}

// blockTicket godoc
//
//	@Summary	Block a ticket
//	@Tags		Admin
//	@Produce	json
//	@Param		X-Admin-Key	header	string	true	"Admin key"
//	@Param		id			path	string	true	"Ticket id"
//	@Success	200			"ticket blocked"
//	@Failure	404			{object}	utils.ErrorsResponse
//	@Failure	500			{object}	utils.ErrorsResponse
//	@Router		/admin/tickets/{id}/block [post]
func (h *Handler) blockTicket(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrFailedToParseUUID)
		return
	}

	if err = h.ctrl.BlockTicket(r.Context(), id); err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.StatusResponse(w, http.StatusOK)
}

// listScanLogs godoc
//
//	@Summary	List scan logs of an event
//	@Tags		Admin
//	@Produce	json
//	@Param		X-Admin-Key	header		string	true	"Admin key"
//	@Param		id			path		string	true	"Event id"
//	@Param		page		query		int		false	"Page number"	default(1)
//	@Param		size		query		int		false	"Page size"		default(40)
//	@Success	200			{object}	dto.PaginatedScanLogResponse
//	@Failure	400			{object}	utils.ErrorsResponse
//	@Failure	500			{object}	utils.ErrorsResponse
//	@Router		/admin/events/{id}/scan-logs [get]
func (h *Handler) listScanLogs(w http.ResponseWriter, r *http.Request) {
	eventID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrFailedToParseUUID)
		return
	}

	page, size := utils.ParsePaginationValues(r)
	res, err := h.ctrl.ListScanLogs(r.Context(), eventID, page, size)
	if err != nil {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// exportScanLogs godoc
//
//	@Summary	Export scan logs of an event to the archive bucket
//	@Tags		Admin
//	@Produce	json
//	@Param		X-Admin-Key	header		string	true	"Admin key"
//	@Param		id			path		string	true	"Event id"
//	@Success	200			{object}	dto.ExportScanLogsResponse
//	@Failure	400			{object}	utils.ErrorsResponse
//	@Failure	500			{object}	utils.ErrorsResponse
//	@Router		/admin/events/{id}/scan-logs/export [post]
func (h *Handler) exportScanLogs(w http.ResponseWriter, r *http.Request) {
	eventID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrFailedToParseUUID)
		return
	}

	res, err := h.ctrl.ExportScanLogs(r.Context(), eventID)
	if err != nil {
		zap.L().Error("Failed to export scan logs", zap.Error(err))
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}
