package http

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JMURv/gate-access/internal/ctrl"
	"github.com/JMURv/gate-access/internal/dto"
	"github.com/JMURv/gate-access/internal/hdl"
	"github.com/JMURv/gate-access/internal/hdl/http/utils"
	"github.com/JMURv/gate-access/internal/ratelimit"
	"github.com/JMURv/gate-access/tests/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestHandler_CreateTicket(t *testing.T) {
	const uri = "/admin/tickets"
	mock := gomock.NewController(t)
	defer mock.Finish()

	testErr := errors.New("testErr")
	mctrl := mocks.NewMockAppCtrl(mock)
	limiter := ratelimit.New()
	defer limiter.Close()
	h := New(mctrl, limiter, testConfig())

	eventID := uuid.New()
	ticketID := uuid.New()

	tests := []struct {
		name       string
		status     int
		payload    map[string]any
		expect     func()
		assertions func(r *httptest.ResponseRecorder)
	}{
		{
			name:   "ErrMissingCode",
			status: http.StatusBadRequest,
			payload: map[string]any{
				"eventId":    eventID,
				"holderName": "Ada Lovelace",
			},
			expect: func() {},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.ErrorsResponse{}
				err := json.NewDecoder(r.Result().Body).Decode(res)
				assert.Nil(t, err)
				assert.Contains(t, res.Errors[0], "required")
			},
		},
		{
			name:   "Conflict",
			status: http.StatusConflict,
			payload: map[string]any{
				"eventId":    eventID,
				"code":       "TCKT-0001",
				"holderName": "Ada Lovelace",
			},
			expect: func() {
				mctrl.EXPECT().
					CreateTicket(gomock.Any(), gomock.Any()).
					Return(nil, ctrl.ErrAlreadyExists)
			},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.ErrorsResponse{}
				err := json.NewDecoder(r.Result().Body).Decode(res)
				assert.Nil(t, err)
				assert.Equal(t, ctrl.ErrAlreadyExists.Error(), res.Errors[0])
			},
		},
		{
			name:   "StatusInternalServerError",
			status: http.StatusInternalServerError,
			payload: map[string]any{
				"eventId":    eventID,
				"code":       "TCKT-0001",
				"holderName": "Ada Lovelace",
			},
			expect: func() {
				mctrl.EXPECT().
					CreateTicket(gomock.Any(), gomock.Any()).
					Return(nil, testErr)
			},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.ErrorsResponse{}
				err := json.NewDecoder(r.Result().Body).Decode(res)
				assert.Nil(t, err)
				assert.Equal(t, hdl.ErrInternal.Error(), res.Errors[0])
			},
		},
		{
			name:   "Success",
			status: http.StatusCreated,
			payload: map[string]any{
				"eventId":    eventID,
				"code":       "TCKT-0001",
				"holderName": "Ada Lovelace",
			},
			expect: func() {
				mctrl.EXPECT().
					CreateTicket(
						gomock.Any(),
						&dto.CreateTicketRequest{
							EventID:    eventID,
							Code:       "TCKT-0001",
							HolderName: "Ada Lovelace",
						},
					).
					Return(&dto.CreateTicketResponse{ID: ticketID, Code: "TCKT-0001"}, nil)
			},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.Response{}
				err := json.NewDecoder(r.Result().Body).Decode(res)
				assert.Nil(t, err)
				assert.NotNil(t, res.Data)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.expect()
			b, err := json.Marshal(tt.payload)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, uri, bytes.NewBuffer(b))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			h.createTicket(w, req)
			assert.Equal(t, tt.status, w.Result().StatusCode)

			defer func() {
				assert.Nil(t, w.Result().Body.Close())
			}()

			tt.assertions(w)
		})
	}
}

func TestHandler_BlockTicket(t *testing.T) {
	mock := gomock.NewController(t)
	defer mock.Finish()

	mctrl := mocks.NewMockAppCtrl(mock)
	limiter := ratelimit.New()
	defer limiter.Close()
	h := New(mctrl, limiter, testConfig())

	ticketID := uuid.New()

	t.Run("ErrInvalidUUID", func(t *testing.T) {
		req := withURLParam(httptest.NewRequest(http.MethodPost, "/admin/tickets/bad/block", nil), "id", "bad")
		w := httptest.NewRecorder()
		h.blockTicket(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
	})

	t.Run("NotFound", func(t *testing.T) {
		mctrl.EXPECT().
			BlockTicket(gomock.Any(), ticketID).
			Return(ctrl.ErrNotFound)

		req := withURLParam(
			httptest.NewRequest(http.MethodPost, "/admin/tickets/"+ticketID.String()+"/block", nil),
			"id", ticketID.String(),
		)
		w := httptest.NewRecorder()
		h.blockTicket(w, req)
		assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
	})

	t.Run("Success", func(t *testing.T) {
		mctrl.EXPECT().
			BlockTicket(gomock.Any(), ticketID).
			Return(nil)

		req := withURLParam(
			httptest.NewRequest(http.MethodPost, "/admin/tickets/"+ticketID.String()+"/block", nil),
			"id", ticketID.String(),
		)
		w := httptest.NewRecorder()
		h.blockTicket(w, req)
		assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	})
}

func TestHandler_CreateDevice(t *testing.T) {
	const uri = "/admin/devices"
	mock := gomock.NewController(t)
	defer mock.Finish()

	mctrl := mocks.NewMockAppCtrl(mock)
	limiter := ratelimit.New()
	defer limiter.Close()
	h := New(mctrl, limiter, testConfig())

	organizerID := uuid.New()
	deviceID := uuid.New()

	t.Run("ErrMissingLabel", func(t *testing.T) {
		b, _ := json.Marshal(map[string]any{"organizerId": organizerID})
		req := httptest.NewRequest(http.MethodPost, uri, bytes.NewBuffer(b))
		w := httptest.NewRecorder()
		h.createDevice(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
	})

	t.Run("Conflict", func(t *testing.T) {
		mctrl.EXPECT().
			CreateDevice(gomock.Any(), gomock.Any()).
			Return(nil, ctrl.ErrAlreadyExists)

		b, _ := json.Marshal(map[string]any{"label": "Gate A", "organizerId": organizerID})
		req := httptest.NewRequest(http.MethodPost, uri, bytes.NewBuffer(b))
		w := httptest.NewRecorder()
		h.createDevice(w, req)
		assert.Equal(t, http.StatusConflict, w.Result().StatusCode)
	})

	t.Run("Success", func(t *testing.T) {
		mctrl.EXPECT().
			CreateDevice(
				gomock.Any(),
				&dto.CreateDeviceRequest{Label: "Gate A", OrganizerID: organizerID},
			).
			Return(
				&dto.CreateDeviceResponse{
					ID:       deviceID,
					PublicID: "pub-id",
					Secret:   "plain-secret",
				}, nil,
			)

		b, _ := json.Marshal(map[string]any{"label": "Gate A", "organizerId": organizerID})
		req := httptest.NewRequest(http.MethodPost, uri, bytes.NewBuffer(b))
		w := httptest.NewRecorder()
		h.createDevice(w, req)
		assert.Equal(t, http.StatusCreated, w.Result().StatusCode)

		res := &utils.Response{}
		require.NoError(t, json.NewDecoder(w.Result().Body).Decode(res))
		data, ok := res.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "plain-secret", data["secret"])
	})
}

func TestHandler_ExportScanLogs(t *testing.T) {
	mock := gomock.NewController(t)
	defer mock.Finish()

	testErr := errors.New("testErr")
	mctrl := mocks.NewMockAppCtrl(mock)
	limiter := ratelimit.New()
	defer limiter.Close()
	h := New(mctrl, limiter, testConfig())

	eventID := uuid.New()
	uri := "/admin/events/" + eventID.String() + "/scan-logs/export"

	t.Run("ErrInvalidUUID", func(t *testing.T) {
		req := withURLParam(httptest.NewRequest(http.MethodPost, uri, nil), "id", "bad")
		w := httptest.NewRecorder()
		h.exportScanLogs(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
	})

	t.Run("StatusInternalServerError", func(t *testing.T) {
		mctrl.EXPECT().
			ExportScanLogs(gomock.Any(), eventID).
			Return(nil, testErr)

		req := withURLParam(httptest.NewRequest(http.MethodPost, uri, nil), "id", eventID.String())
		w := httptest.NewRecorder()
		h.exportScanLogs(w, req)
		assert.Equal(t, http.StatusInternalServerError, w.Result().StatusCode)
	})

	t.Run("Success", func(t *testing.T) {
		mctrl.EXPECT().
			ExportScanLogs(gomock.Any(), eventID).
			Return(&dto.ExportScanLogsResponse{Object: "scan-logs/obj.json", Count: 12}, nil)

		req := withURLParam(httptest.NewRequest(http.MethodPost, uri, nil), "id", eventID.String())
		w := httptest.NewRecorder()
		h.exportScanLogs(w, req)
		assert.Equal(t, http.StatusOK, w.Result().StatusCode)

		res := &utils.Response{}
		require.NoError(t, json.NewDecoder(w.Result().Body).Decode(res))
		data, ok := res.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "scan-logs/obj.json", data["object"])
	})
}
