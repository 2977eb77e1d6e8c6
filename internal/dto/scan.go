package dto

import (
	"time"

	md "github.com/JMURv/gate-access/internal/models"
	"github.com/google/uuid"
)

type ScanRequest struct {
	EventID         uuid.UUID  `json:"eventId"    validate:"required"`
	TicketCode      string     `json:"ticketCode" validate:"required"`
	Lat             *float64   `json:"lat"        validate:"omitempty,gte=-90,lte=90"`
	Lon             *float64   `json:"lon"        validate:"omitempty,gte=-180,lte=180"`
	ScannedAtClient *time.Time `json:"scannedAtClient"`
}

type ScannedBy struct {
	DeviceID       uuid.UUID  `json:"deviceId"`
	DevicePublicID string     `json:"devicePublicId"`
	StaffUserID    *uuid.UUID `json:"staffUserId,omitempty"`
}

type ScanAudit struct {
	ScanLogID       uuid.UUID `json:"scanLogId"`
	ScannedAtServer time.Time `json:"scannedAtServer"`
	Lat             *float64  `json:"lat,omitempty"`
	Lon             *float64  `json:"lon,omitempty"`
}

type ScannedTicket struct {
	ID         uuid.UUID `json:"id"`
	Code       string    `json:"code"`
	Status     string    `json:"status"`
	HolderName string    `json:"holderName"`
}

type ScanResponse struct {
	Result    md.Outcome     `json:"result"`
	Message   string         `json:"message"`
	ScannedBy ScannedBy      `json:"scannedBy"`
	Audit     ScanAudit      `json:"audit"`
	Ticket    *ScannedTicket `json:"ticket,omitempty"`
}

type CreateTicketRequest struct {
	EventID     uuid.UUID `json:"eventId"    validate:"required"`
	Code        string    `json:"code"       validate:"required"`
	HolderName  string    `json:"holderName" validate:"required"`
	HolderEmail string    `json:"holderEmail" validate:"omitempty,email"`
}

type CreateTicketResponse struct {
	ID   uuid.UUID `json:"id"`
	Code string    `json:"code"`
}

type PaginatedScanLogResponse struct {
	Data        []md.ScanLogEntry `json:"data"`
	Count       int64             `json:"count"`
	TotalPages  int               `json:"totalPages"`
	CurrentPage int               `json:"currentPage"`
	HasNextPage bool              `json:"hasNextPage"`
}

type ExportScanLogsResponse struct {
	Object string `json:"object"`
	Count  int    `json:"count"`
}
