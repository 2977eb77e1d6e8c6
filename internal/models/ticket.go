package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	TicketStatusValid   = "valid"
	TicketStatusUsed    = "used"
	TicketStatusBlocked = "blocked"
	TicketStatusExpired = "expired"
)

// Ticket status is monotone through the scan path: once used or blocked
// there is no transition back to valid.
type Ticket struct {
	ID          uuid.UUID  `db:"id"          json:"id"`
	EventID     uuid.UUID  `db:"event_id"    json:"eventId"`
	Code        string     `db:"code"        json:"code"`
	HolderName  string     `db:"holder_name" json:"holderName"`
	HolderEmail string     `db:"holder_email" json:"holderEmail"`
	Status      string     `db:"status"      json:"status"`
	ScannedAt   *time.Time `db:"scanned_at"  json:"scannedAt,omitempty"`
	CreatedAt   time.Time  `db:"created_at"  json:"createdAt"`
	UpdatedAt   time.Time  `db:"updated_at"  json:"updatedAt"`
}

type Outcome string

const (
	OutcomeValid       Outcome = "VALID"
	OutcomeAlreadyUsed Outcome = "ALREADY_USED"
	OutcomeBlocked     Outcome = "BLOCKED"
	OutcomeNotFound    Outcome = "NOT_FOUND"
	OutcomeWrongEvent  Outcome = "WRONG_EVENT"
	OutcomeExpired     Outcome = "EXPIRED"
)

// ScanLogEntry is append-only: one row per non-duplicate scan attempt,
// successful or not. TicketID is nil when the code did not resolve.
type ScanLogEntry struct {
	ID         uuid.UUID  `db:"id"          json:"id"`
	TicketID   *uuid.UUID `db:"ticket_id"   json:"ticketId,omitempty"`
	TicketCode string     `db:"ticket_code" json:"ticketCode"`
	EventID    uuid.UUID  `db:"event_id"    json:"eventId"`
	DeviceID   uuid.UUID  `db:"device_id"   json:"deviceId"`
	StaffID    *uuid.UUID `db:"staff_id"    json:"staffId,omitempty"`
	Outcome    Outcome    `db:"outcome"     json:"outcome"`
	Message    string     `db:"message"     json:"message"`
	ScannedAt  time.Time  `db:"scanned_at"  json:"scannedAt"`
	Lat        *float64   `db:"lat"         json:"lat,omitempty"`
	Lon        *float64   `db:"lon"         json:"lon,omitempty"`
	IP         string     `db:"ip"          json:"ip"`
	CreatedAt  time.Time  `db:"created_at"  json:"createdAt"`
}
