package dto

import (
	"time"

	"github.com/google/uuid"
)

// DeviceContext is the verified identity attached to a request after the
// token passed both the signature check and the store cross-check.
type DeviceContext struct {
	DeviceID       uuid.UUID  `json:"deviceId"`
	DevicePublicID string     `json:"devicePublicId"`
	StaffID        *uuid.UUID `json:"staffId,omitempty"`
	TokenID        uint64     `json:"-"`
}

type DeviceLoginRequest struct {
	PublicID string `json:"publicId" validate:"required"`
	Secret   string `json:"secret"   validate:"required"`
}

type DeviceLoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type CreateDeviceRequest struct {
	Label       string     `json:"label"       validate:"required"`
	OrganizerID uuid.UUID  `json:"organizerId" validate:"required"`
	EventID     *uuid.UUID `json:"eventId"`
	StaffID     *uuid.UUID `json:"staffId"`
}

// CreateDeviceResponse carries the plaintext secret exactly once; only its
// bcrypt hash is stored.
type CreateDeviceResponse struct {
	ID       uuid.UUID `json:"id"`
	PublicID string    `json:"publicId"`
	Secret   string    `json:"secret"`
}

type UpdateDeviceRequest struct {
	Label    string     `json:"label" validate:"required"`
	EventID  *uuid.UUID `json:"eventId"`
	StaffID  *uuid.UUID `json:"staffId"`
	IsActive bool       `json:"isActive"`
}

type PaginatedDeviceResponse struct {
	Data        []DeviceResponse `json:"data"`
	Count       int64            `json:"count"`
	TotalPages  int              `json:"totalPages"`
	CurrentPage int              `json:"currentPage"`
	HasNextPage bool             `json:"hasNextPage"`
}

type DeviceResponse struct {
	ID         uuid.UUID  `json:"id"`
	Label      string     `json:"label"`
	PublicID   string     `json:"publicId"`
	EventID    *uuid.UUID `json:"eventId,omitempty"`
	StaffID    *uuid.UUID `json:"staffId,omitempty"`
	IsActive   bool       `json:"isActive"`
	LastSeenIP string     `json:"lastSeenIp"`
	LastSeenAt *time.Time `json:"lastSeenAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}
