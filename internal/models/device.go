package models

import (
	"time"

	"github.com/google/uuid"
)

type Device struct {
	ID          uuid.UUID  `db:"id"          json:"id"`
	Label       string     `db:"label"       json:"label"`
	OrganizerID uuid.UUID  `db:"organizer_id" json:"organizerId"`
	EventID     *uuid.UUID `db:"event_id"    json:"eventId,omitempty"`
	StaffID     *uuid.UUID `db:"staff_id"    json:"staffId,omitempty"`
	PublicID    string     `db:"public_id"   json:"publicId"`
	SecretHash  string     `db:"secret_hash" json:"-"`
	IsActive    bool       `db:"is_active"   json:"isActive"`
	LastSeenIP  string     `db:"last_seen_ip" json:"lastSeenIp"`
	LastSeenAt  *time.Time `db:"last_seen_at" json:"lastSeenAt,omitempty"`
	CreatedAt   time.Time  `db:"created_at"  json:"createdAt"`
	UpdatedAt   time.Time  `db:"updated_at"  json:"updatedAt"`
}

// DeviceToken is usable only while it is unexpired, unrevoked and its
// owning device is active.
type DeviceToken struct {
	ID        uint64     `db:"id"         json:"id"`
	DeviceID  uuid.UUID  `db:"device_id"  json:"deviceId"`
	TokenHash string     `db:"token_hash" json:"tokenHash"`
	ExpiresAt time.Time  `db:"expires_at" json:"expiresAt"`
	RevokedAt *time.Time `db:"revoked_at" json:"revokedAt,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
}
