package db

const deviceCountQ = `
SELECT COUNT(d.id)
FROM devices d
WHERE d.organizer_id = $1
`

const deviceListQ = `
SELECT
	d.id,
	d.label,
	d.organizer_id,
	d.event_id,
	d.staff_id,
	d.public_id,
	d.secret_hash,
	d.is_active,
	d.last_seen_ip,
	d.last_seen_at,
	d.created_at,
	d.updated_at
FROM devices d
WHERE d.organizer_id = $1
ORDER BY d.created_at DESC
LIMIT $2 OFFSET $3
`

const deviceGetByIDQ = `
SELECT
	d.id,
	d.label,
	d.organizer_id,
	d.event_id,
	d.staff_id,
	d.public_id,
	d.secret_hash,
	d.is_active,
	d.last_seen_ip,
	d.last_seen_at,
	d.created_at,
	d.updated_at
FROM devices d
WHERE d.id = $1
`

const deviceGetByPublicIDQ = `
SELECT
	d.id,
	d.label,
	d.organizer_id,
	d.event_id,
	d.staff_id,
	d.public_id,
	d.secret_hash,
	d.is_active,
	d.last_seen_ip,
	d.last_seen_at,
	d.created_at,
	d.updated_at
FROM devices d
WHERE d.public_id = $1
`

const deviceCreateQ = `
INSERT INTO devices (label, organizer_id, event_id, staff_id, public_id, secret_hash, is_active)
VALUES ($1, $2, $3, $4, $5, $6, TRUE)
RETURNING id
`

const deviceUpdateQ = `
UPDATE devices
SET label = $1,
	event_id = $2,
	staff_id = $3,
	is_active = $4,
	updated_at = now()
WHERE id = $5
`

const deviceSetActiveQ = `
UPDATE devices
SET is_active = $1,
	updated_at = now()
WHERE id = $2
`

const deviceTouchSeenQ = `
UPDATE devices
SET last_seen_ip = $1,
	last_seen_at = now()
WHERE id = $2
`

const deviceDeleteQ = `
DELETE FROM devices
WHERE id = $1
`

const tokenCreateQ = `
INSERT INTO device_tokens (device_id, token_hash, expires_at)
VALUES ($1, $2, $3)
RETURNING id
`

const tokenGetByHashQ = `
SELECT
	t.id,
	t.device_id,
	t.token_hash,
	t.expires_at,
	t.revoked_at,
	t.created_at
FROM device_tokens t
WHERE t.token_hash = $1
`

const tokenRevokeQ = `
UPDATE device_tokens
SET revoked_at = now()
WHERE id = $1 AND revoked_at IS NULL
`

const tokenRevokeAllQ = `
UPDATE device_tokens
SET revoked_at = now()
WHERE device_id = $1 AND revoked_at IS NULL
`
