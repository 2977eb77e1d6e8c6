package db

const scanLogCreateQ = `
INSERT INTO scan_logs (ticket_id, ticket_code, event_id, device_id, staff_id, outcome, message, scanned_at, lat, lon, ip)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id, created_at
`

const scanLogGetRecentQ = `
SELECT
	s.id,
	s.ticket_id,
	s.ticket_code,
	s.event_id,
	s.device_id,
	s.staff_id,
	s.outcome,
	s.message,
	s.scanned_at,
	s.lat,
	s.lon,
	s.ip,
	s.created_at
FROM scan_logs s
WHERE s.device_id = $1 AND s.ticket_code = $2 AND s.created_at > $3
ORDER BY s.created_at DESC
LIMIT 1
`

const scanLogCountQ = `
SELECT COUNT(s.id)
FROM scan_logs s
WHERE s.event_id = $1
`

const scanLogListQ = `
SELECT
	s.id,
	s.ticket_id,
	s.ticket_code,
	s.event_id,
	s.device_id,
	s.staff_id,
	s.outcome,
	s.message,
	s.scanned_at,
	s.lat,
	s.lon,
	s.ip,
	s.created_at
FROM scan_logs s
WHERE s.event_id = $1
ORDER BY s.created_at DESC
LIMIT $2 OFFSET $3
`

const scanLogListAllQ = `
SELECT
	s.id,
	s.ticket_id,
	s.ticket_code,
	s.event_id,
	s.device_id,
	s.staff_id,
	s.outcome,
	s.message,
	s.scanned_at,
	s.lat,
	s.lon,
	s.ip,
	s.created_at
FROM scan_logs s
WHERE s.event_id = $1
ORDER BY s.created_at ASC
`
