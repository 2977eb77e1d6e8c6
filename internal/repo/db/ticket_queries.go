package db

const ticketCreateQ = `
INSERT INTO tickets (event_id, code, holder_name, holder_email, status)
VALUES ($1, $2, $3, $4, 'valid')
RETURNING id
`

const ticketGetByCodeQ = `
SELECT
	t.id,
	t.event_id,
	t.code,
	t.holder_name,
	t.holder_email,
	t.status,
	t.scanned_at,
	t.created_at,
	t.updated_at
FROM tickets t
WHERE t.code = $1
`

const ticketRedeemQ = `
UPDATE tickets
SET status = 'used',
	scanned_at = $1,
	updated_at = now()
WHERE id = $2 AND status = 'valid'
`

const ticketBlockQ = `
UPDATE tickets
SET status = 'blocked',
	updated_at = now()
WHERE id = $1 AND status <> 'used'
`
