package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/JMURv/gate-access/internal/dto"
	md "github.com/JMURv/gate-access/internal/models"
	"github.com/JMURv/gate-access/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
)

func (r *Repository) CreateTicket(ctx context.Context, req *dto.CreateTicketRequest) (uuid.UUID, error) {
	const op = "tickets.CreateTicket.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var id uuid.UUID
	err := r.conn.QueryRowContext(
		ctx,
		ticketCreateQ,
		req.EventID,
		req.Code,
		req.HolderName,
		req.HolderEmail,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, repo.ErrAlreadyExists
		}
		return uuid.Nil, err
	}

	return id, nil
}

func (r *Repository) GetTicketByCode(ctx context.Context, code string) (*md.Ticket, error) {
	const op = "tickets.GetTicketByCode.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.Ticket{}
	err := r.conn.GetContext(ctx, res, ticketGetByCodeQ, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

// RedeemTicket performs the single legal scan transition in one transaction:
// a compare-and-swap UPDATE guarded by status = 'valid' plus the audit row.
// When the CAS matches no row a concurrent scan won the race and the caller
// gets ErrNotRedeemable; nothing is written.
func (r *Repository) RedeemTicket(
	ctx context.Context,
	ticketID uuid.UUID,
	entry *md.ScanLogEntry,
) (*md.ScanLogEntry, error) {
	const op = "tickets.RedeemTicket.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	tx, err := r.conn.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, ticketRedeemQ, entry.ScannedAt, ticketID)
	if err != nil {
		return nil, err
	}

	if aff, _ := res.RowsAffected(); aff == 0 {
		return nil, repo.ErrNotRedeemable
	}

	out := *entry
	err = tx.QueryRowContext(
		ctx,
		scanLogCreateQ,
		entry.TicketID,
		entry.TicketCode,
		entry.EventID,
		entry.DeviceID,
		entry.StaffID,
		entry.Outcome,
		entry.Message,
		entry.ScannedAt,
		entry.Lat,
		entry.Lon,
		entry.IP,
	).Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	return &out, nil
}

func (r *Repository) BlockTicket(ctx context.Context, ticketID uuid.UUID) error {
	const op = "tickets.BlockTicket.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, ticketBlockQ, ticketID)
	if err != nil {
		return err
	}

	if aff, _ := res.RowsAffected(); aff == 0 {
		return repo.ErrNotFound
	}

	return nil
}
