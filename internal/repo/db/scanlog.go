package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/JMURv/gate-access/internal/dto"
	md "github.com/JMURv/gate-access/internal/models"
	"github.com/JMURv/gate-access/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
)

func (r *Repository) CreateScanLog(ctx context.Context, entry *md.ScanLogEntry) (*md.ScanLogEntry, error) {
	const op = "scanlogs.CreateScanLog.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	out := *entry
	err := r.conn.QueryRowContext(
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

	return &out, nil
}

// GetRecentScanLog returns the latest attempt by the same device for the
// same code since the given time. Keyed by code rather than ticket id so
// NOT_FOUND attempts replay too.
func (r *Repository) GetRecentScanLog(
	ctx context.Context,
	deviceID uuid.UUID,
	ticketCode string,
	since time.Time,
) (*md.ScanLogEntry, error) {
	const op = "scanlogs.GetRecentScanLog.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.ScanLogEntry{}
	err := r.conn.GetContext(ctx, res, scanLogGetRecentQ, deviceID, ticketCode, since)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

func (r *Repository) ListScanLogs(
	ctx context.Context,
	eventID uuid.UUID,
	page, size int,
) (*dto.PaginatedScanLogResponse, error) {
	const op = "scanlogs.ListScanLogs.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var count int64
	if err := r.conn.GetContext(ctx, &count, scanLogCountQ, eventID); err != nil {
		return nil, err
	}

	data := make([]md.ScanLogEntry, 0, size)
	err := r.conn.SelectContext(ctx, &data, scanLogListQ, eventID, size, (page-1)*size)
	if err != nil {
		return nil, err
	}

	totalPages := int((count + int64(size) - 1) / int64(size))
	return &dto.PaginatedScanLogResponse{
		Data:        data,
		Count:       count,
		TotalPages:  totalPages,
		CurrentPage: page,
		HasNextPage: page < totalPages,
	}, nil
}

func (r *Repository) ListAllScanLogs(ctx context.Context, eventID uuid.UUID) ([]md.ScanLogEntry, error) {
	const op = "scanlogs.ListAllScanLogs.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	data := make([]md.ScanLogEntry, 0)
	if err := r.conn.SelectContext(ctx, &data, scanLogListAllQ, eventID); err != nil {
		return nil, err
	}

	return data, nil
}
