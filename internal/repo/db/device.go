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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/opentracing/opentracing-go"
)

func (r *Repository) CreateDevice(
	ctx context.Context,
	req *dto.CreateDeviceRequest,
	publicID, secretHash string,
) (uuid.UUID, error) {
	const op = "devices.CreateDevice.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var id uuid.UUID
	err := r.conn.QueryRowContext(
		ctx,
		deviceCreateQ,
		req.Label,
		req.OrganizerID,
		req.EventID,
		req.StaffID,
		publicID,
		secretHash,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, repo.ErrAlreadyExists
		}
		return uuid.Nil, err
	}

	return id, nil
}

func (r *Repository) GetDeviceByID(ctx context.Context, deviceID uuid.UUID) (*md.Device, error) {
	const op = "devices.GetDeviceByID.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.Device{}
	err := r.conn.GetContext(ctx, res, deviceGetByIDQ, deviceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

func (r *Repository) GetDeviceByPublicID(ctx context.Context, publicID string) (*md.Device, error) {
	const op = "devices.GetDeviceByPublicID.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.Device{}
	err := r.conn.GetContext(ctx, res, deviceGetByPublicIDQ, publicID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

func (r *Repository) ListDevices(
	ctx context.Context,
	organizerID uuid.UUID,
	page, size int,
) (*dto.PaginatedDeviceResponse, error) {
	const op = "devices.ListDevices.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var count int64
	if err := r.conn.GetContext(ctx, &count, deviceCountQ, organizerID); err != nil {
		return nil, err
	}

	devices := make([]md.Device, 0, size)
	err := r.conn.SelectContext(ctx, &devices, deviceListQ, organizerID, size, (page-1)*size)
	if err != nil {
		return nil, err
	}

	data := make([]dto.DeviceResponse, 0, len(devices))
	for _, d := range devices {
		data = append(
			data, dto.DeviceResponse{
				ID:         d.ID,
				Label:      d.Label,
				PublicID:   d.PublicID,
				EventID:    d.EventID,
				StaffID:    d.StaffID,
				IsActive:   d.IsActive,
				LastSeenIP: d.LastSeenIP,
				LastSeenAt: d.LastSeenAt,
				CreatedAt:  d.CreatedAt,
			},
		)
	}

	totalPages := int((count + int64(size) - 1) / int64(size))
	return &dto.PaginatedDeviceResponse{
		Data:        data,
		Count:       count,
		TotalPages:  totalPages,
		CurrentPage: page,
		HasNextPage: page < totalPages,
	}, nil
}

func (r *Repository) UpdateDevice(
	ctx context.Context,
	deviceID uuid.UUID,
	req *dto.UpdateDeviceRequest,
) error {
	const op = "devices.UpdateDevice.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(
		ctx,
		deviceUpdateQ,
		req.Label,
		req.EventID,
		req.StaffID,
		req.IsActive,
		deviceID,
	)
	if err != nil {
		return err
	}

	if aff, _ := res.RowsAffected(); aff == 0 {
		return repo.ErrNotFound
	}

	return nil
}

// SetDeviceActive flips the active flag; deactivation also revokes every
// outstanding token in the same transaction so access dies immediately.
func (r *Repository) SetDeviceActive(ctx context.Context, deviceID uuid.UUID, active bool) error {
	const op = "devices.SetDeviceActive.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	tx, err := r.conn.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, deviceSetActiveQ, active, deviceID)
	if err != nil {
		return err
	}

	if aff, _ := res.RowsAffected(); aff == 0 {
		return repo.ErrNotFound
	}

	if !active {
		if _, err = tx.ExecContext(ctx, tokenRevokeAllQ, deviceID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *Repository) DeleteDevice(ctx context.Context, deviceID uuid.UUID) error {
	const op = "devices.DeleteDevice.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	tx, err := r.conn.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, tokenRevokeAllQ, deviceID); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, deviceDeleteQ, deviceID)
	if err != nil {
		return err
	}

	if aff, _ := res.RowsAffected(); aff == 0 {
		return repo.ErrNotFound
	}

	return tx.Commit()
}

func (r *Repository) TouchDeviceSeen(ctx context.Context, deviceID uuid.UUID, ip string) error {
	const op = "devices.TouchDeviceSeen.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	_, err := r.conn.ExecContext(ctx, deviceTouchSeenQ, ip, deviceID)
	return err
}

func (r *Repository) CreateDeviceToken(
	ctx context.Context,
	deviceID uuid.UUID,
	tokenHash string,
	expiresAt time.Time,
) (uint64, error) {
	const op = "devices.CreateDeviceToken.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var id uint64
	err := r.conn.QueryRowContext(ctx, tokenCreateQ, deviceID, tokenHash, expiresAt).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (r *Repository) GetDeviceTokenByHash(ctx context.Context, tokenHash string) (*md.DeviceToken, error) {
	const op = "devices.GetDeviceTokenByHash.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.DeviceToken{}
	err := r.conn.GetContext(ctx, res, tokenGetByHashQ, tokenHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

func (r *Repository) RevokeDeviceToken(ctx context.Context, tokenID uint64) error {
	const op = "devices.RevokeDeviceToken.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, tokenRevokeQ, tokenID)
	if err != nil {
		return err
	}

	if aff, _ := res.RowsAffected(); aff == 0 {
		return repo.ErrNotFound
	}

	return nil
}

func (r *Repository) RevokeAllDeviceTokens(ctx context.Context, deviceID uuid.UUID) error {
	const op = "devices.RevokeAllDeviceTokens.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	_, err := r.conn.ExecContext(ctx, tokenRevokeAllQ, deviceID)
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
