package ctrl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JMURv/gate-access/internal/auth"
	"github.com/JMURv/gate-access/internal/config"
	"github.com/JMURv/gate-access/internal/dto"
	md "github.com/JMURv/gate-access/internal/models"
	"github.com/JMURv/gate-access/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type deviceCtrl interface {
	AuthenticateDevice(ctx context.Context, ip string, req *dto.DeviceLoginRequest) (*dto.DeviceLoginResponse, error)
	VerifyDevice(ctx context.Context, tokenStr string) (*dto.DeviceContext, error)
	LogoutDevice(ctx context.Context, d *dto.DeviceContext) error
	CreateDevice(ctx context.Context, req *dto.CreateDeviceRequest) (*dto.CreateDeviceResponse, error)
	ListDevices(ctx context.Context, organizerID uuid.UUID, page, size int) (*dto.PaginatedDeviceResponse, error)
	GetDevice(ctx context.Context, deviceID uuid.UUID) (*md.Device, error)
	UpdateDevice(ctx context.Context, deviceID uuid.UUID, req *dto.UpdateDeviceRequest) error
	DeleteDevice(ctx context.Context, deviceID uuid.UUID) error
}

type deviceRepo interface {
	CreateDevice(ctx context.Context, req *dto.CreateDeviceRequest, publicID, secretHash string) (uuid.UUID, error)
	GetDeviceByID(ctx context.Context, deviceID uuid.UUID) (*md.Device, error)
	GetDeviceByPublicID(ctx context.Context, publicID string) (*md.Device, error)
	ListDevices(ctx context.Context, organizerID uuid.UUID, page, size int) (*dto.PaginatedDeviceResponse, error)
	UpdateDevice(ctx context.Context, deviceID uuid.UUID, req *dto.UpdateDeviceRequest) error
	SetDeviceActive(ctx context.Context, deviceID uuid.UUID, active bool) error
	DeleteDevice(ctx context.Context, deviceID uuid.UUID) error
	TouchDeviceSeen(ctx context.Context, deviceID uuid.UUID, ip string) error
	CreateDeviceToken(ctx context.Context, deviceID uuid.UUID, tokenHash string, expiresAt time.Time) (uint64, error)
	GetDeviceTokenByHash(ctx context.Context, tokenHash string) (*md.DeviceToken, error)
	RevokeDeviceToken(ctx context.Context, tokenID uint64) error
	RevokeAllDeviceTokens(ctx context.Context, deviceID uuid.UUID) error
}

const (
	deviceCacheKey = "device:%v"
	devicesListKey = "devices-list:%v:%v:%v"
	devicesPattern = "devices-*"
)

func (c *Controller) AuthenticateDevice(
	ctx context.Context,
	ip string,
	req *dto.DeviceLoginRequest,
) (*dto.DeviceLoginResponse, error) {
	const op = "devices.AuthenticateDevice.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	device, err := c.repo.GetDeviceByPublicID(ctx, req.PublicID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	if !device.IsActive {
		return nil, auth.ErrDeviceInactive
	}

	if err = c.au.CompareSecrets([]byte(device.SecretHash), []byte(req.Secret)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	token, exp, err := c.au.NewDeviceToken(ctx, device.ID, device.StaffID, device.PublicID)
	if err != nil {
		return nil, err
	}

	if _, err = c.repo.CreateDeviceToken(ctx, device.ID, c.au.HashToken(token), exp); err != nil {
		return nil, err
	}

	if err = c.repo.TouchDeviceSeen(ctx, device.ID, ip); err != nil {
		zap.L().Warn(
			"Failed to update device last seen",
			zap.String("deviceID", device.ID.String()),
			zap.Error(err),
		)
	}

	return &dto.DeviceLoginResponse{Token: token, ExpiresAt: exp}, nil
}

// VerifyDevice validates the token signature and expiry, then always
// cross-checks the store: revocation and the device-active flag must be
// current. Positive results are never cached beyond this call.
func (c *Controller) VerifyDevice(ctx context.Context, tokenStr string) (*dto.DeviceContext, error) {
	const op = "devices.VerifyDevice.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	claims, err := c.au.ParseDeviceClaims(ctx, tokenStr)
	if err != nil {
		return nil, err
	}

	stored, err := c.repo.GetDeviceTokenByHash(ctx, c.au.HashToken(tokenStr))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, auth.ErrInvalidToken
		}
		return nil, err
	}

	if stored.RevokedAt != nil {
		return nil, auth.ErrTokenRevoked
	}

	if time.Now().After(stored.ExpiresAt) {
		return nil, auth.ErrTokenExpired
	}

	device, err := c.repo.GetDeviceByID(ctx, stored.DeviceID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, auth.ErrInvalidToken
		}
		return nil, err
	}

	if !device.IsActive {
		return nil, auth.ErrDeviceInactive
	}

	return &dto.DeviceContext{
		DeviceID:       device.ID,
		DevicePublicID: claims.DevicePublicID,
		StaffID:        device.StaffID,
		TokenID:        stored.ID,
	}, nil
}

func (c *Controller) LogoutDevice(ctx context.Context, d *dto.DeviceContext) error {
	const op = "devices.LogoutDevice.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	return c.repo.RevokeAllDeviceTokens(ctx, d.DeviceID)
}

func (c *Controller) CreateDevice(
	ctx context.Context,
	req *dto.CreateDeviceRequest,
) (*dto.CreateDeviceResponse, error) {
	const op = "devices.CreateDevice.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	publicID, err := c.au.GenerateCredential(config.PublicIDLength)
	if err != nil {
		return nil, err
	}

	secret, err := c.au.GenerateCredential(config.SecretLength)
	if err != nil {
		return nil, err
	}

	hash, err := c.au.HashSecret(secret)
	if err != nil {
		return nil, err
	}

	id, err := c.repo.CreateDevice(ctx, req, publicID, hash)
	if err != nil {
		if errors.Is(err, repo.ErrAlreadyExists) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}

	c.cache.InvalidateKeysByPattern(ctx, devicesPattern)

	go func() {
		_ = c.email.SendDeviceAlert(
			"Device created",
			fmt.Sprintf("Scanning device %q (%s) was registered for organizer %s", req.Label, publicID, req.OrganizerID),
		)
	}()

	return &dto.CreateDeviceResponse{ID: id, PublicID: publicID, Secret: secret}, nil
}

func (c *Controller) ListDevices(
	ctx context.Context,
	organizerID uuid.UUID,
	page, size int,
) (*dto.PaginatedDeviceResponse, error) {
	const op = "devices.ListDevices.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	cached := &dto.PaginatedDeviceResponse{}
	cacheKey := fmt.Sprintf(devicesListKey, organizerID, page, size)
	if err := c.cache.GetToStruct(ctx, cacheKey, cached); err == nil {
		return cached, nil
	}

	res, err := c.repo.ListDevices(ctx, organizerID, page, size)
	if err != nil {
		return nil, err
	}

	c.cache.Set(ctx, config.MinCacheTime, cacheKey, res)
	return res, nil
}

func (c *Controller) GetDevice(ctx context.Context, deviceID uuid.UUID) (*md.Device, error) {
	const op = "devices.GetDevice.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := c.repo.GetDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

func (c *Controller) UpdateDevice(
	ctx context.Context,
	deviceID uuid.UUID,
	req *dto.UpdateDeviceRequest,
) error {
	const op = "devices.UpdateDevice.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	// Deactivation flips the flag and revokes every outstanding token in a
	// single transaction, so a failed revoke can never leave an inactive
	// device with live token rows.
	if !req.IsActive {
		if err := c.repo.SetDeviceActive(ctx, deviceID, false); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}

		go func() {
			_ = c.email.SendDeviceAlert(
				"Device deactivated",
				fmt.Sprintf("Scanning device %s was deactivated, all tokens revoked", deviceID),
			)
		}()
	}

	if err := c.repo.UpdateDevice(ctx, deviceID, req); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	c.cache.Delete(ctx, fmt.Sprintf(deviceCacheKey, deviceID))
	c.cache.InvalidateKeysByPattern(ctx, devicesPattern)
	return nil
}

func (c *Controller) DeleteDevice(ctx context.Context, deviceID uuid.UUID) error {
	const op = "devices.DeleteDevice.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := c.repo.DeleteDevice(ctx, deviceID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	c.cache.Delete(ctx, fmt.Sprintf(deviceCacheKey, deviceID))
	c.cache.InvalidateKeysByPattern(ctx, devicesPattern)
	return nil
}
