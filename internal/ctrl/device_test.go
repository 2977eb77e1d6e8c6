package ctrl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/JMURv/gate-access/internal/auth"
	"github.com/JMURv/gate-access/internal/config"
	"github.com/JMURv/gate-access/internal/dto"
	md "github.com/JMURv/gate-access/internal/models"
	"github.com/JMURv/gate-access/internal/repo"
	"github.com/JMURv/gate-access/tests/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestController_AuthenticateDevice(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockCore(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)
	mockS3 := mocks.NewMockS3Service(ctrlMock)
	mockEmail := mocks.NewMockEmailService(ctrlMock)

	ctx := context.Background()
	ctrl := New(mockAuth, mockRepo, mockCache, mockS3, mockEmail, config.ScanConfig{})

	deviceID := uuid.New()
	testIP := "192.168.1.1"
	testToken := "signed-device-token"
	testHash := "sha256-of-token"
	testExp := time.Now().Add(8 * time.Hour)

	testRequest := &dto.DeviceLoginRequest{
		PublicID: "gate-a1",
		Secret:   "device-secret",
	}

	activeDevice := func() *md.Device {
		return &md.Device{
			ID:         deviceID,
			PublicID:   "gate-a1",
			SecretHash: "$2a$10$hashedsecret",
			IsActive:   true,
		}
	}

	tests := []struct {
		name    string
		setup   func()
		wantErr bool
		err     error
	}{
		{
			name: "Success",
			setup: func() {
				mockRepo.EXPECT().
					GetDeviceByPublicID(gomock.Any(), testRequest.PublicID).
					Return(activeDevice(), nil)
				mockAuth.EXPECT().
					CompareSecrets([]byte("$2a$10$hashedsecret"), []byte(testRequest.Secret)).
					Return(nil)
				mockAuth.EXPECT().
					NewDeviceToken(gomock.Any(), deviceID, gomock.Any(), "gate-a1").
					Return(testToken, testExp, nil)
				mockAuth.EXPECT().
					HashToken(testToken).
					Return(testHash)
				mockRepo.EXPECT().
					CreateDeviceToken(gomock.Any(), deviceID, testHash, testExp).
					Return(uint64(1), nil)
				mockRepo.EXPECT().
					TouchDeviceSeen(gomock.Any(), deviceID, testIP).
					Return(nil)
			},
		},
		{
			name: "UnknownPublicID",
			setup: func() {
				mockRepo.EXPECT().
					GetDeviceByPublicID(gomock.Any(), testRequest.PublicID).
					Return(nil, repo.ErrNotFound)
			},
			wantErr: true,
			err:     auth.ErrInvalidCredentials,
		},
		{
			name: "RepositoryError",
			setup: func() {
				mockRepo.EXPECT().
					GetDeviceByPublicID(gomock.Any(), testRequest.PublicID).
					Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
		{
			name: "InactiveDevice",
			setup: func() {
				d := activeDevice()
				d.IsActive = false
				mockRepo.EXPECT().
					GetDeviceByPublicID(gomock.Any(), testRequest.PublicID).
					Return(d, nil)
			},
			wantErr: true,
			err:     auth.ErrDeviceInactive,
		},
		{
			name: "WrongSecret",
			setup: func() {
				mockRepo.EXPECT().
					GetDeviceByPublicID(gomock.Any(), testRequest.PublicID).
					Return(activeDevice(), nil)
				mockAuth.EXPECT().
					CompareSecrets(gomock.Any(), gomock.Any()).
					Return(errors.New("hash mismatch"))
			},
			wantErr: true,
			err:     auth.ErrInvalidCredentials,
		},
		{
			name: "TokenGenerationError",
			setup: func() {
				mockRepo.EXPECT().
					GetDeviceByPublicID(gomock.Any(), testRequest.PublicID).
					Return(activeDevice(), nil)
				mockAuth.EXPECT().
					CompareSecrets(gomock.Any(), gomock.Any()).
					Return(nil)
				mockAuth.EXPECT().
					NewDeviceToken(gomock.Any(), deviceID, gomock.Any(), "gate-a1").
					Return("", time.Time{}, errors.New("sign error"))
			},
			wantErr: true,
		},
		{
			name: "PersistTokenError",
			setup: func() {
				mockRepo.EXPECT().
					GetDeviceByPublicID(gomock.Any(), testRequest.PublicID).
					Return(activeDevice(), nil)
				mockAuth.EXPECT().
					CompareSecrets(gomock.Any(), gomock.Any()).
					Return(nil)
				mockAuth.EXPECT().
					NewDeviceToken(gomock.Any(), deviceID, gomock.Any(), "gate-a1").
					Return(testToken, testExp, nil)
				mockAuth.EXPECT().
					HashToken(testToken).
					Return(testHash)
				mockRepo.EXPECT().
					CreateDeviceToken(gomock.Any(), deviceID, testHash, testExp).
					Return(uint64(0), errors.New("insert error"))
			},
			wantErr: true,
		},
		{
			name: "TouchSeenFailureIsNotFatal",
			setup: func() {
				mockRepo.EXPECT().
					GetDeviceByPublicID(gomock.Any(), testRequest.PublicID).
					Return(activeDevice(), nil)
				mockAuth.EXPECT().
					CompareSecrets(gomock.Any(), gomock.Any()).
					Return(nil)
				mockAuth.EXPECT().
					NewDeviceToken(gomock.Any(), deviceID, gomock.Any(), "gate-a1").
					Return(testToken, testExp, nil)
				mockAuth.EXPECT().
					HashToken(testToken).
					Return(testHash)
				mockRepo.EXPECT().
					CreateDeviceToken(gomock.Any(), deviceID, testHash, testExp).
					Return(uint64(2), nil)
				mockRepo.EXPECT().
					TouchDeviceSeen(gomock.Any(), deviceID, testIP).
					Return(errors.New("update error"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}

			res, err := ctrl.AuthenticateDevice(ctx, testIP, testRequest)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.err != nil {
					assert.ErrorIs(t, err, tt.err)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, testToken, res.Token)
				assert.Equal(t, testExp, res.ExpiresAt)
			}
		})
	}
}

func TestController_VerifyDevice(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockCore(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)
	mockS3 := mocks.NewMockS3Service(ctrlMock)
	mockEmail := mocks.NewMockEmailService(ctrlMock)

	ctx := context.Background()
	ctrl := New(mockAuth, mockRepo, mockCache, mockS3, mockEmail, config.ScanConfig{})

	deviceID := uuid.New()
	testToken := "signed-device-token"
	testHash := "sha256-of-token"
	revokedAt := time.Now().Add(-time.Minute)

	testClaims := auth.DeviceClaims{
		DeviceID:       deviceID,
		DevicePublicID: "gate-a1",
	}

	storedToken := func() *md.DeviceToken {
		return &md.DeviceToken{
			ID:        7,
			DeviceID:  deviceID,
			TokenHash: testHash,
			ExpiresAt: time.Now().Add(time.Hour),
		}
	}

	activeDevice := func() *md.Device {
		return &md.Device{
			ID:       deviceID,
			PublicID: "gate-a1",
			IsActive: true,
		}
	}

	tests := []struct {
		name    string
		setup   func()
		wantErr bool
		err     error
	}{
		{
			name: "Success",
			setup: func() {
				mockAuth.EXPECT().
					ParseDeviceClaims(gomock.Any(), testToken).
					Return(testClaims, nil)
				mockAuth.EXPECT().
					HashToken(testToken).
					Return(testHash)
				mockRepo.EXPECT().
					GetDeviceTokenByHash(gomock.Any(), testHash).
					Return(storedToken(), nil)
				mockRepo.EXPECT().
					GetDeviceByID(gomock.Any(), deviceID).
					Return(activeDevice(), nil)
			},
		},
		{
			name: "BadSignature",
			setup: func() {
				mockAuth.EXPECT().
					ParseDeviceClaims(gomock.Any(), testToken).
					Return(auth.DeviceClaims{}, auth.ErrInvalidToken)
			},
			wantErr: true,
			err:     auth.ErrInvalidToken,
		},
		{
			name: "UnknownTokenHash",
			setup: func() {
				mockAuth.EXPECT().
					ParseDeviceClaims(gomock.Any(), testToken).
					Return(testClaims, nil)
				mockAuth.EXPECT().
					HashToken(testToken).
					Return(testHash)
				mockRepo.EXPECT().
					GetDeviceTokenByHash(gomock.Any(), testHash).
					Return(nil, repo.ErrNotFound)
			},
			wantErr: true,
			err:     auth.ErrInvalidToken,
		},
		{
			name: "RevokedTokenRejectedImmediately",
			setup: func() {
				tok := storedToken()
				tok.RevokedAt = &revokedAt
				mockAuth.EXPECT().
					ParseDeviceClaims(gomock.Any(), testToken).
					Return(testClaims, nil)
				mockAuth.EXPECT().
					HashToken(testToken).
					Return(testHash)
				mockRepo.EXPECT().
					GetDeviceTokenByHash(gomock.Any(), testHash).
					Return(tok, nil)
			},
			wantErr: true,
			err:     auth.ErrTokenRevoked,
		},
		{
			name: "StoredExpiryPassed",
			setup: func() {
				tok := storedToken()
				tok.ExpiresAt = time.Now().Add(-time.Minute)
				mockAuth.EXPECT().
					ParseDeviceClaims(gomock.Any(), testToken).
					Return(testClaims, nil)
				mockAuth.EXPECT().
					HashToken(testToken).
					Return(testHash)
				mockRepo.EXPECT().
					GetDeviceTokenByHash(gomock.Any(), testHash).
					Return(tok, nil)
			},
			wantErr: true,
			err:     auth.ErrTokenExpired,
		},
		{
			name: "DeviceGone",
			setup: func() {
				mockAuth.EXPECT().
					ParseDeviceClaims(gomock.Any(), testToken).
					Return(testClaims, nil)
				mockAuth.EXPECT().
					HashToken(testToken).
					Return(testHash)
				mockRepo.EXPECT().
					GetDeviceTokenByHash(gomock.Any(), testHash).
					Return(storedToken(), nil)
				mockRepo.EXPECT().
					GetDeviceByID(gomock.Any(), deviceID).
					Return(nil, repo.ErrNotFound)
			},
			wantErr: true,
			err:     auth.ErrInvalidToken,
		},
		{
			name: "DeviceDeactivatedAfterIssue",
			setup: func() {
				d := activeDevice()
				d.IsActive = false
				mockAuth.EXPECT().
					ParseDeviceClaims(gomock.Any(), testToken).
					Return(testClaims, nil)
				mockAuth.EXPECT().
					HashToken(testToken).
					Return(testHash)
				mockRepo.EXPECT().
					GetDeviceTokenByHash(gomock.Any(), testHash).
					Return(storedToken(), nil)
				mockRepo.EXPECT().
					GetDeviceByID(gomock.Any(), deviceID).
					Return(d, nil)
			},
			wantErr: true,
			err:     auth.ErrDeviceInactive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}

			res, err := ctrl.VerifyDevice(ctx, testToken)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.err != nil {
					assert.ErrorIs(t, err, tt.err)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, deviceID, res.DeviceID)
				assert.Equal(t, "gate-a1", res.DevicePublicID)
				assert.Equal(t, uint64(7), res.TokenID)
			}
		})
	}
}

func TestController_CreateDevice(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockCore(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)
	mockS3 := mocks.NewMockS3Service(ctrlMock)
	mockEmail := mocks.NewMockEmailService(ctrlMock)

	ctx := context.Background()
	ctrl := New(mockAuth, mockRepo, mockCache, mockS3, mockEmail, config.ScanConfig{})

	deviceID := uuid.New()
	testRequest := &dto.CreateDeviceRequest{
		Label:       "Gate A",
		OrganizerID: uuid.New(),
	}

	tests := []struct {
		name    string
		setup   func()
		wantErr bool
		err     error
	}{
		{
			name: "Success",
			setup: func() {
				mockAuth.EXPECT().
					GenerateCredential(config.PublicIDLength).
					Return("pub-id", nil)
				mockAuth.EXPECT().
					GenerateCredential(config.SecretLength).
					Return("plain-secret", nil)
				mockAuth.EXPECT().
					HashSecret("plain-secret").
					Return("$2a$10$hash", nil)
				mockRepo.EXPECT().
					CreateDevice(gomock.Any(), testRequest, "pub-id", "$2a$10$hash").
					Return(deviceID, nil)
				mockCache.EXPECT().
					InvalidateKeysByPattern(gomock.Any(), devicesPattern)
				mockEmail.EXPECT().
					SendDeviceAlert(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "DuplicateLabel",
			setup: func() {
				mockAuth.EXPECT().
					GenerateCredential(config.PublicIDLength).
					Return("pub-id", nil)
				mockAuth.EXPECT().
					GenerateCredential(config.SecretLength).
					Return("plain-secret", nil)
				mockAuth.EXPECT().
					HashSecret("plain-secret").
					Return("$2a$10$hash", nil)
				mockRepo.EXPECT().
					CreateDevice(gomock.Any(), testRequest, "pub-id", "$2a$10$hash").
					Return(uuid.Nil, repo.ErrAlreadyExists)
			},
			wantErr: true,
			err:     ErrAlreadyExists,
		},
		{
			name: "CredentialGenerationError",
			setup: func() {
				mockAuth.EXPECT().
					GenerateCredential(config.PublicIDLength).
					Return("", errors.New("entropy error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}

			res, err := ctrl.CreateDevice(ctx, testRequest)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.err != nil {
					assert.ErrorIs(t, err, tt.err)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, deviceID, res.ID)
				assert.Equal(t, "pub-id", res.PublicID)
				assert.Equal(t, "plain-secret", res.Secret)
			}
		})
	}
}

func TestController_UpdateDevice(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockCore(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)
	mockS3 := mocks.NewMockS3Service(ctrlMock)
	mockEmail := mocks.NewMockEmailService(ctrlMock)

	ctx := context.Background()
	ctrl := New(mockAuth, mockRepo, mockCache, mockS3, mockEmail, config.ScanConfig{})

	deviceID := uuid.New()

	tests := []struct {
		name    string
		input   *dto.UpdateDeviceRequest
		setup   func(req *dto.UpdateDeviceRequest)
		wantErr bool
		err     error
	}{
		{
			name:  "SuccessKeepActive",
			input: &dto.UpdateDeviceRequest{Label: "Gate A", IsActive: true},
			setup: func(req *dto.UpdateDeviceRequest) {
				mockRepo.EXPECT().
					UpdateDevice(gomock.Any(), deviceID, req).
					Return(nil)
				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any())
				mockCache.EXPECT().
					InvalidateKeysByPattern(gomock.Any(), devicesPattern)
			},
		},
		{
			name:  "DeactivationRevokesTokensAtomically",
			input: &dto.UpdateDeviceRequest{Label: "Gate A", IsActive: false},
			setup: func(req *dto.UpdateDeviceRequest) {
				mockRepo.EXPECT().
					SetDeviceActive(gomock.Any(), deviceID, false).
					Return(nil)
				mockRepo.EXPECT().
					UpdateDevice(gomock.Any(), deviceID, req).
					Return(nil)
				mockEmail.EXPECT().
					SendDeviceAlert(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any())
				mockCache.EXPECT().
					InvalidateKeysByPattern(gomock.Any(), devicesPattern)
			},
		},
		{
			name:  "NotFound",
			input: &dto.UpdateDeviceRequest{Label: "Gate A", IsActive: true},
			setup: func(req *dto.UpdateDeviceRequest) {
				mockRepo.EXPECT().
					UpdateDevice(gomock.Any(), deviceID, req).
					Return(repo.ErrNotFound)
			},
			wantErr: true,
			err:     ErrNotFound,
		},
		{
			name:  "DeactivateNotFound",
			input: &dto.UpdateDeviceRequest{Label: "Gate A", IsActive: false},
			setup: func(req *dto.UpdateDeviceRequest) {
				mockRepo.EXPECT().
					SetDeviceActive(gomock.Any(), deviceID, false).
					Return(repo.ErrNotFound)
			},
			wantErr: true,
			err:     ErrNotFound,
		},
		{
			// A failed deactivate+revoke transaction must not leave the
			// device updated; no follow-up write is expected here.
			name:  "DeactivateErrorSkipsUpdate",
			input: &dto.UpdateDeviceRequest{Label: "Gate A", IsActive: false},
			setup: func(req *dto.UpdateDeviceRequest) {
				mockRepo.EXPECT().
					SetDeviceActive(gomock.Any(), deviceID, false).
					Return(errors.New("tx error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup(tt.input)
			}

			err := ctrl.UpdateDevice(ctx, deviceID, tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.err != nil {
					assert.ErrorIs(t, err, tt.err)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestController_ListDevices(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockCore(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)
	mockS3 := mocks.NewMockS3Service(ctrlMock)
	mockEmail := mocks.NewMockEmailService(ctrlMock)

	ctx := context.Background()
	ctrl := New(mockAuth, mockRepo, mockCache, mockS3, mockEmail, config.ScanConfig{})

	organizerID := uuid.New()
	expected := &dto.PaginatedDeviceResponse{
		Data:        []dto.DeviceResponse{{ID: uuid.New(), Label: "Gate A"}},
		Count:       1,
		TotalPages:  1,
		CurrentPage: 1,
	}

	t.Run("CacheMiss", func(t *testing.T) {
		mockCache.EXPECT().
			GetToStruct(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			ListDevices(gomock.Any(), organizerID, 1, 40).
			Return(expected, nil)
		mockCache.EXPECT().
			Set(gomock.Any(), gomock.Any(), gomock.Any(), expected)

		res, err := ctrl.ListDevices(ctx, organizerID, 1, 40)
		assert.NoError(t, err)
		assert.Equal(t, expected, res)
	})

	t.Run("CacheHit", func(t *testing.T) {
		mockCache.EXPECT().
			GetToStruct(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := ctrl.ListDevices(ctx, organizerID, 1, 40)
		assert.NoError(t, err)
		assert.NotNil(t, res)
	})

	t.Run("RepositoryError", func(t *testing.T) {
		mockCache.EXPECT().
			GetToStruct(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			ListDevices(gomock.Any(), organizerID, 1, 40).
			Return(nil, errors.New("db error"))

		_, err := ctrl.ListDevices(ctx, organizerID, 1, 40)
		assert.Error(t, err)
	})
}

func TestController_LogoutDevice(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockCore(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)
	mockS3 := mocks.NewMockS3Service(ctrlMock)
	mockEmail := mocks.NewMockEmailService(ctrlMock)

	ctx := context.Background()
	ctrl := New(mockAuth, mockRepo, mockCache, mockS3, mockEmail, config.ScanConfig{})

	device := &dto.DeviceContext{DeviceID: uuid.New(), TokenID: 3}

	t.Run("Success", func(t *testing.T) {
		mockRepo.EXPECT().
			RevokeAllDeviceTokens(gomock.Any(), device.DeviceID).
			Return(nil)

		assert.NoError(t, ctrl.LogoutDevice(ctx, device))
	})

	t.Run("RepositoryError", func(t *testing.T) {
		mockRepo.EXPECT().
			RevokeAllDeviceTokens(gomock.Any(), device.DeviceID).
			Return(errors.New("db error"))

		assert.Error(t, ctrl.LogoutDevice(ctx, device))
	})
}

func TestController_DeleteDevice(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockCore(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)
	mockS3 := mocks.NewMockS3Service(ctrlMock)
	mockEmail := mocks.NewMockEmailService(ctrlMock)

	ctx := context.Background()
	ctrl := New(mockAuth, mockRepo, mockCache, mockS3, mockEmail, config.ScanConfig{})

	deviceID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockRepo.EXPECT().
			DeleteDevice(gomock.Any(), deviceID).
			Return(nil)
		mockCache.EXPECT().
			Delete(gomock.Any(), gomock.Any())
		mockCache.EXPECT().
			InvalidateKeysByPattern(gomock.Any(), devicesPattern)

		assert.NoError(t, ctrl.DeleteDevice(ctx, deviceID))
	})

	t.Run("NotFound", func(t *testing.T) {
		mockRepo.EXPECT().
			DeleteDevice(gomock.Any(), deviceID).
			Return(repo.ErrNotFound)

		assert.ErrorIs(t, ctrl.DeleteDevice(ctx, deviceID), ErrNotFound)
	})
}
