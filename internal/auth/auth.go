package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/JMURv/gate-access/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type Core interface {
	GetExpiryTime() time.Time
	NewDeviceToken(ctx context.Context, deviceID uuid.UUID, staffID *uuid.UUID, publicID string) (string, time.Time, error)
	ParseDeviceClaims(ctx context.Context, tokenStr string) (DeviceClaims, error)
	HashSecret(secret string) (string, error)
	CompareSecrets(hashed, secret []byte) error
	HashToken(tokenStr string) string
	GenerateCredential(n int) (string, error)
}

// DeviceClaims carries device identity inside the signed token to spare a
// store round trip for the non-security-critical fields. Revocation and the
// device-active flag are always re-checked against the store by callers.
type DeviceClaims struct {
	DeviceID       uuid.UUID  `json:"did"`
	StaffID        *uuid.UUID `json:"sid,omitempty"`
	DevicePublicID string     `json:"dpid"`
	jwt.RegisteredClaims
}

type Auth struct {
	secret []byte
	issuer string
}

func New(conf config.Config) *Auth {
	return &Auth{
		secret: []byte(conf.Auth.JWT.Secret),
		issuer: conf.Auth.JWT.Issuer,
	}
}

func (a *Auth) GetExpiryTime() time.Time {
	return time.Now().Add(config.DeviceTokenDuration)
}

func (a *Auth) NewDeviceToken(
	ctx context.Context,
	deviceID uuid.UUID,
	staffID *uuid.UUID,
	publicID string,
) (string, time.Time, error) {
	const op = "auth.NewDeviceToken"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	exp := a.GetExpiryTime()
	signed, err := jwt.NewWithClaims(
		jwt.SigningMethodHS256, &DeviceClaims{
			DeviceID:       deviceID,
			StaffID:        staffID,
			DevicePublicID: publicID,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(exp),
				IssuedAt:  jwt.NewNumericDate(time.Now()),
				Issuer:    a.issuer,
			},
		},
	).SignedString(a.secret)
	if err != nil {
		zap.L().Error(
			ErrWhileCreatingToken.Error(),
			zap.String("deviceID", deviceID.String()),
			zap.Error(err),
		)

		return "", time.Time{}, ErrWhileCreatingToken
	}

	return signed, exp, nil
}

func (a *Auth) ParseDeviceClaims(ctx context.Context, tokenStr string) (DeviceClaims, error) {
	const op = "auth.ParseDeviceClaims"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	claims := DeviceClaims{}
	token, err := jwt.ParseWithClaims(
		tokenStr, &claims, func(token *jwt.Token) (any, error) {
			if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, ErrUnexpectedSignMethod
			}

			return a.secret, nil
		},
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return claims, ErrTokenExpired
		}

		zap.L().Debug(
			"Failed to parse device claims",
			zap.String("op", op),
			zap.Error(err),
		)

		return claims, ErrInvalidToken
	}

	if !token.Valid {
		return claims, ErrInvalidToken
	}

	return claims, nil
}

func (a *Auth) HashSecret(secret string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	return string(bytes), err
}

func (a *Auth) CompareSecrets(hashed, secret []byte) error {
	if err := bcrypt.CompareHashAndPassword(hashed, secret); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// HashToken produces the digest under which an issued token is persisted.
// The raw token never touches the store.
func (a *Auth) HashToken(tokenStr string) string {
	sum := sha256.Sum256([]byte(tokenStr))
	return hex.EncodeToString(sum[:])
}

func (a *Auth) GenerateCredential(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
