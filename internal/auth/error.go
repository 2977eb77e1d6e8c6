package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	// ErrTokenRevoked indicates the stored token record was revoked after issue.
	ErrTokenRevoked = errors.New("token revoked")
	// ErrDeviceInactive indicates the owning device was deactivated.
	ErrDeviceInactive       = errors.New("device inactive")
	ErrMissingHeader        = errors.New("missing authorization header")
	ErrWhileCreatingToken   = errors.New("error while creating token")
	ErrUnexpectedSignMethod = errors.New("unexpected signing method")
)
