package repo

import "errors"

// ErrNotFound is returned when a record is not found.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned on a unique-key conflict, so callers see an
// explicit conflict result rather than a driver error.
var ErrAlreadyExists = errors.New("already exists")

// ErrNotRedeemable is returned when the redemption compare-and-swap matched
// no row: the ticket left the valid state between read and write.
var ErrNotRedeemable = errors.New("ticket is not redeemable")
