package hdl

import "errors"

var ErrInternal = errors.New("internal error")
var ErrDecodeRequest = errors.New("decode request")
var ErrRateLimited = errors.New("too many requests")

var ErrFailedToGetDevice = errors.New("failed to get device from context")
var ErrFailedToParseUUID = errors.New("failed to parse uuid")
