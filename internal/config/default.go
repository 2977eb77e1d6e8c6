package config

import "time"

type ctxKey string

const DeviceKey ctxKey = "device"

const (
	DefaultPage      = 1
	DefaultSize      = 40
	DefaultCacheTime = time.Hour
	MinCacheTime     = time.Minute * 5
)

const (
	DeviceTokenDuration = time.Hour * 8
	SecretLength        = 32
	PublicIDLength      = 8
)
