package shared

import "time"

// Environments
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// HTTP Status Codes
const (
	StatusOK                  = 200
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusNotFound            = 404
	StatusConflict            = 409
	StatusGone                = 410
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
)

// Room lifecycle
const (
	// DefaultRoomDurationHours applies when the creator does not pick
	// a duration.
	DefaultRoomDurationHours = 24

	// MaxRoomDurationHours caps how long a throwaway room can live.
	MaxRoomDurationHours = 72

	// PurgeSweepInterval is how often expired rooms are swept from
	// the table.
	PurgeSweepInterval = 10 * time.Minute
)
