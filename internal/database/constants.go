package database

import "time"

// Connection pool defaults
const (
	DefaultMaxConnections  = 25
	DefaultMinConnections  = 2
	DefaultMaxConnIdleTime = 5 * time.Minute
	DefaultMaxConnLifetime = 30 * time.Minute
)
