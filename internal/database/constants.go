package database

import "time"

// Pool settings not worth a config knob.
const (
	// DefaultMinConnections keeps a couple of warm connections so the first
	// request after an idle stretch does not pay the handshake.
	DefaultMinConnections = 2

	// StartupPingTimeout bounds the connectivity check in NewPool.
	StartupPingTimeout = 10 * time.Second
)

// Error messages for pool construction
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
)

// Log messages
const (
	LogMsgDatabaseConnected = "Connected to the database"
)
