package bootstrap

import "time"

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// ServiceName tags every log line emitted by this process
	ServiceName = "pockettrader"

	// MaxLogFiles caps session log files kept in the log directory
	MaxLogFiles = 10
)

// Event system defaults, used when the config leaves them unset.
const (
	EventDefaultMaxRetries     = 5
	EventDefaultRetryDelay     = 2 * time.Second
	EventDefaultDeadLetterPath = "logs/event_deadletter.jsonl"
)

// ==================== Log Messages ====================

const (
	LogMsgEventSystemInitialized    = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir = "failed to create dead-letter directory"
	LogMsgSyncingCards              = "Syncing card catalog from JSON config..."
	LogMsgCardsSynced               = "Card catalog synced successfully"
	LogMsgShuttingDownServer        = "Shutting down server..."
	LogMsgServerForcedShutdown      = "Server forced to shutdown"
	LogMsgServerStopped             = "Server stopped"
	LogMsgUsingMemoryStore          = "Using in-memory store; data will not survive a restart"
)
