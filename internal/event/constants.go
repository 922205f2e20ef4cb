package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Log message constants
const (
	LogMsgEventPublishFailed = "Failed to publish event, initiating async retry"
	LogMsgEventRetryFailed   = "Event retry failed"
	LogMsgEventRetryOK       = "Successfully published event after retry"
	LogMsgDeadLetterWritten  = "Event written to dead letter queue"

	LogMsgHandlerErrorFormat = "%d handler(s) failed for event %s: %v"
)
