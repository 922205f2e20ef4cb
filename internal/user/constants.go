package user

// Username length bounds, enforced at registration.
const (
	MinUsernameLength = 3
	MaxUsernameLength = 32
)

// ==================== Error Messages ====================

const (
	ErrMsgGetUserFailed    = "failed to get user: %w"
	ErrMsgCreateUserFailed = "failed to create user: %w"
	ErrMsgListUsersFailed  = "failed to list users: %w"
)

const (
	ErrMsgUsernameLengthFmt = "username must be between %d and %d characters: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgRegisterCalled  = "Register called"
	LogMsgUserRegistered  = "User registered"
	LogMsgExistingUser    = "Existing user returned"
	LogMsgGetUserCalled   = "GetUser called"
	LogMsgListUsersCalled = "ListUsers called"
)
