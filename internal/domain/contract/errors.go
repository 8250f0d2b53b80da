package contract

import "errors"

// Errors returned by the repositories. Adapters translate driver errors
// into these so use cases never depend on a driver package.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrTuitNotFound      = errors.New("tuit not found")
	ErrDuplicateUser     = errors.New("user already exists")
	ErrDuplicateReaction = errors.New("reaction already exists")
)
