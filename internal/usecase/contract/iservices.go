package usecasecontract

import "time"

// IAppLogger is the logging port used by the use cases.
type IAppLogger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

// IConfigProvider exposes the settings use cases depend on.
type IConfigProvider interface {
	GetAccessTokenExpiry() time.Duration
	GetTuitCacheTTL() time.Duration
	GetToggleLockEnabled() bool
	GetReactionUniqueIndex() bool
}

type IValidator interface {
	ValidateEmail(email string) error
	ValidatePasswordStrength(password string) error
}
