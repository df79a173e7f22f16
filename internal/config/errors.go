package config

import "errors"

// Validation errors returned while building an [Environment] or one of the
// configuration views.
var (
	// ErrInvalidEnvironment wraps every failure of [NewEnvironment].
	ErrInvalidEnvironment = errors.New("invalid environment configuration")
	// ErrEmptyField indicates a required string field is blank.
	ErrEmptyField = errors.New("required field is empty")
	// ErrMalformedURL indicates a URL field that is not an absolute
	// http(s) URL with a host.
	ErrMalformedURL = errors.New("malformed URL")
	// ErrInvalidAuth0Domain indicates an identity-provider tenant domain
	// containing characters that are not allowed in a host name.
	ErrInvalidAuth0Domain = errors.New("invalid auth0 tenant domain")
	// ErrInsecureProductionURL indicates a plain-http URL in a production
	// environment.
	ErrInsecureProductionURL = errors.New("production URLs must use https")
	// ErrUnknownDeployTarget indicates an unsupported deployment target name.
	ErrUnknownDeployTarget = errors.New("unknown deploy target")
)

var (
	// ErrInvalidServerConfigs indicates invalid transport settings
	// (for example, an empty HTTP address or zero request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unsupported driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero refresh interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
