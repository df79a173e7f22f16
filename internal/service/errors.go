package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrNoDrinks              = errors.New("no drinks on the menu")
	ErrVersionIsNotSpecified = errors.New("version is not specified")

	ErrKeySetUnavailable = errors.New("identity provider key set is unavailable")
	ErrKeyNotFound       = errors.New("no signing key matches the token")
)
