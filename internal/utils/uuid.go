package utils

import "github.com/google/uuid"

// NewTraceID returns a time-ordered UUIDv7 string. If the v7 generator
// fails, a random v4 is returned instead.
func NewTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
