// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the handlers themselves, before a request
// reaches the service layer. Callers can match against them with [errors.Is].
var (
	// ErrInvalidDrinkIDParam is returned when the {id} path segment is not a
	// positive integer.
	ErrInvalidDrinkIDParam = errors.New("drink id must be a positive integer")

	// ErrDecodingRequestBody is returned when the request body is not a
	// single JSON value of the expected shape.
	ErrDecodingRequestBody = errors.New("error decoding request body")
)
