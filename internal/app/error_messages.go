// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// coffee-shop server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
package app

const (
	// MsgResourceNotFound is returned for an unknown drink id, an empty
	// menu, and any path or method the API does not serve.
	MsgResourceNotFound = "resource not found"

	// MsgUnprocessable is returned when the request body cannot be decoded,
	// fails validation, or would duplicate an existing drink title.
	MsgUnprocessable = "unprocessable"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgNewDrinkAdded accompanies the drink created by POST /drinks.
	MsgNewDrinkAdded = "New drink added"

	// MsgDrinkUpdated accompanies the drink changed by PATCH /drinks/{id}.
	MsgDrinkUpdated = "Drink Updated"
)
