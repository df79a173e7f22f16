// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the menu rules enforced before drinks reach
// storage.
//
// A Validator checks a value as a whole, or only the named fields when a
// field list is given. Validators are injected into services so transport
// and storage stay free of business rules.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
