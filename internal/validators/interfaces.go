// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for the CPF service.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values.
//     Supports optional field-level scoping so callers can run only a
//     subset of the rules (e.g. only the length check).
//   - CPFValidator: the Brazilian CPF checksum validator.
//   - ValidateCPF: pure function returning a structured result instead
//     of an error; this is what the HTTP layer serves.
//
// Everything in this package is stateless and safe for concurrent use.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
