// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks note requests and list queries before they reach
// the note service.
//
// Validators only enforce shape and size limits. Ownership and existence are
// decided later by the ownership authorizer.
package validators

import "context"

// Validator validates a value. When fields are given, only those fields are
// checked; see the Field* constants for the names a validator understands.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
