// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches storage:
// registration and login credentials, vanity names, and dashboard profile
// edits.
//
// Services hold a [Validator] and call it with whatever value they are
// about to persist. The concrete [UserValidator] dispatches on the dynamic
// type of that value; unknown types are rejected with [ErrUnsupportedType].
package validators

import "context"

// Validator validates a value. fields, when given, restricts the check to
// the named fields of a struct.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
