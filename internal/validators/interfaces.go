// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks domain objects before they reach the store.
//
// Every validator accepts values and pointers of the types it knows and an
// optional list of field names restricting which rules run. Without field
// names every rule runs.
package validators

import "context"

// Validator validates a domain object, optionally only the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
