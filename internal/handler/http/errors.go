// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the transport layer. Callers can match against them
// with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request carries no "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidMonthParam is returned when the "month" query parameter is
	// missing or not in YYYY-MM form.
	ErrInvalidMonthParam = errors.New("query parameter `month` must be YYYY-MM")

	// ErrInvalidDryRunParam is returned when the "dryRun" query parameter
	// is not a boolean.
	ErrInvalidDryRunParam = errors.New("query parameter `dryRun` must be a boolean")

	// ErrInvalidLimitParam is returned when the "limit" query parameter is
	// not an integer.
	ErrInvalidLimitParam = errors.New("query parameter `limit` must be an integer")

	// ErrEmptyImportDocument is returned when a vehicle import request has
	// no body.
	ErrEmptyImportDocument = errors.New("import document is empty")
)
