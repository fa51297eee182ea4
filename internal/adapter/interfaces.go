// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the logbook REST API, used by the
// logbook CLI.
//
// [LogbookAPI] hides the transport from the commands. The HTTP
// implementation ([NewHTTPLogbookAPI]) maps non-2xx responses to the sentinel
// errors in errors.go, so callers can use [errors.Is] (e.g. [ErrForbidden]
// for 403, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-fleet-logbook/models"
)

// LogbookAPI is the subset of the logbook server API the CLI needs.
type LogbookAPI interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" when there is none.
	Token() string

	// Login opens a session with email and password and stores the issued
	// token via SetToken.
	Login(ctx context.Context, credentials models.Credentials) (models.LoginResponse, error)

	// Logout closes the session of the stored token.
	Logout(ctx context.Context) error

	// Version reports the build of the server.
	Version(ctx context.Context) (models.VersionInfo, error)

	// ImportVehicles uploads a fleet export document. With dryRun the server
	// only reports what it would create.
	ImportVehicles(ctx context.Context, document []byte, dryRun bool) (models.ImportReport, error)

	// MonthReport fetches every driver's total for month.
	MonthReport(ctx context.Context, month models.MonthKey) ([]models.MonthlyTotal, error)
}
