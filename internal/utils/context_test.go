// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-fleet-logbook/models"
)

func TestContextKeyString(t *testing.T) {
	if CallerCtxKey.String() != "caller" {
		t.Errorf("expected 'caller', got '%s'", CallerCtxKey.String())
	}
}

func TestWithCaller(t *testing.T) {
	user := models.User{ID: "u1", Role: models.RoleDriver}
	ctx := WithCaller(context.Background(), user, "s1")

	caller, ok := GetCallerFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if caller.ID != "u1" {
		t.Errorf("expected caller u1, got %s", caller.ID)
	}

	sessionID, ok := GetSessionIDFromContext(ctx)
	if !ok || sessionID != "s1" {
		t.Errorf("expected session s1, got %q (ok=%v)", sessionID, ok)
	}
}

func TestGetCallerFromContext_Missing(t *testing.T) {
	if _, ok := GetCallerFromContext(context.Background()); ok {
		t.Error("expected ok=false for empty context")
	}
	if _, ok := GetSessionIDFromContext(context.Background()); ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestGetCallerFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), CallerCtxKey, "u1")
	if _, ok := GetCallerFromContext(ctx); ok {
		t.Error("expected ok=false for wrong type")
	}
}
