// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-fleet-logbook/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validSector() models.Sector {
	return models.Sector{
		ID:   "s1",
		Name: "Container",
		Fields: []models.FieldDefinition{
			{ID: "f1", Label: "Tipologia", Type: models.FieldSelect, Required: true, Options: []string{"20 Box", "40 HC"}},
			{ID: "f2", Label: "Peso", Type: models.FieldNumber},
		},
	}
}

// ---------------------------------------------------------------------------
// SectorValidator
// ---------------------------------------------------------------------------

func TestSectorValidator_Dispatch(t *testing.T) {
	v := NewSectorValidator()
	s := validSector()

	assert.NoError(t, v.Validate(context.Background(), s))
	assert.NoError(t, v.Validate(context.Background(), &s))
	assert.ErrorIs(t, v.Validate(context.Background(), "sector"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), s, "colour"), ErrUnknownField)
}

func TestSectorValidator_Rules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Sector)
		wantErr error
	}{
		{name: "blank name", mutate: func(s *models.Sector) { s.Name = "  " }, wantErr: ErrEmptySectorName},
		{name: "missing label", mutate: func(s *models.Sector) { s.Fields[1].Label = "" }, wantErr: ErrEmptyFieldLabel},
		{name: "select without options", mutate: func(s *models.Sector) { s.Fields[0].Options = nil }, wantErr: ErrSelectWithoutOptions},
		{name: "options on text field", mutate: func(s *models.Sector) { s.Fields[1].Options = []string{"x"} }, wantErr: ErrOptionsOnNonSelect},
		{name: "unknown type", mutate: func(s *models.Sector) { s.Fields[1].Type = "date" }, wantErr: ErrInvalidFieldType},
		{name: "duplicate id", mutate: func(s *models.Sector) { s.Fields[1].ID = "f1" }, wantErr: ErrDuplicateFieldID},
		{name: "duplicate label ignoring case", mutate: func(s *models.Sector) { s.Fields[1].Label = "tipologia" }, wantErr: ErrDuplicateFieldLabel},
		{name: "fields may be empty", mutate: func(s *models.Sector) { s.Fields = nil }},
		{name: "ids may be unset", mutate: func(s *models.Sector) { s.Fields[0].ID, s.Fields[1].ID = "", "" }},
	}

	v := NewSectorValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSector()
			tt.mutate(&s)

			err := v.Validate(context.Background(), s)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSectorValidator_FirstBrokenFieldWins(t *testing.T) {
	s := validSector()
	s.Fields[0].Options = nil
	s.Fields[1].Label = ""

	err := NewSectorValidator().Validate(context.Background(), s, FieldSectorFields)
	assert.ErrorIs(t, err, ErrSelectWithoutOptions)
	assert.Contains(t, err.Error(), "Tipologia")
}

func TestSectorValidator_FieldScoping(t *testing.T) {
	s := validSector()
	s.Name = ""

	assert.NoError(t, NewSectorValidator().Validate(context.Background(), s, FieldSectorFields))
}
