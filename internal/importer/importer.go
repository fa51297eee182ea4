// Package importer maps loosely structured vehicle lists exported by other
// fleet tools onto [models.Vehicle].
//
// Field names are matched through an explicit table on normalized keys
// (lower case, letters and digits only). Rows whose plate cannot be
// resolved are reported in the unmatched bucket instead of being guessed.
package importer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-fleet-logbook/models"
)

var ErrMalformedDocument = errors.New("import document must be a JSON array or an object with a \"veicoli\" array")

// Reasons reported for unmatched rows.
const (
	ReasonNotAnObject    = "row is not an object"
	ReasonMissingPlate   = "missing plate"
	ReasonMalformedPlate = "malformed plate"
	ReasonDuplicatePlate = "duplicate plate in document"
)

type target int

const (
	targetPlate target = iota
	targetType
	targetSubtype
	targetCode
	targetPaired
)

// fieldMapping lists the accepted source keys of every vehicle attribute,
// already normalized.
var fieldMapping = map[target][]string{
	targetPlate:   {"targa", "plate", "licenseplate"},
	targetType:    {"tipo", "type"},
	targetSubtype: {"settore", "subtype", "sector"},
	targetCode:    {"codiceinterno", "codice", "code", "internalcode"},
	targetPaired:  {"abbinatoa", "pairedtrailerid", "pairedtrailer", "pairedto"},
}

// typeVocabulary maps normalized type names to vehicle types.
var typeVocabulary = map[string]models.VehicleType{
	"motrice":       models.VehicleTractor,
	"trattore":      models.VehicleTractor,
	"trattrice":     models.VehicleTractor,
	"tractor":       models.VehicleTractor,
	"rimorchio":     models.VehicleTrailer,
	"trailer":       models.VehicleTrailer,
	"semirimorchio": models.VehicleSemitrailer,
	"semitrailer":   models.VehicleSemitrailer,
	"furgone":       models.VehicleVan,
	"van":           models.VehicleVan,
	"auto":          models.VehicleCar,
	"autovettura":   models.VehicleCar,
	"car":           models.VehicleCar,
}

var plateRe = regexp.MustCompile(`^[A-Z0-9]{5,10}$`)

// Parse decodes an import document into its rows.
func Parse(data []byte) ([]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}

	switch t := doc.(type) {
	case []any:
		return t, nil
	case map[string]any:
		for k, v := range t {
			if key := normalizeKey(k); key == "veicoli" || key == "vehicles" {
				if rows, ok := v.([]any); ok {
					return rows, nil
				}
			}
		}
	}

	return nil, ErrMalformedDocument
}

// Map resolves rows into candidates and unmatched rows. Rows are numbered
// from 1.
func Map(rows []any) models.ImportReport {
	report := models.ImportReport{
		Candidates: make([]models.ImportCandidate, 0, len(rows)),
		Unmatched:  make([]models.UnmatchedRow, 0),
	}
	seen := make(map[string]int, len(rows))

	for i, row := range rows {
		n := i + 1

		raw, ok := row.(map[string]any)
		if !ok {
			report.Unmatched = append(report.Unmatched, models.UnmatchedRow{Row: n, Reason: ReasonNotAnObject})
			continue
		}

		v, reason := mapVehicle(raw)
		if reason == "" {
			if first, dup := seen[v.Plate]; dup {
				reason = fmt.Sprintf("%s (row %d)", ReasonDuplicatePlate, first)
			} else {
				seen[v.Plate] = n
			}
		}
		if reason != "" {
			report.Unmatched = append(report.Unmatched, models.UnmatchedRow{Row: n, Reason: reason, Raw: raw})
			continue
		}

		report.Candidates = append(report.Candidates, models.ImportCandidate{Row: n, Vehicle: v})
	}

	return report
}

func mapVehicle(raw map[string]any) (models.Vehicle, string) {
	values := make(map[target]string, len(fieldMapping))
	for k, v := range raw {
		key := normalizeKey(k)
		for t, keys := range fieldMapping {
			if _, done := values[t]; done {
				continue
			}
			for _, candidate := range keys {
				if key == candidate {
					values[t] = scalar(v)
					break
				}
			}
		}
	}

	plateValue := strings.TrimSpace(values[targetPlate])
	if plateValue == "" {
		return models.Vehicle{}, ReasonMissingPlate
	}
	plate := NormalizePlate(plateValue)
	if !plateRe.MatchString(plate) {
		return models.Vehicle{}, ReasonMalformedPlate
	}

	return models.Vehicle{
		Plate:           plate,
		Type:            NormalizeType(values[targetType]),
		Subtype:         strings.TrimSpace(values[targetSubtype]),
		Code:            strings.TrimSpace(values[targetCode]),
		PairedTrailerID: NormalizePlate(values[targetPaired]),
	}, ""
}

// NormalizePlate upper-cases p and drops spaces, dashes and dots.
func NormalizePlate(p string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(p) {
		switch r {
		case ' ', '-', '.', '\t':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeType maps a source type name to a vehicle type. Unknown and
// empty names map to [models.VehicleOther].
func NormalizeType(s string) models.VehicleType {
	if t, ok := typeVocabulary[normalizeKey(s)]; ok {
		return t
	}
	return models.VehicleOther
}

func normalizeKey(k string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(k) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func scalar(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	}
	return ""
}
