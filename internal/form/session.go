package form

import (
	"fmt"

	"github.com/MKhiriev/go-fleet-logbook/models"
)

// Session is one in-flight form. It is not safe for concurrent use.
type Session struct {
	resolver *Resolver
	sector   *models.Sector
	answers  map[string]any
}

func (r *Resolver) NewSession() *Session {
	return &Session{resolver: r, answers: make(map[string]any)}
}

// SelectSector makes sector the active schema. Switching to a different
// sector clears the answers; reselecting the same one keeps them.
func (s *Session) SelectSector(sector models.Sector) {
	if s.sector == nil || s.sector.ID != sector.ID {
		s.answers = make(map[string]any)
	}
	s.sector = &sector
}

// Sector returns the active sector.
func (s *Session) Sector() (models.Sector, bool) {
	if s.sector == nil {
		return models.Sector{}, false
	}
	return *s.sector, true
}

// Set records the answer of a field of the active sector.
func (s *Session) Set(fieldID string, value any) error {
	if s.sector == nil {
		return ErrNoSector
	}
	if _, ok := s.sector.Field(fieldID); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, fieldID)
	}

	s.answers[fieldID] = value
	return nil
}

func (s *Session) Answers() map[string]any {
	out := make(map[string]any, len(s.answers))
	for k, v := range s.answers {
		out[k] = v
	}
	return out
}

// Controls renders the active sector with the current answers.
func (s *Session) Controls() []Control {
	if s.sector == nil {
		return nil
	}
	return s.resolver.Resolve(*s.sector, s.answers)
}

// Submit validates the answers. They are kept on failure so the caller can
// correct and resubmit.
func (s *Session) Submit() (Result, error) {
	if s.sector == nil {
		return Result{}, ErrNoSector
	}
	return s.resolver.Validate(*s.sector, s.answers)
}
