// Package session holds the state of one registration session: the
// loaded athlete registry and the pending registrations being edited
// before tournament files are generated. Sessions are in-memory only;
// once the files are written the pending entries are gone.
package session

import (
	"errors"
	"fmt"

	"emelder/internal/domain"
	"emelder/internal/log"
)

// Session errors
var (
	ErrUnknownAthlete = errors.New("no athlete with that id")
	ErrNoSuchEntry    = errors.New("no pending registration at that position")
)

// Registration is one registration session.
type Registration struct {
	meta     domain.RegistrationMeta
	athletes map[domain.AthleteID]domain.Athlete
	entries  []domain.RegisteringAthlete
}

// New creates a session over the given registry snapshot.
func New(meta domain.RegistrationMeta, athletes []domain.Athlete) *Registration {
	byID := make(map[domain.AthleteID]domain.Athlete, len(athletes))
	for _, a := range athletes {
		byID[a.ID] = a
	}
	return &Registration{meta: meta, athletes: byID}
}

// Meta returns the event metadata of this session.
func (r *Registration) Meta() domain.RegistrationMeta {
	return r.meta
}

// Add copies the athlete with the given ID into a new pending
// registration at the end of the list.
func (r *Registration) Add(id domain.AthleteID) error {
	a, ok := r.athletes[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAthlete, id)
	}
	r.entries = append(r.entries, domain.NewRegisteringAthlete(a))
	log.Debug(log.CatDomain, "Added pending registration",
		"athlete", a.GivenName+" "+a.SurName, "entries", len(r.entries))
	return nil
}

// Remove discards the pending registration at the given position.
// Other entries keep their athlete references; surrogate IDs make the
// removal safe.
func (r *Registration) Remove(idx int) error {
	if idx < 0 || idx >= len(r.entries) {
		return fmt.Errorf("%w: %d", ErrNoSuchEntry, idx)
	}
	r.entries = append(r.entries[:idx], r.entries[idx+1:]...)
	return nil
}

// Entries returns the pending registrations in add order.
func (r *Registration) Entries() []domain.RegisteringAthlete {
	return r.entries
}

// Len returns the number of pending registrations.
func (r *Registration) Len() int {
	return len(r.entries)
}

// SetGenderCategory assigns the division of the entry at idx. Divisions
// outside the legal set for the athlete's own gender are rejected and
// the entry is left unchanged.
func (r *Registration) SetGenderCategory(idx int, gc domain.GenderCategory) error {
	if idx < 0 || idx >= len(r.entries) {
		return fmt.Errorf("%w: %d", ErrNoSuchEntry, idx)
	}
	entry := &r.entries[idx]
	if !domain.CanEnter(entry.Gender, gc) {
		return &domain.ValidationError{
			Entry:   idx,
			Athlete: entry.FullName(),
			Reason:  fmt.Errorf("gender category %q not allowed for gender %q", gc, entry.Gender),
		}
	}
	entry.GenderCategory = gc
	return nil
}

// SetAgeCategory assigns the free-text age bracket of the entry at idx.
func (r *Registration) SetAgeCategory(idx int, age string) error {
	if idx < 0 || idx >= len(r.entries) {
		return fmt.Errorf("%w: %d", ErrNoSuchEntry, idx)
	}
	r.entries[idx].AgeCategory = age
	return nil
}

// SetWeight assigns the weight string of the entry at idx. A string
// that does not parse as a weight category is rejected and the previous
// value survives, mirroring how the edit forms behave.
func (r *Registration) SetWeight(idx int, weight string) error {
	if idx < 0 || idx >= len(r.entries) {
		return fmt.Errorf("%w: %d", ErrNoSuchEntry, idx)
	}
	if _, err := domain.ParseWeightCategory(weight); err != nil {
		return err
	}
	r.entries[idx].Weight = weight
	return nil
}

// Tournaments buckets the pending registrations into tournament records
// for the given club. The session is left untouched; callers discard it
// once the files are written.
func (r *Registration) Tournaments(club domain.Club) ([]domain.Tournament, error) {
	return domain.GroupTournaments(r.entries, r.meta, club)
}
