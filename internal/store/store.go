// Package store persists the club record and athlete registry as JSON.
// The on-disk schema is shared with other tooling around the official
// competition program and is treated as a foreign contract: field names
// are pinned by struct tags and nothing beyond the schema is written.
package store

import (
	"encoding/json"
	"fmt"
	"os"

	"emelder/internal/domain"
	"emelder/internal/log"
)

// athleteRecord is the wire form of one athlete. The surrogate ID is
// deliberately absent: identity on disk belongs to the external schema,
// IDs exist only for the lifetime of a session.
type athleteRecord struct {
	GivenName string `json:"given"`
	SurName   string `json:"sur"`
	Belt      string `json:"belt"`
	BirthYear uint16 `json:"year"`
	Gender    string `json:"gender,omitempty"`
}

// clubRecord is the wire form of the club file, a single flat object.
type clubRecord struct {
	Club         string `json:"club"`
	ClubNumber   uint64 `json:"club-number"`
	GivenName    string `json:"given"`
	SurName      string `json:"sur"`
	Address      string `json:"address"`
	PostalCode   uint32 `json:"postal-code"`
	Town         string `json:"town"`
	PrivatePhone string `json:"private"`
	PublicPhone  string `json:"public"`
	Fax          string `json:"fax"`
	Mobile       string `json:"mobile"`
	Mail         string `json:"mail"`
	County       string `json:"county"`
	Region       string `json:"region"`
	State        string `json:"state"`
	Group        string `json:"group"`
	Nation       string `json:"nation"`
}

// LoadAthletes reads the athlete registry and assigns each athlete a
// fresh session-scoped surrogate ID. A missing gender field defaults to
// the mixed category.
func LoadAthletes(path string) ([]domain.Athlete, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from user config
	if err != nil {
		return nil, fmt.Errorf("reading athletes file: %w", err)
	}
	var records []athleteRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing athletes file %s: %w", path, err)
	}

	athletes := make([]domain.Athlete, 0, len(records))
	for i, rec := range records {
		belt, err := domain.ParseBelt(rec.Belt)
		if err != nil {
			return nil, fmt.Errorf("athletes file %s, athlete %d: %w", path, i+1, err)
		}
		gender := domain.Mixed
		if rec.Gender != "" {
			gender, err = domain.ParseGenderCategory(rec.Gender)
			if err != nil {
				return nil, fmt.Errorf("athletes file %s, athlete %d: %w", path, i+1, err)
			}
		}
		athletes = append(athletes, domain.NewAthlete(rec.GivenName, rec.SurName, belt, rec.BirthYear, gender))
	}

	log.Debug(log.CatStore, "Loaded athletes", "path", path, "count", len(athletes))
	return athletes, nil
}

// SaveAthletes writes the athlete registry, truncating any existing
// file.
func SaveAthletes(path string, athletes []domain.Athlete) error {
	records := make([]athleteRecord, 0, len(athletes))
	for _, a := range athletes {
		records = append(records, athleteRecord{
			GivenName: a.GivenName,
			SurName:   a.SurName,
			Belt:      a.Belt.Key(),
			BirthYear: a.BirthYear,
			Gender:    a.Gender.Code(),
		})
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding athletes: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing athletes file: %w", err)
	}
	log.Debug(log.CatStore, "Saved athletes", "path", path, "count", len(athletes))
	return nil
}

// LoadClub reads the club record.
func LoadClub(path string) (domain.Club, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from user config
	if err != nil {
		return domain.Club{}, fmt.Errorf("reading club file: %w", err)
	}
	var rec clubRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return domain.Club{}, fmt.Errorf("parsing club file %s: %w", path, err)
	}

	club := domain.Club{
		Name:   rec.Club,
		Number: rec.ClubNumber,
		Sender: domain.Sender{
			GivenName:    rec.GivenName,
			SurName:      rec.SurName,
			Address:      rec.Address,
			PostalCode:   rec.PostalCode,
			Town:         rec.Town,
			PrivatePhone: rec.PrivatePhone,
			PublicPhone:  rec.PublicPhone,
			Fax:          rec.Fax,
			Mobile:       rec.Mobile,
			Mail:         rec.Mail,
		},
		County: rec.County,
		Region: rec.Region,
		State:  rec.State,
		Group:  rec.Group,
		Nation: rec.Nation,
	}
	log.Debug(log.CatStore, "Loaded club", "path", path, "club", club.Name)
	return club, nil
}

// SaveClub writes the club record, truncating any existing file.
func SaveClub(path string, club domain.Club) error {
	rec := clubRecord{
		Club:         club.Name,
		ClubNumber:   club.Number,
		GivenName:    club.Sender.GivenName,
		SurName:      club.Sender.SurName,
		Address:      club.Sender.Address,
		PostalCode:   club.Sender.PostalCode,
		Town:         club.Sender.Town,
		PrivatePhone: club.Sender.PrivatePhone,
		PublicPhone:  club.Sender.PublicPhone,
		Fax:          club.Sender.Fax,
		Mobile:       club.Sender.Mobile,
		Mail:         club.Sender.Mail,
		County:       club.County,
		Region:       club.Region,
		State:        club.State,
		Group:        club.Group,
		Nation:       club.Nation,
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding club: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing club file: %w", err)
	}
	log.Debug(log.CatStore, "Saved club", "path", path, "club", club.Name)
	return nil
}
