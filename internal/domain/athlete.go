package domain

import "github.com/google/uuid"

// AthleteID is a session-scoped surrogate identifier for an athlete.
// IDs are assigned when the registry is loaded and are never persisted;
// they exist so that a pending registration can keep pointing at its
// source athlete even when the registry is reordered or an athlete is
// deleted mid-session.
type AthleteID = uuid.UUID

// NewAthleteID returns a fresh surrogate identifier.
func NewAthleteID() AthleteID {
	return uuid.New()
}

// Athlete is one club member as held in the registry. The weight
// category is transient: it belongs to a registration, not to the
// athlete, and is not part of the persisted record.
type Athlete struct {
	ID        AthleteID
	GivenName string
	SurName   string
	Belt      Belt
	BirthYear uint16
	Gender    GenderCategory
	Weight    WeightCategory
}

// NewAthlete builds a registry athlete with a fresh surrogate ID and
// the default weight category.
func NewAthlete(given, sur string, belt Belt, birthYear uint16, gender GenderCategory) Athlete {
	return Athlete{
		ID:        NewAthleteID(),
		GivenName: given,
		SurName:   sur,
		Belt:      belt,
		BirthYear: birthYear,
		Gender:    gender,
		Weight:    DefaultWeightCategory(),
	}
}
