package domain

import (
	"fmt"
	"time"
)

// ValidationError reports a pending registration that cannot be turned
// into a tournament entry. Entry is the zero-based position in the
// registration list.
type ValidationError struct {
	Entry   int
	Athlete string
	Reason  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("entry %d (%s): %v", e.Entry+1, e.Athlete, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Reason
}

// RegistrationMeta is the event metadata shared by every tournament of
// one registration: what, when and where.
type RegistrationMeta struct {
	Name  string
	Date  time.Time
	Place string
}

// Tournament is one output bracket: the athletes of a single
// (age category, division) pair, together with the event metadata and a
// snapshot of the sending club. Tournaments only exist between the
// bucketing step and the file writer; they are never persisted.
type Tournament struct {
	Name           string
	Date           time.Time
	Place          string
	AgeCategory    string
	GenderCategory GenderCategory
	Club           Club
	Athletes       []Athlete
}

type bucketKey struct {
	ageCategory    string
	genderCategory GenderCategory
}

// GroupTournaments buckets pending registrations into tournaments, one
// per distinct (age category, division) pair, keys compared exactly.
// Athletes keep their input order within a bucket and buckets keep the
// order of their first appearance.
//
// Every entry is validated before any tournament is built: the weight
// string must parse and the division must be legal for the athlete's
// own gender. On failure nothing is returned but an error naming the
// offending entry; the result is all-or-nothing.
func GroupTournaments(regs []RegisteringAthlete, meta RegistrationMeta, club Club) ([]Tournament, error) {
	weights := make([]WeightCategory, len(regs))
	for i, reg := range regs {
		w, err := ParseWeightCategory(reg.Weight)
		if err != nil {
			return nil, &ValidationError{Entry: i, Athlete: reg.FullName(), Reason: err}
		}
		if !CanEnter(reg.Gender, reg.GenderCategory) {
			return nil, &ValidationError{
				Entry:   i,
				Athlete: reg.FullName(),
				Reason:  fmt.Errorf("gender category %q not allowed for gender %q", reg.GenderCategory, reg.Gender),
			}
		}
		weights[i] = w
	}

	buckets := make(map[bucketKey]int)
	var tournaments []Tournament

	for i, reg := range regs {
		athlete := Athlete{
			ID:        reg.AthleteID,
			GivenName: reg.GivenName,
			SurName:   reg.SurName,
			Belt:      reg.Belt,
			BirthYear: reg.BirthYear,
			Gender:    reg.GenderCategory,
			Weight:    weights[i],
		}

		key := bucketKey{ageCategory: reg.AgeCategory, genderCategory: reg.GenderCategory}
		if idx, ok := buckets[key]; ok {
			tournaments[idx].Athletes = append(tournaments[idx].Athletes, athlete)
			continue
		}
		tournaments = append(tournaments, Tournament{
			Name:           meta.Name,
			Date:           meta.Date,
			Place:          meta.Place,
			AgeCategory:    reg.AgeCategory,
			GenderCategory: reg.GenderCategory,
			Club:           club,
			Athletes:       []Athlete{athlete},
		})
		buckets[key] = len(tournaments) - 1
	}

	return tournaments, nil
}
