package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"emelder/internal/domain"
)

func testMeta() domain.RegistrationMeta {
	return domain.RegistrationMeta{
		Name:  "Cup",
		Date:  time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Place: "Berlin",
	}
}

func testAthletes() []domain.Athlete {
	return []domain.Athlete{
		domain.NewAthlete("Max", "Mustermann", domain.Kyu3, 2005, domain.Male),
		domain.NewAthlete("Erika", "Beispiel", domain.Dan1, 2003, domain.Female),
	}
}

func TestRegistration_Add(t *testing.T) {
	athletes := testAthletes()
	sess := New(testMeta(), athletes)

	require.NoError(t, sess.Add(athletes[0].ID))
	require.Equal(t, 1, sess.Len())

	entry := sess.Entries()[0]
	require.Equal(t, athletes[0].ID, entry.AthleteID)
	require.Equal(t, "Max", entry.GivenName)
	require.Equal(t, domain.Male, entry.Gender)
	require.Equal(t, domain.Male, entry.GenderCategory)
}

func TestRegistration_AddUnknown(t *testing.T) {
	sess := New(testMeta(), testAthletes())

	err := sess.Add(domain.NewAthleteID())
	require.ErrorIs(t, err, ErrUnknownAthlete)
	require.Zero(t, sess.Len())
}

func TestRegistration_AddTwice(t *testing.T) {
	// The same athlete may be entered twice (different age categories).
	athletes := testAthletes()
	sess := New(testMeta(), athletes)

	require.NoError(t, sess.Add(athletes[0].ID))
	require.NoError(t, sess.Add(athletes[0].ID))
	require.Equal(t, 2, sess.Len())
}

func TestRegistration_Remove(t *testing.T) {
	athletes := testAthletes()
	sess := New(testMeta(), athletes)
	require.NoError(t, sess.Add(athletes[0].ID))
	require.NoError(t, sess.Add(athletes[1].ID))

	require.NoError(t, sess.Remove(0))
	require.Equal(t, 1, sess.Len())
	// The surviving entry still points at its own athlete.
	require.Equal(t, athletes[1].ID, sess.Entries()[0].AthleteID)

	require.ErrorIs(t, sess.Remove(5), ErrNoSuchEntry)
	require.ErrorIs(t, sess.Remove(-1), ErrNoSuchEntry)
}

func TestRegistration_SetGenderCategory(t *testing.T) {
	athletes := testAthletes()
	sess := New(testMeta(), athletes)
	require.NoError(t, sess.Add(athletes[1].ID)) // Erika, Female

	require.NoError(t, sess.SetGenderCategory(0, domain.Mixed))
	require.Equal(t, domain.Mixed, sess.Entries()[0].GenderCategory)

	// Female athletes cannot enter the male division; the entry keeps
	// its previous assignment.
	err := sess.SetGenderCategory(0, domain.Male)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, domain.Mixed, sess.Entries()[0].GenderCategory)
}

func TestRegistration_SetWeight(t *testing.T) {
	athletes := testAthletes()
	sess := New(testMeta(), athletes)
	require.NoError(t, sess.Add(athletes[0].ID))

	require.NoError(t, sess.SetWeight(0, "-73"))
	require.Equal(t, "-73", sess.Entries()[0].Weight)

	// A bad edit keeps the previous value instead of clearing it.
	require.ErrorIs(t, sess.SetWeight(0, "73kg"), domain.ErrInvalidWeight)
	require.Equal(t, "-73", sess.Entries()[0].Weight)
}

func TestRegistration_SetAgeCategory(t *testing.T) {
	athletes := testAthletes()
	sess := New(testMeta(), athletes)
	require.NoError(t, sess.Add(athletes[0].ID))

	require.NoError(t, sess.SetAgeCategory(0, "U18"))
	require.Equal(t, "U18", sess.Entries()[0].AgeCategory)

	require.ErrorIs(t, sess.SetAgeCategory(3, "U18"), ErrNoSuchEntry)
}

func TestRegistration_Tournaments(t *testing.T) {
	athletes := testAthletes()
	sess := New(testMeta(), athletes)
	require.NoError(t, sess.Add(athletes[0].ID))
	require.NoError(t, sess.Add(athletes[1].ID))
	require.NoError(t, sess.SetAgeCategory(0, "U21"))
	require.NoError(t, sess.SetAgeCategory(1, "U21"))
	require.NoError(t, sess.SetGenderCategory(0, domain.Mixed))
	require.NoError(t, sess.SetGenderCategory(1, domain.Mixed))
	require.NoError(t, sess.SetWeight(0, "-73"))
	require.NoError(t, sess.SetWeight(1, "-57"))

	club := domain.Club{Name: "TSV Musterstadt"}
	tournaments, err := sess.Tournaments(club)
	require.NoError(t, err)
	require.Len(t, tournaments, 1)
	require.Equal(t, "Cup", tournaments[0].Name)
	require.Len(t, tournaments[0].Athletes, 2)
}
