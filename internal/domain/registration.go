package domain

// RegisteringAthlete is a pending registration: a copy of an athlete
// taken at add-time plus the per-registration fields the user still
// edits before the files are generated. It lives only for the duration
// of a registration session.
type RegisteringAthlete struct {
	AthleteID AthleteID
	GivenName string
	SurName   string
	Belt      Belt
	BirthYear uint16

	// Gender is the athlete's own recorded gender. It never changes
	// here; it only constrains which divisions are legal.
	Gender GenderCategory

	// GenderCategory is the division this registration enters. Must
	// stay within LegalCategories(Gender).
	GenderCategory GenderCategory

	// AgeCategory is the free-text age bracket label ("U18", "Adults").
	AgeCategory string

	// Weight is the editable weight string. It is kept as typed so a
	// half-finished edit survives; it must parse as a weight category
	// by the time tournaments are generated.
	Weight string
}

// NewRegisteringAthlete copies an athlete into a pending registration.
// The division starts at the athlete's own gender, the weight string at
// the editable form of the athlete's current weight, and the age
// category empty.
func NewRegisteringAthlete(a Athlete) RegisteringAthlete {
	return RegisteringAthlete{
		AthleteID:      a.ID,
		GivenName:      a.GivenName,
		SurName:        a.SurName,
		Belt:           a.Belt,
		BirthYear:      a.BirthYear,
		Gender:         a.Gender,
		GenderCategory: a.Gender,
		Weight:         a.Weight.String(),
	}
}

// FullName returns "Given Sur", the form used to identify athletes in
// CLI output and entry manifests.
func (r RegisteringAthlete) FullName() string {
	return r.GivenName + " " + r.SurName
}
