package dm4

import (
	"fmt"
	"strconv"
	"strings"

	"emelder/internal/domain"
)

// RenderSender renders the sender block of a registration document.
func RenderSender(c domain.Club) string {
	s := c.Sender
	return fmt.Sprintf(senderTemplate,
		c.Name, s.GivenName, s.SurName, s.Address, s.PostalCode, s.Town,
		s.PrivatePhone, s.PublicPhone, s.Fax, s.Mobile, s.Mail)
}

// RenderClub renders the club block of a registration document.
func RenderClub(c domain.Club) string {
	s := c.Sender
	return fmt.Sprintf(clubTemplate,
		c.Name, c.Number, s.SurName, s.GivenName, s.Address, s.PostalCode,
		s.Town, s.PrivatePhone, s.PublicPhone, s.Mobile, s.Mail, s.Fax,
		c.County, c.Region, c.State, c.Group, c.Nation)
}

// RenderAthlete renders one athlete's fields in the official order:
// surname, given name, belt number, weight, birth year.
func RenderAthlete(a domain.Athlete) string {
	return fmt.Sprintf(athleteTemplate,
		a.SurName, a.GivenName, strconv.Itoa(a.Belt.Number()), a.Weight.Render(), a.BirthYear)
}

// renderAthleteList composes the numbered participant list. Lines are
// joined with a single newline and the last line has no trailing
// newline.
func renderAthleteList(athletes []domain.Athlete) string {
	var b strings.Builder
	for i, a := range athletes {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, athleteListLine, i+1, RenderAthlete(a))
	}
	return b.String()
}

// RenderTournament renders a complete registration document for one
// tournament bracket.
func RenderTournament(t domain.Tournament) string {
	code := t.GenderCategory.Code()
	return fmt.Sprintf(tournamentTemplate,
		RenderSender(t.Club), t.Name, t.Date.Format(dateLayout), t.Place,
		t.AgeCategory, code, code, RenderClub(t.Club),
		renderAthleteList(t.Athletes), len(t.Athletes))
}
