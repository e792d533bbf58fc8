package dm4

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"emelder/internal/domain"
)

func testClub() domain.Club {
	return domain.Club{
		Name:   "TSV Musterstadt",
		Number: 1234567,
		Sender: domain.Sender{
			GivenName:    "Erika",
			SurName:      "Musterfrau",
			Address:      "Musterweg 1",
			PostalCode:   12345,
			Town:         "Musterstadt",
			PrivatePhone: "030 1111",
			PublicPhone:  "030 2222",
			Fax:          "030 3333",
			Mobile:       "0171 4444",
			Mail:         "vorstand@tsv-musterstadt.de",
		},
		County: "Musterkreis",
		Region: "Musterbezirk",
		State:  "Musterland",
		Group:  "Nord",
		Nation: "GER",
	}
}

func mustermann() domain.Athlete {
	a := domain.NewAthlete("Max", "Mustermann", domain.Kyu3, 2005, domain.Male)
	a.Weight = domain.WeightCategory{Kind: domain.Under, Limit: 73}
	return a
}

func TestRenderAthlete(t *testing.T) {
	// Field order is the external contract: sur, given, belt number,
	// weight, year.
	require.Equal(t, `"Mustermann","Max","7","73","2005`, RenderAthlete(mustermann()))
}

func TestRenderAthlete_OverWeightEmpty(t *testing.T) {
	a := mustermann()
	a.Weight = domain.WeightCategory{Kind: domain.Over, Limit: 100}

	require.Equal(t, `"Mustermann","Max","7","","2005`, RenderAthlete(a))
}

func TestRenderAthleteList(t *testing.T) {
	second := domain.NewAthlete("Erika", "Beispiel", domain.Dan1, 2003, domain.Female)
	second.Weight = domain.WeightCategory{Kind: domain.Under, Limit: 57}

	list := renderAthleteList([]domain.Athlete{mustermann(), second})

	lines := strings.Split(list, "\n")
	require.Len(t, lines, 2)
	require.Equal(t, `1=""1","Mustermann","Max","7","73","2005"`, lines[0])
	require.Equal(t, `2=""1","Beispiel","Erika","10","57","2003"`, lines[1])
	require.False(t, strings.HasSuffix(list, "\n"), "no trailing newline after last athlete")
}

func TestRenderAthleteList_Single(t *testing.T) {
	list := renderAthleteList([]domain.Athlete{mustermann()})
	require.Equal(t, `1=""1","Mustermann","Max","7","73","2005"`, list)
}

func TestRenderSender(t *testing.T) {
	block := RenderSender(testClub())

	require.True(t, strings.HasPrefix(block, "[Anmelder]\n"))
	// Field order: club, given, sur, address, postal code, town,
	// private, public, fax, mobile, mail.
	require.Equal(t, `[Anmelder]
Verein="TSV Musterstadt"
Vorname="Erika"
Nachname="Musterfrau"
Strasse="Musterweg 1"
PLZ="12345"
Ort="Musterstadt"
TelPrivat="030 1111"
TelDienst="030 2222"
Fax="030 3333"
Mobil="0171 4444"
EMail="vorstand@tsv-musterstadt.de"
`, block)
}

func TestRenderClub(t *testing.T) {
	block := RenderClub(testClub())

	// The club block swaps the name order and moves fax behind mail;
	// club number is rendered unpadded.
	require.Equal(t, `[Verein]
Name="TSV Musterstadt"
Vereinsnummer="1234567"
Nachname="Musterfrau"
Vorname="Erika"
Strasse="Musterweg 1"
PLZ="12345"
Ort="Musterstadt"
TelPrivat="030 1111"
TelDienst="030 2222"
Mobil="0171 4444"
EMail="vorstand@tsv-musterstadt.de"
Fax="030 3333"
Kreis="Musterkreis"
Bezirk="Musterbezirk"
Land="Musterland"
Gruppe="Nord"
Nation="GER"
`, block)
}

func TestRenderTournament(t *testing.T) {
	tournament := domain.Tournament{
		Name:           "Cup",
		Date:           time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Place:          "Berlin",
		AgeCategory:    "U18",
		GenderCategory: domain.Mixed,
		Club:           testClub(),
		Athletes:       []domain.Athlete{mustermann()},
	}

	doc := RenderTournament(tournament)

	require.True(t, strings.HasPrefix(doc, "[Anmelder]\n"), "document opens with the sender block")
	require.Contains(t, doc, "[Turnier]\n")
	require.Contains(t, doc, `Bezeichnung="Cup"`)
	require.Contains(t, doc, `Datum="14.03.2026"`, "date uses the German day-first form")
	require.Contains(t, doc, `Ort="Berlin"`)
	require.Contains(t, doc, `Altersklasse="U18"`)
	require.Contains(t, doc, "[Verein]\n")
	require.Contains(t, doc, "[Teilnehmer]\n")
	require.Contains(t, doc, `1=""1","Mustermann","Max","7","73","2005"`)
	require.Contains(t, doc, "Anzahl=1\n")

	// The gender code fills both template slots.
	require.Equal(t, 1, strings.Count(doc, `Geschlecht="g"`))
	require.Equal(t, 1, strings.Count(doc, `GeschlechtKT="g"`))
}

func TestRenderTournament_AthleteCount(t *testing.T) {
	second := domain.NewAthlete("Erika", "Beispiel", domain.Dan1, 2003, domain.Female)
	second.Weight = domain.WeightCategory{Kind: domain.Under, Limit: 57}

	tournament := domain.Tournament{
		Name:           "Cup",
		Date:           time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Place:          "Berlin",
		AgeCategory:    "U18",
		GenderCategory: domain.Female,
		Club:           testClub(),
		Athletes:       []domain.Athlete{second, second},
	}

	doc := RenderTournament(tournament)
	require.Contains(t, doc, "Anzahl=2\n")
	require.Contains(t, doc, `Geschlecht="w"`)
}
