package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/araddon/dateparse"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"emelder/internal/dm4"
	"emelder/internal/domain"
	"emelder/internal/log"
	"emelder/internal/session"
	"emelder/internal/store"
)

var (
	regName    string
	regDate    string
	regPlace   string
	regEntries string
	regOutput  string
)

// manifestEntry is one line of the entries manifest.
type manifestEntry struct {
	// Athlete is the registry athlete as "Given Sur".
	Athlete string `yaml:"athlete"`
	// Year disambiguates athletes sharing a name (optional otherwise).
	Year uint16 `yaml:"year"`
	// Age is the free-text age category label, e.g. "U18".
	Age string `yaml:"age"`
	// Category is the division code (g/m/w). Empty uses the configured
	// default when legal, otherwise the athlete's own division.
	Category string `yaml:"category"`
	// Weight is the weight category in editable form, e.g. "-73".
	Weight string `yaml:"weight"`
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Generate .dm4 registration files from an entries manifest",
	Long: `Read an entries manifest, group the entries into tournament brackets
and write one .dm4 file per (age category, division) bracket.

The manifest is a YAML list; athletes are matched against the registry
by "Given Sur" name, with an optional birth year to disambiguate:

  - athlete: Max Mustermann
    age: U18
    category: g
    weight: "-73"

Generation is all-or-nothing: one invalid entry and no files are
written.`,
	RunE: runRegister,
}

func init() {
	registerCmd.Flags().StringVar(&regName, "name", "", "event name (required)")
	registerCmd.Flags().StringVar(&regDate, "date", "", "event date (required)")
	registerCmd.Flags().StringVar(&regPlace, "place", "", "event place")
	registerCmd.Flags().StringVar(&regEntries, "entries", "", "entries manifest file (required)")
	registerCmd.Flags().StringVarP(&regOutput, "output", "o", "",
		"output directory (default: tournament_basedir from config)")
	_ = registerCmd.MarkFlagRequired("name")
	_ = registerCmd.MarkFlagRequired("date")
	_ = registerCmd.MarkFlagRequired("entries")
	rootCmd.AddCommand(registerCmd)
}

func runRegister(cmd *cobra.Command, args []string) error {
	date, err := dateparse.ParseAny(regDate)
	if err != nil {
		return fmt.Errorf("parsing event date %q: %w", regDate, err)
	}

	club, err := store.LoadClub(cfg.ClubFile)
	if err != nil {
		return err
	}
	athletes, err := store.LoadAthletes(cfg.AthletesFile)
	if err != nil {
		return err
	}

	entries, err := readManifest(regEntries)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return errors.New("entries manifest is empty")
	}

	meta := domain.RegistrationMeta{Name: regName, Date: date, Place: regPlace}
	sess := session.New(meta, athletes)
	if err := applyEntries(sess, athletes, entries); err != nil {
		return err
	}

	tournaments, err := sess.Tournaments(club)
	if err != nil {
		return fmt.Errorf("grouping registrations: %w", err)
	}

	outDir := regOutput
	if outDir == "" {
		outDir = cfg.TournamentBasedir
	}
	if err := dm4.WriteTournaments(outDir, tournaments); err != nil {
		return err
	}

	for _, t := range tournaments {
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%d athletes)\n",
			filepath.Join(outDir, dm4.FileName(t)), len(t.Athletes))
	}
	log.Info(log.CatCLI, "Registration complete",
		"event", regName, "tournaments", len(tournaments), "entries", len(entries))
	return nil
}

func readManifest(path string) ([]manifestEntry, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: user-supplied manifest path
	if err != nil {
		return nil, fmt.Errorf("reading entries manifest: %w", err)
	}
	var entries []manifestEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing entries manifest %s: %w", path, err)
	}
	return entries, nil
}

func applyEntries(sess *session.Registration, athletes []domain.Athlete, entries []manifestEntry) error {
	defaultCategory, err := domain.ParseGenderCategory(cfg.DefaultGenderCategory)
	if err != nil {
		return fmt.Errorf("config default_gender_category: %w", err)
	}

	for i, entry := range entries {
		athlete, err := findAthlete(athletes, entry.Athlete, entry.Year)
		if err != nil {
			return fmt.Errorf("entry %d: %w", i+1, err)
		}
		if err := sess.Add(athlete.ID); err != nil {
			return fmt.Errorf("entry %d: %w", i+1, err)
		}
		idx := sess.Len() - 1

		category := defaultCategory
		if entry.Category != "" {
			category, err = domain.ParseGenderCategory(entry.Category)
			if err != nil {
				return fmt.Errorf("entry %d (%s): %w", i+1, entry.Athlete, err)
			}
			if err := sess.SetGenderCategory(idx, category); err != nil {
				return err
			}
		} else if domain.CanEnter(athlete.Gender, category) {
			// The configured default only applies where it is legal;
			// otherwise the entry stays in the athlete's own division.
			if err := sess.SetGenderCategory(idx, category); err != nil {
				return err
			}
		}

		if err := sess.SetAgeCategory(idx, entry.Age); err != nil {
			return err
		}
		if entry.Weight != "" {
			if err := sess.SetWeight(idx, entry.Weight); err != nil {
				return fmt.Errorf("entry %d (%s): %w", i+1, entry.Athlete, err)
			}
		}
	}
	return nil
}

// findAthlete matches a manifest name (and optional birth year) against
// the registry. The match must be unique.
func findAthlete(athletes []domain.Athlete, name string, year uint16) (domain.Athlete, error) {
	var matches []domain.Athlete
	for _, a := range athletes {
		if a.GivenName+" "+a.SurName != name {
			continue
		}
		if year != 0 && a.BirthYear != year {
			continue
		}
		matches = append(matches, a)
	}
	switch len(matches) {
	case 0:
		return domain.Athlete{}, fmt.Errorf("athlete %q not found in registry", name)
	case 1:
		return matches[0], nil
	default:
		return domain.Athlete{}, fmt.Errorf("athlete %q is ambiguous, add a year to the entry", name)
	}
}
