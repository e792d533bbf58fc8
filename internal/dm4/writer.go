package dm4

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"emelder/internal/domain"
	"emelder/internal/log"
)

// illegalPathChars lists the characters replaced by '_' in generated
// file names, per OS. Windows forbids the full reserved set; everything
// else only needs the separator and NUL stripped.
var illegalPathChars = func() string {
	if runtime.GOOS == "windows" {
		return `<>:"/\|?*` + "\x00"
	}
	return "/\x00"
}()

// sanitize replaces illegal path characters so an event name or age
// category can be embedded in a file name.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(illegalPathChars, r) {
			return '_'
		}
		return r
	}, s)
}

// FileName returns the naming convention for one tournament file:
// event name and age category concatenated, then the gender code in
// parentheses, with the .dm4 extension.
func FileName(t domain.Tournament) string {
	return fmt.Sprintf("%s%s (%s).dm4",
		sanitize(t.Name), sanitize(t.AgeCategory), t.GenderCategory.Code())
}

// WriteTournaments writes one file per tournament into baseDir, in list
// order, overwriting existing files. An empty list writes nothing and
// does not touch the directory. Writes are not transactional: the first
// failure propagates immediately and already-written files remain.
func WriteTournaments(baseDir string, tournaments []domain.Tournament) error {
	if len(tournaments) == 0 {
		return nil
	}

	for _, t := range tournaments {
		path := filepath.Join(baseDir, FileName(t))
		if err := writeTournament(path, t); err != nil {
			return err
		}
		log.Info(log.CatDM4, "Wrote tournament file",
			"path", path, "athletes", len(t.Athletes))
	}
	return nil
}

func writeTournament(path string, t domain.Tournament) error {
	if err := os.WriteFile(path, Encode(RenderTournament(t)), 0o644); err != nil {
		return fmt.Errorf("writing tournament file: %w", err)
	}
	return nil
}
