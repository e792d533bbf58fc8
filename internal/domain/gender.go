package domain

import (
	"errors"
	"fmt"
)

// Gender category errors
var (
	ErrUnknownGenderCategory = errors.New("unknown gender category code")
)

// GenderCategory is the competition division an athlete is entered
// into. It is independent of the athlete's own recorded gender; the two
// are related only through LegalCategories. The zero value is Mixed.
type GenderCategory int

const (
	Mixed GenderCategory = iota
	Male
	Female
)

// Codes are the official program's single-letter German abbreviations.
var genderCodes = map[GenderCategory]string{
	Mixed:  "g",
	Male:   "m",
	Female: "w",
}

// Code returns the single-letter code used in files and file names.
func (g GenderCategory) Code() string {
	return genderCodes[g]
}

// ParseGenderCategory parses a single-letter code ("m", "w" or "g").
func ParseGenderCategory(code string) (GenderCategory, error) {
	switch code {
	case "g":
		return Mixed, nil
	case "m":
		return Male, nil
	case "w":
		return Female, nil
	default:
		return Mixed, fmt.Errorf("%w: %q", ErrUnknownGenderCategory, code)
	}
}

func (g GenderCategory) String() string {
	return g.Code()
}

// LegalCategories returns the divisions an athlete with the given own
// gender may be entered into. Athletes always qualify for their own
// division and the mixed division; mixed athletes qualify for all
// three.
func LegalCategories(own GenderCategory) []GenderCategory {
	switch own {
	case Female:
		return []GenderCategory{Female, Mixed}
	case Male:
		return []GenderCategory{Male, Mixed}
	default:
		return []GenderCategory{Female, Male, Mixed}
	}
}

// CanEnter reports whether an athlete with the given own gender may be
// entered into the target division.
func CanEnter(own, target GenderCategory) bool {
	for _, g := range LegalCategories(own) {
		if g == target {
			return true
		}
	}
	return false
}
