package domain

import (
	"errors"
	"fmt"
	"strconv"
)

// Weight category errors
var (
	ErrInvalidWeight = errors.New("invalid weight category")
)

// WeightKind says which side of the limit an athlete competes on.
type WeightKind int

const (
	// Under means the athlete competes under the limit.
	Under WeightKind = iota
	// Over means the athlete competes over the limit.
	Over
)

// WeightCategory is a competition weight bound: a kind plus a limit in
// kilograms. Weight categories are assigned per registration, never
// stored on the athlete record.
type WeightCategory struct {
	Kind  WeightKind
	Limit uint8
}

// DefaultWeightCategory is the value used when no weight has been
// assigned yet.
func DefaultWeightCategory() WeightCategory {
	return WeightCategory{Kind: Under, Limit: 10}
}

// ParseWeightCategory parses the editable form "-n" (under) or "+n"
// (over) with n in 0..255. Anything else fails; callers are expected to
// keep their previous value rather than resetting it.
func ParseWeightCategory(s string) (WeightCategory, error) {
	if len(s) < 2 {
		return WeightCategory{}, fmt.Errorf("%w: %q", ErrInvalidWeight, s)
	}
	var kind WeightKind
	switch s[0] {
	case '-':
		kind = Under
	case '+':
		kind = Over
	default:
		return WeightCategory{}, fmt.Errorf("%w: %q", ErrInvalidWeight, s)
	}
	limit, err := strconv.ParseUint(s[1:], 10, 8)
	if err != nil {
		return WeightCategory{}, fmt.Errorf("%w: %q", ErrInvalidWeight, s)
	}
	return WeightCategory{Kind: kind, Limit: uint8(limit)}, nil
}

// Render returns the weight as the official competition software prints
// it: the bare limit for under categories and the empty string for over
// categories. The asymmetry is the external program's own behavior and
// is reproduced as-is.
func (w WeightCategory) Render() string {
	if w.Kind == Over {
		return ""
	}
	return strconv.Itoa(int(w.Limit))
}

// String returns the editable form "-n"/"+n". Unlike Render it is
// lossless and round-trips through ParseWeightCategory.
func (w WeightCategory) String() string {
	if w.Kind == Over {
		return "+" + strconv.Itoa(int(w.Limit))
	}
	return "-" + strconv.Itoa(int(w.Limit))
}
