package domain

import (
	"errors"
	"fmt"
)

// Belt errors
var (
	ErrUnknownBelt = errors.New("unknown belt key")
)

// Belt is a martial-arts grade, ordered from Kyu9 (lowest) to Dan10
// (highest). The zero value is Kyu9.
type Belt int

const (
	Kyu9 Belt = iota
	Kyu8
	Kyu7
	Kyu6
	Kyu5
	Kyu4
	Kyu3
	Kyu2
	Kyu1
	Dan1
	Dan2
	Dan3
	Dan4
	Dan5
	Dan6
	Dan7
	Dan8
	Dan9
	Dan10
)

// beltKeys is the single bidirectional mapping between belts and their
// persisted keys. Order must match the Belt constants: the position of a
// key is its belt's numeric value.
var beltKeys = [...]string{
	"kyu9", "kyu8", "kyu7", "kyu6", "kyu5", "kyu4", "kyu3", "kyu2", "kyu1",
	"dan1", "dan2", "dan3", "dan4", "dan5", "dan6", "dan7", "dan8", "dan9", "dan10",
}

var beltByKey = func() map[string]Belt {
	m := make(map[string]Belt, len(beltKeys))
	for i, k := range beltKeys {
		m[k] = Belt(i)
	}
	return m
}()

// ParseBelt parses a canonical lowercase belt key ("kyu9".."dan10").
func ParseBelt(s string) (Belt, error) {
	b, ok := beltByKey[s]
	if !ok {
		return Kyu9, fmt.Errorf("%w: %q", ErrUnknownBelt, s)
	}
	return b, nil
}

// Key returns the canonical persisted key, the inverse of ParseBelt.
func (b Belt) Key() string {
	if b < Kyu9 || b > Dan10 {
		return ""
	}
	return beltKeys[b]
}

// Number returns the belt's position in the official numbering, 1 for
// Kyu9 up to 19 for Dan10. The official competition software serializes
// belts by this number, so the mapping is an external contract.
func (b Belt) Number() int {
	return int(b) + 1
}

// Inc returns the next higher belt. Dan10 has nothing above it and is
// returned unchanged.
func (b Belt) Inc() Belt {
	if b >= Dan10 {
		return Dan10
	}
	return b + 1
}

func (b Belt) String() string {
	return b.Key()
}
