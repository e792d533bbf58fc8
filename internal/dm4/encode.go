package dm4

// Encode converts a rendered document to the byte stream the official
// program reads: one byte per character, taking the low 8 bits of the
// code point. This is deliberately not a conforming Latin-1 encoder:
// characters above U+00FF truncate silently instead of erroring,
// because that is what the official program's own writer does. The
// output always has exactly one byte per input character.
func Encode(s string) []byte {
	buf := make([]byte, 0, len(s))
	for _, r := range s {
		buf = append(buf, byte(r))
	}
	return buf
}
