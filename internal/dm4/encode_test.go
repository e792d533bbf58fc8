package dm4

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestEncode_ASCII(t *testing.T) {
	require.Equal(t, []byte("hello"), Encode("hello"))
}

func TestEncode_Latin1(t *testing.T) {
	// German umlauts sit below U+0100 and map to their Latin-1 bytes.
	require.Equal(t, []byte{0xDC, 0x62, 0x75, 0x6E, 0x67}, Encode("Übung"))
	require.Equal(t, []byte{0xE4, 0xF6, 0xFC, 0xDF}, Encode("äöüß"))
}

func TestEncode_TruncatesHighCodePoints(t *testing.T) {
	// U+4E2D truncates to its low byte, 0x2D. One byte, no error.
	require.Equal(t, []byte{0x2D}, Encode("中"))

	// Mixed input: byte count equals character count, not UTF-8 length.
	got := Encode("a中b")
	require.Equal(t, []byte{'a', 0x2D, 'b'}, got)
}

func TestEncode_Empty(t *testing.T) {
	require.Empty(t, Encode(""))
}

func TestEncode_Properties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s := rapid.String().Draw(rt, "s")

		encoded := Encode(s)
		require.Equal(t, utf8.RuneCountInString(s), len(encoded),
			"one byte per character")

		i := 0
		for _, r := range s {
			require.Equal(t, byte(r), encoded[i], "byte is the low 8 bits of the code point")
			i++
		}
	})
}
