package calldata

import "strings"

// Width constants, in hex digits.
const (
	// ByteWidth is the number of hex digits in one byte.
	ByteWidth = 2

	// SelectorWidth is the number of hex digits in a 4-byte function selector.
	SelectorWidth = 8

	// WordWidth is the number of hex digits in a 32-byte ABI word.
	WordWidth = 64

	// halfWidth is the number of hex digits in the two leading 4-byte halves
	// inspected by the scanner and classifier.
	halfWidth = 2 * SelectorWidth
)

// Fixed byte patterns.
const (
	// EmptySelector is a 4-byte all-zero pattern.
	EmptySelector = "00000000"

	// MaskSelector is a 4-byte all-one pattern.
	MaskSelector = "ffffffff"

	// EmptyWord is a 32-byte all-zero word.
	EmptyWord = "0000000000000000000000000000000000000000000000000000000000000000"

	// MaxWord is a 32-byte all-one word (2^256 - 1).
	MaxWord = "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"

	// MaxUint128Word is sixteen bytes of 0xff followed by sixteen zero bytes.
	MaxUint128Word = "ffffffffffffffffffffffffffffffff00000000000000000000000000000000"
)

// Chunk splits text into consecutive pieces of width hex digits.
// The last piece is shorter when len(text) is not a multiple of width.
// A non-positive width yields the whole text as a single piece.
func Chunk(text string, width int) []string {
	if text == "" {
		return []string{}
	}
	if width <= 0 {
		return []string{text}
	}

	chunks := make([]string, 0, (len(text)+width-1)/width)
	for start := 0; start < len(text); start += width {
		end := start + width
		if end > len(text) {
			end = len(text)
		}
		chunks = append(chunks, text[start:end])
	}
	return chunks
}

// join concatenates a word sequence back into one hex string.
func join(words []string) string {
	return strings.Join(words, "")
}

// trimZeros strips leading zero digits.
func trimZeros(word string) string {
	return strings.TrimLeft(word, "0")
}

// halves returns the two leading 4-byte halves of a word.
// ok is false when the word is too short to contain both.
func halves(word string) (first, second string, ok bool) {
	if len(word) < halfWidth {
		return "", "", false
	}
	return word[:SelectorWidth], word[SelectorWidth:halfWidth], true
}
