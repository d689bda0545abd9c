package calldata

import "strings"

// PadZeroWord realigns a sequence at a bare zero word.
//
// One selector width of zero digits is inserted at the front of word i and
// the same number of digits is trimmed from the tail of the sequence, then
// the whole concatenation is re-chunked into words. The total number of
// digits is unchanged. A zero word conventionally precedes a length field
// that is not word-aligned; the shift lines that length field back up.
func PadZeroWord(words []string, i int) ([]string, error) {
	if i < 0 || i >= len(words) {
		return nil, &IndexError{Op: "pad zero word", Index: i, Length: len(words)}
	}

	calldata := join(words)
	at := wordOffset(words, i)
	if at > len(calldata)-SelectorWidth {
		return nil, &IndexError{Op: "pad zero word", Index: i, Length: len(words)}
	}

	var b strings.Builder
	b.Grow(len(calldata))
	b.WriteString(calldata[:at])
	b.WriteString(EmptySelector)
	b.WriteString(calldata[at : len(calldata)-SelectorWidth])

	return Chunk(b.String(), WordWidth), nil
}

// SpliceSelector removes the selector digits leading word i after a nested
// call was extracted from it, appends one selector width of zero digits to
// the tail as a delimiter, and re-chunks. The total number of digits is
// unchanged and every word after i moves back into alignment.
func SpliceSelector(words []string, i int) ([]string, error) {
	if i < 0 || i >= len(words) {
		return nil, &IndexError{Op: "splice selector", Index: i, Length: len(words)}
	}
	if len(words[i]) < SelectorWidth {
		return nil, &IndexError{Op: "splice selector", Index: i, Length: len(words)}
	}

	calldata := join(words)
	at := wordOffset(words, i)

	var b strings.Builder
	b.Grow(len(calldata))
	b.WriteString(calldata[:at])
	b.WriteString(calldata[at+SelectorWidth:])
	b.WriteString(EmptySelector)

	return Chunk(b.String(), WordWidth), nil
}

// wordOffset returns the digit offset of word i within the concatenation.
func wordOffset(words []string, i int) int {
	at := 0
	for _, w := range words[:i] {
		at += len(w)
	}
	return at
}
