package calldata

import (
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// NormalizeHex trims surrounding space, strips an optional 0x prefix and
// lower-cases the input.
func NormalizeHex(raw string) string {
	s := strings.TrimSpace(raw)
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	return strings.ToLower(s)
}

// ParseFrame splits raw calldata into its selector and parameter words.
//
// Word-aligned input keeps its words: the selector is read from the first
// word and zeroed in place, so the first parameter word keeps its width.
// Any other input is read as a 4-byte selector followed by bytes that are
// repacked into words left to right, the last word short when the bytes do
// not fill it.
func ParseFrame(raw string) (selector string, params []string, err error) {
	calldata := NormalizeHex(raw)
	if calldata == "" {
		return "", nil, &FramingError{Length: 0, Reason: "empty input"}
	}

	if _, err := hexutil.Decode("0x" + calldata); err != nil {
		if errors.Is(err, hexutil.ErrOddLength) {
			return "", nil, &FramingError{Length: len(calldata), Reason: "odd number of hex digits"}
		}
		return "", nil, &ParseError{Input: calldata, Err: err}
	}

	if len(calldata)%WordWidth == 0 {
		params = Chunk(calldata, WordWidth)
		selector = params[0][:SelectorWidth]
		params[0] = EmptySelector + params[0][SelectorWidth:]
		return selector, params, nil
	}

	if len(calldata) < SelectorWidth {
		return "", nil, &FramingError{Length: len(calldata), Reason: "shorter than a selector"}
	}

	// The payload is a whole number of bytes, so repacking them left to
	// right is plain word-width chunking of the remaining digits.
	selector = calldata[:SelectorWidth]
	return selector, Chunk(calldata[SelectorWidth:], WordWidth), nil
}
