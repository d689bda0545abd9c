package calldata

// Extraction is a nested call cut out of a word sequence.
type Extraction struct {
	// Record holds the nested selector and its parameter words.
	Record *CallRecord

	// Skip is the number of whole words the walk should jump over because
	// they were consumed by the nested call.
	Skip int

	// Realign reports whether the parent sequence must have the selector
	// spliced out of the current word.
	Realign bool
}

// selectorOnlyLength is the declared byte length of a nested call that has
// a selector and no parameter words.
const selectorOnlyLength = 4

// ExtractNested cuts a nested call of length bytes starting at word from.
//
// The declared length is sliced from the concatenation of words[from:]. A
// slice ending 8 digits past a word boundary is taken as <selector><words>;
// one ending 56 digits past a boundary is recognised but not handled and
// yields an *UnsupportedError. Any other remainder is not a nested call.
func ExtractNested(words []string, from int, length uint64) (Extraction, bool, error) {
	if from < 0 || from >= len(words) {
		return Extraction{}, false, &IndexError{Op: "extract nested call", Index: from, Length: len(words)}
	}

	region := join(words[from:])
	if length > uint64(len(region))/ByteWidth {
		return Extraction{}, false, &IndexError{Op: "extract nested call", Index: from, Length: len(words)}
	}

	digits := int(length) * ByteWidth
	remainder := digits % WordWidth

	switch remainder {
	case SelectorWidth:
		cut := region[:digits]
		record := &CallRecord{
			Selector:  cut[:SelectorWidth],
			RawParams: Chunk(cut[SelectorWidth:], WordWidth),
		}
		if length == selectorOnlyLength {
			return Extraction{Record: record}, true, nil
		}
		return Extraction{
			Record:  record,
			Skip:    (int(length) - SelectorWidth) * ByteWidth / WordWidth,
			Realign: true,
		}, true, nil

	case WordWidth - SelectorWidth:
		// TODO: cut strings whose payload ends on a selector boundary once the layout is specified.
		return Extraction{}, false, &UnsupportedError{Index: from, Length: length, Remainder: remainder}

	default:
		return Extraction{}, false, nil
	}
}
