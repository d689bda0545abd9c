package calldata

// ScanSelector reports whether a word carries an embedded function selector:
// a first 4-byte half that is neither all-zero nor all-one, followed by an
// all-zero second half.
//
// On a match it returns the selector and the word with the selector digits
// zeroed, keeping the word's width. Small right-padded strings and byte
// arrays match as well; the classifier keeps that ambiguity.
func ScanSelector(word string) (selector string, blanked string, ok bool) {
	first, second, found := halves(word)
	if !found {
		return "", word, false
	}
	if first == EmptySelector || first == MaskSelector || second != EmptySelector {
		return "", word, false
	}
	return first, EmptySelector + word[SelectorWidth:], true
}
