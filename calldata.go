// Package calldata decodes Ethereum calldata without an ABI.
//
// Calldata is a 4-byte function selector followed by 32-byte words. Without
// the ABI the layout of those words is unknown, so this package guesses:
//   - Splits the input into a selector and 64-hex-digit words
//   - Finds calls nested inside byte arrays, such as the entries of a multicall
//   - Lists the types each word could plausibly hold
//
// # Basic Usage
//
//	decoded, err := calldata.Decode(input)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(decoded.Selector())
//	for _, call := range decoded.Nested() {
//	    fmt.Println(call.Selector, len(call.RawParams))
//	    for i, types := range call.Types {
//	        fmt.Println(i, types)
//	    }
//	}
//
// # Framing
//
// Input whose length is a multiple of 64 hex digits is read as whole words
// with the selector in the first word; it is zeroed there so the word keeps
// its width. Any other input is read as an 8-digit selector followed by
// words, the last of which may be short.
//
// # Nested Calls
//
// The parser walks the words once. A word whose first 8 digits are non-zero
// and whose remaining digits are zero is taken as the selector of a nested
// call, and the word before it as that call's length in bytes. Nested calls
// are walked in turn, up to WithMaxDepth levels.
//
// The walk realigns the word sequence as it goes. Both edits keep the total
// number of digits the same:
//   - PadZeroWord shifts the tail right by one selector at a bare zero word
//   - SpliceSelector removes a selector that sits mid-stream
//
// # Diagnostics
//
// Heuristic failures do not abort a decode. They are recorded as *StepError
// values in CallRecord.Diagnostics. WithStrict makes the first one abort the
// decode instead. Only malformed input fails in every mode.
//
// # Word Types
//
// Classify returns the candidate types of a single word, in priority order.
// It never fails: a word that matches no specific rule is {uint, int, bytes}.
package calldata
