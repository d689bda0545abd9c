package calldata

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
var (
	// ErrMalformedFraming indicates the input length fits neither the
	// word-aligned nor the legacy byte-packed framing.
	ErrMalformedFraming = errors.New("calldata: malformed framing")

	// ErrIndexOutOfRange indicates an access beyond the current word sequence.
	ErrIndexOutOfRange = errors.New("calldata: index out of range")

	// ErrIntegerParse indicates a slice expected to be a hex integer is not.
	ErrIntegerParse = errors.New("calldata: integer parse failure")

	// ErrNotSupported indicates a heuristic branch that is recognised but not implemented.
	ErrNotSupported = errors.New("calldata: not yet supported")

	// ErrInvalidSignature indicates a function signature that is not of the form name(types).
	ErrInvalidSignature = errors.New("calldata: invalid function signature")
)

// FramingError describes why the raw input could not be split into a selector and words.
type FramingError struct {
	Length int
	Reason string
}

func (e *FramingError) Error() string {
	return fmt.Sprintf("calldata: malformed framing (%d hex digits): %s", e.Length, e.Reason)
}

func (e *FramingError) Unwrap() error {
	return ErrMalformedFraming
}

// IndexError indicates an operation reached past the end of a word sequence.
type IndexError struct {
	Op     string
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("calldata: %s: index %d out of range (length %d)", e.Op, e.Index, e.Length)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// ParseError indicates a hex slice could not be parsed as an unsigned integer.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("calldata: cannot parse %q as integer: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("calldata: cannot parse %q as integer", e.Input)
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrIntegerParse}
	}
	return []error{ErrIntegerParse, e.Err}
}

// UnsupportedError marks a region the extractor recognised but cannot cut.
type UnsupportedError struct {
	Index     int
	Length    uint64
	Remainder int
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("calldata: word %d: length %d leaves remainder %d: %v",
		e.Index, e.Length, e.Remainder, ErrNotSupported)
}

func (e *UnsupportedError) Unwrap() error {
	return ErrNotSupported
}

// StepError wraps a heuristic failure raised while walking a call record.
type StepError struct {
	Selector string
	Depth    int
	Index    int
	Err      error
}

func (e *StepError) Error() string {
	if e.Selector != "" {
		return fmt.Sprintf("calldata: call %s (depth %d) word %d: %v", e.Selector, e.Depth, e.Index, e.Err)
	}
	return fmt.Sprintf("calldata: word %d: %v", e.Index, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// SignatureError indicates a signature could not be added to a SelectorBook.
type SignatureError struct {
	Signature string
	Reason    string
}

func (e *SignatureError) Error() string {
	return fmt.Sprintf("calldata: invalid function signature %q: %s", e.Signature, e.Reason)
}

func (e *SignatureError) Unwrap() error {
	return ErrInvalidSignature
}
