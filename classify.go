package calldata

import (
	"strings"

	"github.com/holiman/uint256"
)

// Type is a semantic type a 32-byte word may plausibly hold.
// The set of types is closed.
type Type uint8

const (
	// Selector is a 4-byte function selector left-aligned in the word.
	Selector Type = iota
	String
	Bytes
	Int
	Uint
	Uint8
	Bytes1
	Bool
	Address
	Bytes20

	// AnyZero is the all-zero word; every static type encodes its zero value this way.
	AnyZero

	// MaxUint128 is the 128-bit all-one pattern.
	MaxUint128

	// AnyMax is the all-one word (2^256 - 1, or -1 as a signed integer).
	AnyMax
)

var typeNames = [...]string{
	Selector:   "selector",
	String:     "string",
	Bytes:      "bytes",
	Int:        "int",
	Uint:       "uint",
	Uint8:      "uint8",
	Bytes1:     "bytes1",
	Bool:       "bool",
	Address:    "address",
	Bytes20:    "bytes20",
	AnyZero:    "anyZero",
	MaxUint128: "maxUint128",
	AnyMax:     "anyMax",
}

// String returns the tag name.
func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// TypeSet is an ordered, duplicate-free set of candidate types for one word.
// Order reflects precedence, not exclusivity.
type TypeSet struct {
	types []Type
}

// NewTypeSet builds a TypeSet, keeping the first occurrence of each type.
func NewTypeSet(types ...Type) TypeSet {
	set := TypeSet{types: make([]Type, 0, len(types))}
	for _, t := range types {
		if !set.Contains(t) {
			set.types = append(set.types, t)
		}
	}
	return set
}

// Types returns a copy of the candidates in precedence order.
func (s TypeSet) Types() []Type {
	out := make([]Type, len(s.types))
	copy(out, s.types)
	return out
}

// Len returns the number of candidates.
func (s TypeSet) Len() int {
	return len(s.types)
}

// Contains reports whether t is a candidate.
func (s TypeSet) Contains(t Type) bool {
	for _, c := range s.types {
		if c == t {
			return true
		}
	}
	return false
}

// First returns the highest-precedence candidate.
func (s TypeSet) First() (Type, bool) {
	if len(s.types) == 0 {
		return 0, false
	}
	return s.types[0], true
}

// Equal reports whether both sets hold the same types in the same order.
func (s TypeSet) Equal(other TypeSet) bool {
	if len(s.types) != len(other.types) {
		return false
	}
	for i := range s.types {
		if s.types[i] != other.types[i] {
			return false
		}
	}
	return true
}

// Strings returns the tag names in precedence order.
func (s TypeSet) Strings() []string {
	out := make([]string, len(s.types))
	for i, t := range s.types {
		out[i] = t.String()
	}
	return out
}

// String renders the set as "{a, b, c}".
func (s TypeSet) String() string {
	return "{" + strings.Join(s.Strings(), ", ") + "}"
}

// addressDigits is the number of significant hex digits in an address.
const addressDigits = 40

var (
	one   = uint256.NewInt(1)
	eight = uint256.NewInt(8)
)

// Classify guesses the candidate types of one 32-byte word.
// Rules are applied in order and the first match wins; the result is never empty.
func Classify(word string) TypeSet {
	word = strings.ToLower(word)

	switch word {
	case EmptyWord:
		return NewTypeSet(AnyZero)
	case MaxUint128Word:
		return NewTypeSet(MaxUint128)
	case MaxWord:
		return NewTypeSet(AnyMax)
	}

	if first, second, ok := halves(word); ok {
		// !00000000 && !ffffffff followed by 00000000
		if first != EmptySelector && first != MaskSelector && second == EmptySelector {
			return NewTypeSet(Selector, String, Bytes)
		}

		// Negative integers sign-extend with 0xff.
		if first == MaskSelector {
			if second == MaskSelector {
				return NewTypeSet(Int)
			}
			return NewTypeSet(Int, String, Bytes)
		}
	}

	if len(trimZeros(word)) == addressDigits {
		return NewTypeSet(Address, Bytes20, Uint)
	}

	if v, err := parseHexUint(word); err == nil {
		if v.Cmp(one) <= 0 {
			return NewTypeSet(Uint8, Bytes1, Bool)
		}
		if v.Cmp(eight) <= 0 {
			return NewTypeSet(Uint8, Bytes1)
		}
	}

	return NewTypeSet(Uint, Int, Bytes)
}

// ClassifyAll classifies each word of a sequence independently.
func ClassifyAll(words []string) []TypeSet {
	sets := make([]TypeSet, len(words))
	for i, w := range words {
		sets[i] = Classify(w)
	}
	return sets
}
