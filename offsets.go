package calldata

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// offsetCeiling bounds offset candidates: a value at word i is only an
// offset candidate when it is below i*WordWidth + offsetCeiling.
const offsetCeiling = 1920

// OffsetCandidate is a word that looks like an offset to a dynamic region.
type OffsetCandidate struct {
	// Index is the position of the word in the walked sequence.
	Index int

	// Offset is the word's value divided by WordWidth.
	Offset uint64

	// Length is reserved for the length of the region once it is resolved.
	Length uint64
}

// offsetTable accumulates offset candidates keyed by word index, in the
// order the walk found them.
type offsetTable struct {
	entries *orderedmap.OrderedMap[int, OffsetCandidate]
}

func newOffsetTable() *offsetTable {
	return &offsetTable{
		entries: orderedmap.New[int, OffsetCandidate](),
	}
}

// record stores a candidate. A later candidate for the same index replaces
// the earlier one but keeps its position.
func (t *offsetTable) record(c OffsetCandidate) {
	t.entries.Set(c.Index, c)
}

// list returns the candidates in discovery order.
func (t *offsetTable) list() []OffsetCandidate {
	out := make([]OffsetCandidate, 0, t.entries.Len())
	for pair := t.entries.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

// offsetCandidate checks whether word i looks like an offset.
// trimmed is the word without leading zeros and must hold at most two bytes.
func offsetCandidate(trimmed string, i int) (OffsetCandidate, bool) {
	if len(trimmed) > 2*ByteWidth {
		return OffsetCandidate{}, false
	}
	v, err := parseHexUint64(trimmed)
	if err != nil {
		return OffsetCandidate{}, false
	}
	if v >= uint64(i*WordWidth+offsetCeiling) || v%WordWidth != 0 {
		return OffsetCandidate{}, false
	}
	return OffsetCandidate{Index: i, Offset: v / WordWidth}, true
}
