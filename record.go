package calldata

// CallRecord is one decoded call: a selector, the words that belong to it
// and the nested calls discovered inside those words.
// A record is owned by its parent and is not modified after Decode returns.
type CallRecord struct {
	// Selector is the 4-byte function selector as 8 hex digits.
	Selector string

	// RawParams are the words as framed or extracted, before any realignment.
	RawParams []string

	// Params are the words after the walk's realignment edits.
	Params []string

	// Nested holds calls extracted from this record's words, in discovery order.
	Nested []*CallRecord

	// Types holds per-word candidate types. Nested records are annotated over
	// RawParams; the top-level slot stays nil unless WithTopLevelTypes is set,
	// in which case it annotates Params.
	Types []TypeSet

	// Offsets are words that look like offsets to dynamic regions.
	Offsets []OffsetCandidate

	// Regions holds dynamic-region probes; only filled with WithRegionProbes.
	Regions []RegionProbe

	// Diagnostics are heuristic failures absorbed during the walk.
	Diagnostics []error

	// Depth is 0 for the top-level call.
	Depth int
}

// NestedCount returns the number of calls directly nested in this record.
func (r *CallRecord) NestedCount() int {
	return len(r.Nested)
}

// Walk visits the record and all its descendants depth-first, parents
// before children. Returning false from fn stops the traversal.
func (r *CallRecord) Walk(fn func(*CallRecord) bool) {
	stack := []*CallRecord{r}
	for len(stack) > 0 {
		rec := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(rec) {
			return
		}
		for i := len(rec.Nested) - 1; i >= 0; i-- {
			stack = append(stack, rec.Nested[i])
		}
	}
}

// Decoded is the result of decoding one calldata string.
type Decoded struct {
	// Calldata is the normalised input: lower case, without 0x prefix.
	Calldata string

	// Call is the top-level call record.
	Call *CallRecord
}

// Selector returns the top-level selector.
func (d *Decoded) Selector() string {
	return d.Call.Selector
}

// Nested returns the calls nested directly in the top-level call.
func (d *Decoded) Nested() []*CallRecord {
	return d.Call.Nested
}

// Diagnostics collects the absorbed heuristic failures of every record.
func (d *Decoded) Diagnostics() []error {
	var out []error
	d.Call.Walk(func(r *CallRecord) bool {
		out = append(out, r.Diagnostics...)
		return true
	})
	return out
}
