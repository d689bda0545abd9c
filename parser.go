package calldata

import (
	"slices"

	"go.uber.org/zap"
)

// Decoder splits calldata into a selector and parameter words, extracts
// calls nested in those words, and guesses the type of each word.
// A Decoder holds only configuration and is safe for concurrent use.
type Decoder struct {
	config *decoderConfig
}

// New creates a Decoder with the given options.
func New(opts ...Option) *Decoder {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Decoder{config: cfg}
}

// Decode decodes input with a Decoder built from opts.
func Decode(input string, opts ...Option) (*Decoded, error) {
	return New(opts...).Decode(input)
}

// Decode decodes one calldata string.
// Only framing failures, or any heuristic failure in strict mode, return an error.
func (d *Decoder) Decode(input string) (*Decoded, error) {
	// Phase 1: framing
	selector, params, err := ParseFrame(input)
	if err != nil {
		return nil, err
	}
	root := &CallRecord{Selector: selector, RawParams: params}

	// Phase 2: nested-call discovery
	if err := d.discover(root); err != nil {
		return nil, err
	}

	// Phase 3: per-word classification
	if err := d.annotate(root); err != nil {
		return nil, err
	}

	d.config.logger.Debug("decoded calldata",
		zap.String("selector", root.Selector),
		zap.Int("words", len(root.Params)),
		zap.Int("nested", root.NestedCount()),
		zap.Int("offsetCandidates", len(root.Offsets)),
	)

	return &Decoded{Calldata: NormalizeHex(input), Call: root}, nil
}

// discover walks the root record and then every nested record found, using
// a worklist instead of recursion. Records deeper than maxDepth are kept
// but not walked.
func (d *Decoder) discover(root *CallRecord) error {
	pending := []*CallRecord{root}

	for len(pending) > 0 {
		rec := pending[0]
		pending = pending[1:]

		if rec.Depth > d.config.maxDepth {
			rec.Params = slices.Clone(rec.RawParams)
			d.config.logger.Debug("nested call beyond max depth not walked",
				zap.String("selector", rec.Selector),
				zap.Int("depth", rec.Depth),
			)
			continue
		}

		if err := d.walk(rec); err != nil {
			return err
		}
		pending = append(pending, rec.Nested...)
	}

	return nil
}

// walk drives step over a record's words until the cursor reaches the end.
func (d *Decoder) walk(rec *CallRecord) error {
	log := d.config.logger.With(zap.String("selector", rec.Selector), zap.Int("depth", rec.Depth))
	words := slices.Clone(rec.RawParams)
	offsets := newOffsetTable()

	for at := (cursor{}); at.index < len(words); {
		out := step(words, at)

		if out.dropped != nil {
			log.Debug("length candidacy dropped", zap.Int("index", out.index), zap.Error(out.dropped))
		}

		if out.issue != nil {
			stepErr := &StepError{Selector: rec.Selector, Depth: rec.Depth, Index: out.index, Err: out.issue}
			if d.config.strict {
				return stepErr
			}
			log.Warn("heuristic step failed", zap.Int("index", out.index), zap.Error(out.issue))
			rec.Diagnostics = append(rec.Diagnostics, stepErr)
		}

		if out.nested != nil {
			out.nested.Depth = rec.Depth + 1
			rec.Nested = append(rec.Nested, out.nested)
			log.Debug("nested call extracted",
				zap.String("nested", out.nested.Selector),
				zap.Int("index", out.index),
				zap.Int("words", len(out.nested.RawParams)),
				zap.Int("skip", out.next.skip),
			)
		}

		if out.offset != nil {
			offsets.record(*out.offset)
		}

		words = out.words
		at = out.next
	}

	rec.Params = words
	rec.Offsets = offsets.list()
	if d.config.regionProbes {
		rec.Regions = probeRegions(words, rec.Offsets)
	}
	return nil
}

// cursor is the walk position over a word sequence.
type cursor struct {
	index int
	// skip is a pending jump over words consumed by a nested call.
	skip int
}

// stepOutcome is the result of one walk iteration.
type stepOutcome struct {
	// words is the sequence after any edit made by the step.
	words []string

	// index is the word the step inspected.
	index int

	next   cursor
	nested *CallRecord
	offset *OffsetCandidate

	// issue is a heuristic failure that a strict decode reports.
	issue error

	// dropped is an integer parse failure that disqualified a length candidate.
	dropped error
}

// step runs one iteration of the walk:
//
//  1. apply a pending skip;
//  2. realign at a bare zero word and move past it;
//  3. if the word embeds a selector, read the previous word as the byte
//     length of a nested call and try to extract it;
//  4. otherwise record the word as an offset candidate if it looks like one;
//  5. advance by one.
func step(words []string, at cursor) stepOutcome {
	out := stepOutcome{words: words}

	i := at.index + at.skip
	out.index = i
	if i >= len(words) {
		out.next = cursor{index: i}
		return out
	}

	if words[i] == EmptyWord {
		padded, err := PadZeroWord(words, i)
		if err != nil {
			out.issue = err
			out.next = cursor{index: len(words)}
			return out
		}
		words = padded
		out.words = padded

		i++
		out.index = i
		if i >= len(words) {
			out.issue = &IndexError{Op: "read word after zero padding", Index: i, Length: len(words)}
			out.next = cursor{index: i}
			return out
		}
	}

	word := words[i]
	if _, _, ok := ScanSelector(word); ok {
		if i > 0 {
			out.extract(words, i)
		}
	} else if c, ok := offsetCandidate(trimZeros(word), i); ok {
		out.offset = &c
	}

	out.next.index = i + 1
	return out
}

// extract reads word i-1 as a declared byte length and cuts the nested call
// starting at word i. Lengths wider than 128 bits drop the candidacy; lengths
// beyond 64 bits cannot fit any sequence and are reported as out of range.
func (out *stepOutcome) extract(words []string, i int) {
	length, err := parseHexUint128(trimZeros(words[i-1]))
	if err != nil {
		out.dropped = err
		return
	}
	if !length.IsUint64() {
		out.issue = &IndexError{Op: "extract nested call", Index: i, Length: len(words)}
		return
	}

	ex, found, err := ExtractNested(words, i, length.Uint64())
	if err != nil {
		out.issue = err
		return
	}
	if !found {
		return
	}

	out.nested = ex.Record
	if !ex.Realign {
		return
	}

	spliced, err := SpliceSelector(words, i)
	if err != nil {
		out.issue = err
		return
	}
	out.words = spliced
	out.next.skip = ex.Skip
}
