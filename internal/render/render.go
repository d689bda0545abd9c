// Package render prints decode results as text, JSON or YAML.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/branched-services/go-calldata"
	"github.com/branched-services/go-calldata/internal/config"
)

// Call is the printable form of a calldata.CallRecord.
type Call struct {
	Selector    string   `json:"selector" yaml:"selector"`
	Signature   string   `json:"signature,omitempty" yaml:"signature,omitempty"`
	Depth       int      `json:"depth" yaml:"depth"`
	Words       []Word   `json:"words" yaml:"words"`
	Offsets     []Offset `json:"offsets,omitempty" yaml:"offsets,omitempty"`
	Regions     []Region `json:"regions,omitempty" yaml:"regions,omitempty"`
	Diagnostics []string `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
	Nested      []Call   `json:"nested,omitempty" yaml:"nested,omitempty"`
}

// Word is one parameter word with its candidate types and readings.
type Word struct {
	Index   int      `json:"index" yaml:"index"`
	Value   string   `json:"value" yaml:"value"`
	Types   []string `json:"types,omitempty" yaml:"types,omitempty"`
	Address string   `json:"address,omitempty" yaml:"address,omitempty"`
	Decimal string   `json:"decimal,omitempty" yaml:"decimal,omitempty"`
}

// Offset is an offset candidate; Offset counts words, not bytes.
type Offset struct {
	Index  int    `json:"index" yaml:"index"`
	Offset uint64 `json:"offset" yaml:"offset"`
	Length uint64 `json:"length,omitempty" yaml:"length,omitempty"`
}

type Region struct {
	Index   int    `json:"index" yaml:"index"`
	Verdict string `json:"verdict" yaml:"verdict"`
	Reason  string `json:"reason" yaml:"reason"`
}

// Report is the printable form of a whole decode.
type Report struct {
	Calldata string `json:"calldata" yaml:"calldata"`
	Call     Call   `json:"call" yaml:"call"`
}

// Renderer prints decode results, labelling selectors found in its book.
type Renderer struct {
	book *calldata.SelectorBook
}

// New creates a Renderer. A nil book disables labels.
func New(book *calldata.SelectorBook) *Renderer {
	if book == nil {
		book = calldata.NewSelectorBook()
	}
	return &Renderer{book: book}
}

// Report converts a decode result into its printable form.
func (r *Renderer) Report(d *calldata.Decoded) Report {
	return Report{Calldata: "0x" + d.Calldata, Call: r.call(d.Call)}
}

func (r *Renderer) call(rec *calldata.CallRecord) Call {
	// Nested records are typed over their extracted words, the top level
	// over its realigned words.
	words := rec.Params
	if rec.Depth > 0 {
		words = rec.RawParams
	}

	c := Call{
		Selector:  "0x" + rec.Selector,
		Signature: r.book.Label(rec.Selector),
		Depth:     rec.Depth,
		Words:     make([]Word, 0, len(words)),
	}
	for i, w := range words {
		var types calldata.TypeSet
		if i < len(rec.Types) {
			types = rec.Types[i]
		}
		c.Words = append(c.Words, newWord(i, w, types))
	}
	for _, o := range rec.Offsets {
		c.Offsets = append(c.Offsets, Offset{Index: o.Index, Offset: o.Offset, Length: o.Length})
	}
	for _, p := range rec.Regions {
		c.Regions = append(c.Regions, Region{Index: p.Index, Verdict: p.Verdict.String(), Reason: p.Reason})
	}
	for _, err := range rec.Diagnostics {
		c.Diagnostics = append(c.Diagnostics, err.Error())
	}
	for _, n := range rec.Nested {
		c.Nested = append(c.Nested, r.call(n))
	}
	return c
}

func newWord(i int, value string, types calldata.TypeSet) Word {
	w := Word{Index: i, Value: value}
	if types.Len() == 0 {
		return w
	}
	w.Types = types.Strings()

	if types.Contains(calldata.Address) && len(value) >= common.AddressLength*2 {
		w.Address = common.HexToAddress(value[len(value)-common.AddressLength*2:]).Hex()
	}
	if types.Contains(calldata.Uint) || types.Contains(calldata.Uint8) {
		if dec, ok := decimal(value); ok {
			w.Decimal = dec
		}
	}
	return w
}

// decimal reads a word as an unsigned big-endian integer.
func decimal(word string) (string, bool) {
	trimmed := strings.TrimLeft(word, "0")
	if trimmed == "" {
		return "0", true
	}
	v, err := uint256.FromHex("0x" + trimmed)
	if err != nil {
		return "", false
	}
	return v.Dec(), true
}

// Render writes a decode result in the given format.
func (r *Renderer) Render(w io.Writer, format config.OutputFormat, d *calldata.Decoded) error {
	report := r.Report(d)
	switch format {
	case config.OutputJSON:
		return writeJSON(w, report)
	case config.OutputYAML:
		return writeYAML(w, report)
	case config.OutputText, "":
		return writeText(w, report)
	default:
		return errors.Errorf("unsupported output format %q", format)
	}
}

// RenderWords writes the candidate types of standalone words.
func (r *Renderer) RenderWords(w io.Writer, format config.OutputFormat, words []string) error {
	out := make([]Word, 0, len(words))
	for i, word := range words {
		out = append(out, newWord(i, word, calldata.Classify(word)))
	}

	switch format {
	case config.OutputJSON:
		return writeJSON(w, out)
	case config.OutputYAML:
		return writeYAML(w, out)
	case config.OutputText, "":
		for _, word := range out {
			if _, err := fmt.Fprintf(w, "%s {%s}\n", word.Value, strings.Join(word.Types, ", ")); err != nil {
				return errors.Wrap(err, "failed to write word")
			}
		}
		return nil
	default:
		return errors.Errorf("unsupported output format %q", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(v), "failed to encode json")
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "failed to encode yaml")
	}
	return errors.Wrap(enc.Close(), "failed to flush yaml")
}

func writeText(w io.Writer, report Report) error {
	tw := &textWriter{w: w}
	tw.printf(0, "calldata %s\n", report.Calldata)
	tw.call(0, report.Call)
	return tw.err
}

// textWriter keeps the first write error so the printing code stays linear.
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) printf(depth int, format string, args ...any) {
	if t.err != nil {
		return
	}
	_, err := fmt.Fprintf(t.w, strings.Repeat("  ", depth)+format, args...)
	if err != nil {
		t.err = errors.Wrap(err, "failed to write text")
	}
}

func (t *textWriter) call(depth int, c Call) {
	if c.Signature != "" {
		t.printf(depth, "call %s %s\n", c.Selector, c.Signature)
	} else {
		t.printf(depth, "call %s\n", c.Selector)
	}

	for _, w := range c.Words {
		t.printf(depth+1, "[%d] %s", w.Index, w.Value)
		if len(w.Types) > 0 {
			t.printf(0, " {%s}", strings.Join(w.Types, ", "))
		}
		if w.Address != "" {
			t.printf(0, " %s", w.Address)
		}
		t.printf(0, "\n")
	}
	for _, o := range c.Offsets {
		t.printf(depth+1, "offset [%d] -> +%d words\n", o.Index, o.Offset)
	}
	for _, p := range c.Regions {
		t.printf(depth+1, "region [%d] %s: %s\n", p.Index, p.Verdict, p.Reason)
	}
	for _, d := range c.Diagnostics {
		t.printf(depth+1, "warning: %s\n", d)
	}
	for _, n := range c.Nested {
		t.call(depth+1, n)
	}
}
