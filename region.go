package calldata

import "strings"

// Verdict is the outcome of probing a word as the offset of a dynamic region.
type Verdict uint8

const (
	// RegionRejected means one of the validation gates failed.
	RegionRejected Verdict = iota

	// RegionUnconfirmed means every gate passed but the region was not
	// confirmed; confirming array and string boundaries is not supported yet.
	RegionUnconfirmed
)

// String returns the verdict name.
func (v Verdict) String() string {
	switch v {
	case RegionRejected:
		return "rejected"
	case RegionUnconfirmed:
		return "unconfirmed"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (v Verdict) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// RegionProbe records how far a word got through the dynamic-region gates.
type RegionProbe struct {
	Index       int
	Offset      uint64
	LengthIndex int
	Length      uint64
	Verdict     Verdict
	Reason      string
}

// regionAlignment is the byte alignment required of a region offset.
const regionAlignment = 32

// ProbeRegion checks whether word i is an offset pointing at the length
// field of an array or string. It never confirms a region: the best outcome
// is RegionUnconfirmed.
func ProbeRegion(words []string, i int) RegionProbe {
	probe := RegionProbe{Index: i, LengthIndex: -1, Verdict: RegionRejected}

	if i < 0 || i >= len(words) {
		probe.Reason = "index out of range"
		return probe
	}

	trimmed := trimZeros(words[i])
	if len(trimmed) > 2*ByteWidth {
		probe.Reason = "offset wider than two bytes"
		return probe
	}
	offset, err := parseHexUint64(trimmed)
	if err != nil {
		probe.Reason = "offset is not an integer"
		return probe
	}
	probe.Offset = offset
	if offset%regionAlignment != 0 {
		probe.Reason = "offset not word aligned"
		return probe
	}

	target := i + int(offset/regionAlignment)
	if target >= len(words) {
		probe.Reason = "length word out of range"
		return probe
	}
	probe.LengthIndex = target

	length, err := parseHexUint64(trimZeros(words[target]))
	if err != nil {
		probe.Reason = "length is not an integer"
		return probe
	}
	probe.Length = length

	if length >= uint64(len(words)) || target+int(length) >= len(words) {
		probe.Reason = "region runs past the end"
		return probe
	}

	if length%2 == 0 {
		last := target + int(length)
		for k := target + 1; k < last; k++ {
			if words[k] == MaxWord {
				probe.Reason = "filler word inside region"
				return probe
			}
		}

		padDigits := (regionAlignment - int(length%regionAlignment)) * ByteWidth
		tail := words[last]
		if len(tail) < padDigits || tail[len(tail)-padDigits:] != strings.Repeat("0", padDigits) {
			probe.Reason = "trailing padding not zero"
			return probe
		}
	}

	probe.Verdict = RegionUnconfirmed
	probe.Reason = "confirmation not supported"
	return probe
}

// probeRegions runs ProbeRegion over every offset candidate.
func probeRegions(words []string, candidates []OffsetCandidate) []RegionProbe {
	probes := make([]RegionProbe, 0, len(candidates))
	for _, c := range candidates {
		probes = append(probes, ProbeRegion(words, c.Index))
	}
	return probes
}
