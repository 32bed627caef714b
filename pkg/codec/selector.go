package codec

import (
	"strings"
	"unicode/utf8"
)

const (
	// Base is the first variation selector of the supplementary block (VS17).
	Base = 0xE0100
	// RangeEnd is the last code point used by the codec (VS144).
	RangeEnd = 0xE017F
	// ASCIIMax is the largest payload byte that can be encoded.
	ASCIIMax = 0x7F
)

// EncodeResult is the outcome of encoding a payload
type EncodeResult struct {
	Sequence string   // Reserved code points, one per encoded byte
	Count    int      // Number of bytes encoded
	Skipped  []string // Distinct non-ASCII characters, first-occurrence order
}

// DecodeResult is the outcome of splitting a string into carrier and payload
type DecodeResult struct {
	Carrier string // Everything before the trailing run
	Payload string // Recovered ASCII bytes
	Count   int    // Number of code points in the trailing run
}

// IsReserved reports whether r carries an encoded byte
func IsReserved(r rune) bool {
	return r >= Base && r <= RangeEnd
}

// encodeSequence maps payload to reserved code points
func encodeSequence(payload string) EncodeResult {
	var b strings.Builder
	b.Grow(len(payload) * utf8.RuneLen(Base))

	res := EncodeResult{Skipped: []string{}}
	seen := make(map[rune]struct{})

	for _, r := range payload {
		if r > ASCIIMax {
			if _, ok := seen[r]; !ok {
				seen[r] = struct{}{}
				res.Skipped = append(res.Skipped, string(r))
			}
			continue
		}
		b.WriteRune(Base + r)
		res.Count++
	}

	res.Sequence = b.String()
	return res
}

// decodeSequence scans text backwards for the trailing run of reserved code points
func decodeSequence(text string) DecodeResult {
	runes := []rune(text)

	i := len(runes) - 1
	for i >= 0 && IsReserved(runes[i]) {
		i--
	}

	run := runes[i+1:]
	payload := make([]byte, len(run))
	for j, r := range run {
		payload[j] = byte(r - Base)
	}

	// The carrier is sliced from the original string so non-trailing content,
	// invalid UTF-8 included, comes back untouched.
	carrier := text
	if len(run) > 0 {
		carrier = text[:len(text)-len(run)*utf8.RuneLen(Base)]
	}

	return DecodeResult{
		Carrier: carrier,
		Payload: string(payload),
		Count:   len(run),
	}
}

// Strip returns text with its trailing payload removed
func Strip(text string) string {
	return decodeSequence(text).Carrier
}
