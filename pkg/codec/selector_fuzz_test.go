//go:build fuzz
// +build fuzz

package codec

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// FuzzCodec_RoundTrip tests hide/reveal round-trip with random inputs
func FuzzCodec_RoundTrip(f *testing.F) {
	c := NewCodec(WithAllowEmptyCarrier())

	// Add seed corpus
	f.Add("", "")
	f.Add("carrier", "payload")
	f.Add("🎯 target", "Hi")
	f.Add("x", "\x00\x01\x7f")

	f.Fuzz(func(t *testing.T, carrier, payload string) {
		if len(carrier) > 10000 || len(payload) > 10000 {
			t.Skip("Input too large for fuzz test")
		}

		// Carriers ending in reserved code points are ambiguous by construction
		if r, _ := utf8.DecodeLastRuneInString(carrier); IsReserved(r) {
			t.Skip("carrier ends in a reserved code point")
		}

		hidden, res, err := c.Hide(carrier, payload)
		if err != nil {
			t.Fatalf("Hide failed for carrier=%q payload=%q: %v", carrier, payload, err)
		}

		var ascii strings.Builder
		for _, r := range payload {
			if r <= ASCIIMax {
				ascii.WriteRune(r)
			}
		}

		out := c.Reveal(hidden)
		if out.Carrier != carrier {
			t.Errorf("Carrier mismatch: got %q, want %q", out.Carrier, carrier)
		}
		if out.Payload != ascii.String() {
			t.Errorf("Payload mismatch: got %q, want %q", out.Payload, ascii.String())
		}
		if out.Count != res.Count {
			t.Errorf("Count mismatch: got %d, want %d", out.Count, res.Count)
		}
	})
}

// FuzzDecode_NeverPanics feeds arbitrary text to Decode
func FuzzDecode_NeverPanics(f *testing.F) {
	f.Add("")
	f.Add("plain")
	f.Add("a\xff\xfe")
	f.Add("x" + Encode("seed").Sequence)

	f.Fuzz(func(t *testing.T, text string) {
		out := Decode(text)
		if out.Carrier+Encode(out.Payload).Sequence != text {
			t.Errorf("carrier and payload do not reassemble %q", text)
		}
		if len(out.Payload) != out.Count {
			t.Errorf("Payload length %d does not match count %d", len(out.Payload), out.Count)
		}
	})
}
