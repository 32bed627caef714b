// Package codec hides ASCII payloads inside ordinary text for ghosthex.
//
// Each payload byte is written as one Unicode variation selector from the
// supplementary block (VS17 through VS144) and the resulting invisible run is
// appended to a visible carrier string. Decoding recovers the payload from the
// trailing run of those code points without any length prefix or delimiter.
//
// # Wire Format
//
// A byte b in [0x00, 0x7F] is written as the code point:
//
//	Base + b    where Base = U+E0100
//
// The reserved range is therefore [U+E0100, U+E017F], 128 code points, one per
// ASCII value. The mapping is a pure offset: every code point in range decodes
// to a valid byte and there is no "invalid encoding" error class.
//
// An encoded message has the layout:
//
//	[carrier][Base+p0][Base+p1]...[Base+pN-1]
//
// # Boundary Detection
//
// Decode scans code points from the end of the string backwards while they lie
// in the reserved range. That maximal trailing run is the payload; everything
// before it is the carrier, returned byte-for-byte. Reserved code points that
// are not part of the trailing run stay inside the carrier untouched.
//
// A carrier that itself ends in reserved code points cannot be told apart from
// one carrying a payload. This is inherent to the format.
//
// # Usage
//
//	c := codec.NewCodec()
//
//	hidden, res, err := c.Hide("nothing to see here", "meet at 6")
//	if err != nil {
//	    return err
//	}
//	if len(res.Skipped) > 0 {
//	    // non-ASCII characters were left out of the payload
//	}
//
//	out := c.Reveal(hidden)
//	fmt.Println(out.Carrier) // nothing to see here
//	fmt.Println(out.Payload) // meet at 6
//
// # Error Handling
//
// Encode and Decode never fail. Degraded input is reported through the result:
//   - EncodeResult.Skipped lists non-ASCII characters left out of the payload
//   - DecodeResult.Count is zero when there is nothing to decode
//
// Hide reports ErrCarrierRequired for an empty carrier unless the codec was
// built WithAllowEmptyCarrier, and a *NonASCIIError (matching ErrNonASCII)
// when the codec was built WithStrict.
//
// # Thread Safety
//
// Codec instances hold no mutable state and are safe for concurrent use.
package codec
