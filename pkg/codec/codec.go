package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrCarrierRequired indicates Hide was called without carrier text.
	ErrCarrierRequired = errors.New("carrier text is required")

	// ErrNonASCII indicates a strict codec met a payload character above 0x7F.
	ErrNonASCII = errors.New("non-ASCII payload character")
)

// NonASCIIError describes the first payload character a strict codec rejected
type NonASCIIError struct {
	Char     rune // Offending character
	Position int  // Index of the character in code points
}

func (e *NonASCIIError) Error() string {
	return fmt.Sprintf("non-ASCII payload character %q (U+%04X) at position %d; only 0x00-0x7F are supported",
		e.Char, e.Char, e.Position)
}

func (e *NonASCIIError) Unwrap() error {
	return ErrNonASCII
}

// Option configures a Codec
type Option func(*Codec)

// WithAllowEmptyCarrier lets Hide produce output with no visible text
func WithAllowEmptyCarrier() Option {
	return func(c *Codec) { c.allowEmptyCarrier = true }
}

// WithStrict makes Hide reject non-ASCII payloads instead of skipping them
func WithStrict() Option {
	return func(c *Codec) { c.strict = true }
}

// Codec hides ASCII payloads in trailing variation selectors.
// A Codec is immutable once built and safe for concurrent use.
type Codec struct {
	allowEmptyCarrier bool
	strict            bool
}

// NewCodec creates a codec with the given options
func NewCodec(opts ...Option) *Codec {
	c := &Codec{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultCodec = NewCodec()

// Encode maps payload to its invisible sequence. Non-ASCII characters are skipped.
func (c *Codec) Encode(payload string) EncodeResult {
	return encodeSequence(payload)
}

// Decode splits text into carrier and the payload held in its trailing run
func (c *Codec) Decode(text string) DecodeResult {
	return decodeSequence(text)
}

// Hide appends the encoded payload to carrier
func (c *Codec) Hide(carrier, payload string) (string, EncodeResult, error) {
	if carrier == "" && !c.allowEmptyCarrier {
		return "", EncodeResult{}, ErrCarrierRequired
	}

	if c.strict {
		pos := 0
		for _, r := range payload {
			if r > ASCIIMax {
				return "", EncodeResult{}, &NonASCIIError{Char: r, Position: pos}
			}
			pos++
		}
	}

	res := c.Encode(payload)
	return carrier + res.Sequence, res, nil
}

// Reveal is Decode under the name that pairs with Hide
func (c *Codec) Reveal(text string) DecodeResult {
	return c.Decode(text)
}

// Encode maps payload using the default codec
func Encode(payload string) EncodeResult {
	return defaultCodec.Encode(payload)
}

// Decode splits text using the default codec
func Decode(text string) DecodeResult {
	return defaultCodec.Decode(text)
}
