package codec

import (
	"fmt"
	"strings"
)

// styleGlyphs maps ASCII letters to the mathematical glyphs used for display
var styleGlyphs = map[rune]string{
	'A': "𝐀",
	'B': "𝖡",
	'C': "𝖢",
	'D': "𝖣",
	'E': "𝐄",
	'F': "𝖥",
	'G': "𝖦",
	'H': "𝖧",
	'I': "𝐈",
	'J': "𝖩",
	'K': "𝖪",
	'L': "𝖫",
	'M': "𝖬",
	'N': "𝖭",
	'O': "𝐎",
	'P': "𝖯",
	'Q': "𝖰",
	'R': "𝖱",
	'S': "𝖲",
	'T': "𝖳",
	'U': "𝐔",
	'V': "𝖵",
	'W': "𝖶",
	'X': "𝖷",
	'Y': "𝖸",
	'Z': "𝖹",
	'a': "𝐚",
	'b': "𝖻",
	'c': "𝖼",
	'd': "𝖽",
	'e': "𝐞",
	'f': "𝖿",
	'g': "𝗀",
	'h': "𝗁",
	'i': "𝐢",
	'j': "𝗃",
	'k': "𝗄",
	'l': "𝗅",
	'm': "𝗆",
	'n': "𝗇",
	'o': "𝐨",
	'p': "𝗉",
	'q': "𝗊",
	'r': "𝗋",
	's': "𝗌",
	't': "𝗍",
	'u': "𝐮",
	'v': "𝗏",
	'w': "𝗐",
	'x': "𝗑",
	'y': "𝗒",
	'z': "𝗓",
}

// Stylize replaces ASCII letters with their styled glyphs. Other characters pass through.
func Stylize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if g, ok := styleGlyphs[r]; ok {
			b.WriteString(g)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Status kinds reported alongside a status message
const (
	KindNone  = ""
	KindGood  = "good"
	KindWarn  = "warn"
	KindError = "error"
)

// Status is a human-readable summary of a codec result
type Status struct {
	Message string `json:"message"`
	Kind    string `json:"kind,omitempty"`
}

// Describe summarizes an encode result
func Describe(res EncodeResult) Status {
	if len(res.Skipped) > 0 {
		suffix := " no ascii payload encoded."
		if res.Count > 0 {
			suffix = fmt.Sprintf(" encoded %d byte(s).", res.Count)
		}
		return Status{
			Message: fmt.Sprintf("omitted non-ascii: %s.%s", strings.Join(res.Skipped, " "), suffix),
			Kind:    KindError,
		}
	}
	if res.Count == 0 {
		return Status{Message: "payload is empty. output is just the carrier."}
	}
	return Status{
		Message: fmt.Sprintf("%d byte(s) mapped to vs17-vs144 and appended.", res.Count),
		Kind:    KindGood,
	}
}

// DescribeDecode summarizes a decode result
func DescribeDecode(res DecodeResult) Status {
	if res.Count == 0 {
		return Status{Message: "no trailing vs payload found.", Kind: KindWarn}
	}
	return Status{
		Message: fmt.Sprintf("%d byte(s) recovered from trailing vs.", res.Count),
		Kind:    KindGood,
	}
}

// FormatCodePoints lists the code points of s as space separated U+XXXX values
func FormatCodePoints(s string) string {
	parts := make([]string, 0, len(s))
	for _, r := range s {
		parts = append(parts, fmt.Sprintf("U+%04X", r))
	}
	return strings.Join(parts, " ")
}
