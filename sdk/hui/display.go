package hui

// Character handling for the three display classes. The display code table
// covers printable ASCII one-to-one; everything else falls back to a blank
// on encode and a placeholder on decode, so display text can never block
// protocol traffic.

const (
	charBlank       = 0x20 // fallback for unsupported characters
	charPlaceholder = '?'  // shown for unmapped wire bytes
)

// encodeChar maps a character to its display code. Total: characters
// outside the supported set become a blank.
func encodeChar(r rune) byte {
	if r >= 0x20 && r <= 0x7E {
		return byte(r)
	}
	return charBlank
}

// decodeChar is the inverse of encodeChar for the supported set; unmapped
// bytes decode to the placeholder character.
func decodeChar(b byte) rune {
	if b >= 0x20 && b <= 0x7E {
		return rune(b)
	}
	return charPlaceholder
}

// encodeText encodes s into exactly width bytes, truncating or padding with
// blanks on the right.
func encodeText(s string, width int) []byte {
	out := make([]byte, width)
	i := 0
	for _, r := range s {
		if i == width {
			break
		}
		out[i] = encodeChar(r)
		i++
	}
	for ; i < width; i++ {
		out[i] = charBlank
	}
	return out
}

// decodeText decodes a display byte slice back to text.
func decodeText(bs []byte) string {
	out := make([]rune, len(bs))
	for i, b := range bs {
		out[i] = decodeChar(b)
	}
	return string(out)
}

// The time display is eight seven-segment positions, each a digit or blank
// with its own dot. A position travels as one byte: the digit in the low
// nibble, the dot on bit 4, or a blank code.

const (
	timeDotBit    = 0x10
	timeBlankCode = 0x20
)

// timePos is one seven-segment position of the time display.
type timePos struct {
	char rune // '0'..'9' or ' '
	dot  bool
}

// parseTimeText splits a time string into display positions. A '.' attaches
// a dot to the position before it rather than occupying one of its own, so
// "12.34" fills four positions; a dot with no position before it is dropped.
func parseTimeText(s string) []timePos {
	var out []timePos
	for _, r := range s {
		if r == '.' {
			if len(out) > 0 {
				out[len(out)-1].dot = true
			}
			continue
		}
		p := timePos{char: ' '}
		if r >= '0' && r <= '9' {
			p.char = r
		}
		out = append(out, p)
	}
	return out
}

// encodeTimePos converts one position to its wire byte.
func encodeTimePos(p timePos) byte {
	if p.char < '0' || p.char > '9' {
		return timeBlankCode
	}
	b := byte(p.char - '0')
	if p.dot {
		b |= timeDotBit
	}
	return b
}

// decodeTimePos converts a wire byte back to a position. Unknown codes
// decode as a blank.
func decodeTimePos(b byte) timePos {
	if b&^timeDotBit <= 9 {
		return timePos{char: rune('0' + b&^timeDotBit), dot: b&timeDotBit != 0}
	}
	return timePos{char: ' '}
}

// formatTimeText renders positions back to the textual form parseTimeText
// accepts.
func formatTimeText(ps []timePos) string {
	var out []rune
	for _, p := range ps {
		out = append(out, p.char)
		if p.dot {
			out = append(out, '.')
		}
	}
	return string(out)
}
