package domain

import (
	"strings"
	"unicode/utf8"
)

// nbsp is used in place of regular spaces at segment boundaries so
// whitespace-collapsing renderers keep alignment-significant spacing.
const nbsp = " "

// Segment is one run of display text, either plain or emphasised.
type Segment struct {
	// Value is the raw slice of the original text.
	Value string

	// Highlight marks the segment as a matched fragment.
	Highlight bool
}

// DisplayValue returns Value with leading and trailing space runs
// converted to non-breaking spaces. A segment that is entirely
// whitespace collapses to a single non-breaking space.
func (s Segment) DisplayValue() string {
	if strings.TrimSpace(s.Value) == "" {
		if s.Value == "" {
			return ""
		}
		return nbsp
	}

	trimmed := strings.TrimLeft(s.Value, " ")
	lead := len(s.Value) - len(trimmed)
	trimmed = strings.TrimRight(trimmed, " ")
	trail := len(s.Value) - lead - len(trimmed)

	return strings.Repeat(nbsp, lead) + trimmed + strings.Repeat(nbsp, trail)
}

// RenderSegments partitions text into alternating plain and highlighted
// segments. Offsets take precedence: highlights is a flat list of
// (start, end) pairs with inclusive end positions, assumed sorted and
// non-overlapping. When no usable offsets are given, a single
// case-insensitive occurrence of the trimmed fallback query is
// highlighted instead. With neither, the whole text is one plain
// segment.
//
// The function is total: malformed offsets are clamped or collapse to
// empty segments, never an error. Concatenating the returned Values
// reconstructs text exactly.
func RenderSegments(text string, highlights []int, fallbackQuery string) []Segment {
	if len(highlights) >= 2 {
		return renderOffsets(text, highlights)
	}

	if q := strings.TrimSpace(fallbackQuery); q != "" {
		if segs, ok := renderQueryMatch(text, q); ok {
			return segs
		}
	}

	if text == "" {
		return nil
	}
	return []Segment{{Value: text}}
}

// renderOffsets walks the flattened offset pairs, emitting the plain
// gap before each pair and the highlighted slice it covers. An odd
// trailing entry is ignored.
func renderOffsets(text string, highlights []int) []Segment {
	var segs []Segment
	cursor := 0

	for i := 0; i+1 < len(highlights); i += 2 {
		start := clamp(highlights[i], cursor, len(text))
		// End offsets are inclusive per the lookup service convention.
		end := clamp(highlights[i+1]+1, 0, len(text))
		if end < start {
			end = start
		}

		if start > cursor {
			segs = append(segs, Segment{Value: text[cursor:start]})
		}
		if end > start {
			segs = append(segs, Segment{Value: text[start:end], Highlight: true})
		}
		cursor = end
	}

	if cursor < len(text) {
		segs = append(segs, Segment{Value: text[cursor:]})
	}
	return segs
}

// renderQueryMatch highlights the first case-insensitive occurrence of
// query within text. Returns false when the query does not occur.
//
// The scan folds rune windows of the original string rather than
// comparing against a lowered copy. Case mappings can change a rune's
// byte length, so indexes into a lowered string are not valid offsets
// into the original; folding in place keeps every emitted slice on a
// rune boundary of text.
func renderQueryMatch(text, query string) ([]Segment, bool) {
	queryRunes := utf8.RuneCountInString(query)
	if queryRunes == 0 {
		return nil, false
	}

	for start := 0; start < len(text); {
		end := start
		for runes := 0; runes < queryRunes; runes++ {
			if end >= len(text) {
				return nil, false
			}
			_, size := utf8.DecodeRuneInString(text[end:])
			end += size
		}

		if strings.EqualFold(text[start:end], query) {
			var segs []Segment
			if start > 0 {
				segs = append(segs, Segment{Value: text[:start]})
			}
			segs = append(segs, Segment{Value: text[start:end], Highlight: true})
			if rest := text[end:]; rest != "" {
				segs = append(segs, Segment{Value: rest})
			}
			return segs, true
		}

		_, size := utf8.DecodeRuneInString(text[start:])
		start += size
	}
	return nil, false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
