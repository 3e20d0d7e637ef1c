package search

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Highlight locates the first occurrence of query in line and splits the line
// around it. The comparison rule must be the one the line was matched with.
//
// Offsets always land on rune boundaries of the original line and Match keeps
// the line's own casing. An empty query yields an empty Prefix and Match with
// the whole line as Suffix.
func Highlight(line, query string, caseSensitive bool) (Span, error) {
	start, end := -1, -1
	if caseSensitive {
		if i := strings.Index(line, query); i >= 0 {
			start, end = i, i+len(query)
		}
	} else {
		start, end = indexFold(line, query)
	}

	if start < 0 {
		return Span{}, fmt.Errorf("%w: %q", ErrNoMatch, query)
	}

	return Span{
		Prefix: line[:start],
		Match:  line[start:end],
		Suffix: line[end:],
	}, nil
}

// MustHighlight is like Highlight but panics when line does not contain query.
// Only call it with lines produced by Search under the same rule.
func MustHighlight(line, query string, caseSensitive bool) Span {
	span, err := Highlight(line, query, caseSensitive)
	if err != nil {
		panic(err)
	}
	return span
}

// indexFold returns the byte range in line of the first run of runes whose
// lowercase forms equal the lowercase runes of query. strings.ToLower maps
// rune by rune, so this agrees with the containment test used by Search while
// reporting offsets in the original line.
func indexFold(line, query string) (int, int) {
	needle := []rune(strings.ToLower(query))
	if len(needle) == 0 {
		return 0, 0
	}

	for start := 0; start < len(line); {
		if end, ok := hasFoldPrefix(line[start:], needle); ok {
			return start, start + end
		}
		_, size := utf8.DecodeRuneInString(line[start:])
		start += size
	}
	return -1, -1
}

func hasFoldPrefix(s string, needle []rune) (int, bool) {
	offset := 0
	for _, want := range needle {
		if offset >= len(s) {
			return 0, false
		}
		r, size := utf8.DecodeRuneInString(s[offset:])
		if unicode.ToLower(r) != want {
			return 0, false
		}
		offset += size
	}
	return offset, true
}
