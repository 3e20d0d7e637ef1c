package search

import "errors"

// ErrNoMatch reports that a line handed to Highlight does not contain the
// query under the requested comparison rule.
var ErrNoMatch = errors.New("search: query not found in line")

// Span splits a matching line around the first occurrence of the query. All
// three fields are sub-slices of the original line, so Prefix+Match+Suffix
// always reproduces it exactly.
type Span struct {
	Prefix string
	Match  string
	Suffix string
}

// String joins the span back into the line it was cut from.
func (s Span) String() string {
	return s.Prefix + s.Match + s.Suffix
}

// Match captures a matching line together with its position in the document
// and the span to emphasize.
type Match struct {
	LineNumber int
	Line       string
	Span       Span
}
