package search

import "strings"

// Search returns every line of contents containing query, in document order.
//
// When caseSensitive is false both sides are lowercased before comparing. An
// empty query matches every line and empty contents yield no lines.
func Search(query, contents string, caseSensitive bool) []string {
	results := make([]string, 0)
	if !caseSensitive {
		query = strings.ToLower(query)
	}
	for _, line := range Lines(contents) {
		if contains(line, query, caseSensitive) {
			results = append(results, line)
		}
	}
	return results
}

// Matches runs Search and resolves the highlight span and line number of each
// hit.
func Matches(query, contents string, caseSensitive bool) []Match {
	loweredQuery := query
	if !caseSensitive {
		loweredQuery = strings.ToLower(query)
	}

	matches := make([]Match, 0)
	for i, line := range Lines(contents) {
		if !contains(line, loweredQuery, caseSensitive) {
			continue
		}
		matches = append(matches, Match{
			LineNumber: i + 1,
			Line:       line,
			Span:       MustHighlight(line, query, caseSensitive),
		})
	}
	return matches
}

// Lines splits contents on '\n', dropping a trailing '\r' from each line. A
// final newline does not produce an extra empty line.
func Lines(contents string) []string {
	if contents == "" {
		return nil
	}
	contents = strings.TrimSuffix(contents, "\n")
	lines := strings.Split(contents, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// contains expects query to be lowercased already when caseSensitive is false.
func contains(line, query string, caseSensitive bool) bool {
	if caseSensitive {
		return strings.Contains(line, query)
	}
	return strings.Contains(strings.ToLower(line), query)
}
