package engine

import "strings"

// Match is a search hit. Index is the position in the original list so the caller
// can edit or delete without searching again.
type Match struct {
	Index  int
	Person *Person
}

// FindMatches returns every person whose first name, last name or "first last"
// contains query, case-insensitively, in list order. An empty query matches everyone.
func FindMatches(people []*Person, query string) []Match {
	q := strings.ToLower(query)
	var out []Match
	for i, p := range people {
		first := strings.ToLower(p.FirstName)
		last := strings.ToLower(p.LastName)
		full := strings.ToLower(p.FullName())
		if strings.Contains(first, q) || strings.Contains(last, q) || strings.Contains(full, q) {
			out = append(out, Match{Index: i, Person: p})
		}
	}
	return out
}
