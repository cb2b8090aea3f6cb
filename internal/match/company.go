// Package match decides whether two free-text company names refer to the
// same company. Identity is exact modulo case and whitespace; punctuation and
// diacritics are significant ("CGI" and "C.G.I." are different companies).
package match

import "strings"

// Normalize returns the comparison key for a company name.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.ToLower(s)
}

// Matches reports whether a and b name the same company.
func Matches(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// Set is a collection of normalized company keys.
type Set map[string]struct{}

func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, n := range names {
		s.Add(n)
	}
	return s
}

func (s Set) Add(name string) {
	s[Normalize(name)] = struct{}{}
}

func (s Set) Contains(name string) bool {
	_, ok := s[Normalize(name)]
	return ok
}
