package search

// Matcher tests addresses against a literal prefix.
type Matcher struct {
	prefix        string
	caseSensitive bool
}

// NewMatcher creates a matcher. The prefix is normalized to lower case when
// matching is case-insensitive.
func NewMatcher(prefix string, caseSensitive bool) *Matcher {
	if !caseSensitive {
		prefix = toLower(prefix)
	}
	return &Matcher{prefix: prefix, caseSensitive: caseSensitive}
}

// Prefix returns the normalized prefix.
func (m *Matcher) Prefix() string {
	return m.prefix
}

// Matches reports whether address starts with the prefix. Addresses are
// ASCII, so only the first len(prefix) bytes are compared and nothing is
// allocated.
func (m *Matcher) Matches(address string) bool {
	if len(address) < len(m.prefix) {
		return false
	}
	return equalPrefix(m.prefix, address[:len(m.prefix)], m.caseSensitive)
}

func equalPrefix(a, b string, caseSensitive bool) bool {
	if caseSensitive {
		return a == b
	}
	for i := 0; i < len(a); i++ {
		if lower(a[i]) != lower(b[i]) {
			return false
		}
	}
	return true
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func toLower(s string) string {
	b := []byte(s)
	for i := range b {
		b[i] = lower(b[i])
	}
	return string(b)
}
