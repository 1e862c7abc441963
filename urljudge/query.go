package urljudge

import "strings"

// ValidQuery reports whether p is a query token that starts with "?" and has
// a "=" somewhere after it, as in "?action=delete".
func ValidQuery(p Part) bool {
	if !p.Present || len(p.Value) < 1 || p.Value[0] != '?' {
		return false
	}
	return strings.IndexByte(p.Value, '=') > 0
}
