package urljudge

import "strings"

// ValidPath reports whether path has no empty segments (unless the Validator
// allows double slashes) and never climbs above its root through ".."
// segments. The empty path is valid.
func (v *Validator) ValidPath(path string) bool {
	if path == "" {
		return true
	}
	if !v.allowDoubleSlash && strings.Contains(path, "//") {
		return false
	}

	depth := 0
	for _, seg := range strings.Split(strings.TrimPrefix(path, "/"), "/") {
		switch seg {
		case "", ".":
		case "..":
			depth--
			if depth < 0 {
				return false
			}
		default:
			depth++
		}
	}
	return true
}
