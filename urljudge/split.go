package urljudge

import "regexp"

// grammar is the RFC 2396 Appendix B expression. Every group is optional, so
// it matches a prefix of any input.
var grammar = regexp.MustCompile(`^(([^:/?#]+):)?(//([^/?#]*))?([^?#]*)(\?([^#]*))?(#(.*))?`)

// Submatch group numbers within grammar.
const (
	groupScheme    = 1 // scheme including ':'
	groupAuthority = 3 // authority including '//'
	groupPath      = 5
	groupQuery     = 6 // query including '?'
	groupFragment  = 8 // fragment including '#'
)

// Part is one optional component of a split URL.
type Part struct {
	Value   string
	Present bool
}

// Some returns a present Part holding value.
func Some(value string) Part {
	return Part{Value: value, Present: true}
}

// String returns the value, or "<absent>" when the part did not match.
func (p Part) String() string {
	if !p.Present {
		return "<absent>"
	}
	return p.Value
}

// Components holds the parts of one input as matched by the URL grammar.
// Present parts are substrings of the input, in source order, and do not
// overlap.
type Components struct {
	Scheme    Part // e.g. "http:"
	Authority Part // e.g. "//www.example.com:8080"
	Path      Part // e.g. "/index.html"
	Query     Part // e.g. "?q=go"
	Fragment  Part // e.g. "#top"
}

// Split decomposes raw with the URL grammar. Input after the matched prefix
// is ignored. Split never fails; an input the grammar cannot match yields
// all parts absent.
func Split(raw string) Components {
	idx := grammar.FindStringSubmatchIndex(raw)
	if idx == nil {
		return Components{}
	}

	group := func(n int) Part {
		start, end := idx[2*n], idx[2*n+1]
		if start < 0 {
			return Part{}
		}
		return Some(raw[start:end])
	}

	return Components{
		Scheme:    group(groupScheme),
		Authority: group(groupAuthority),
		Path:      group(groupPath),
		Query:     group(groupQuery),
		Fragment:  group(groupFragment),
	}
}
