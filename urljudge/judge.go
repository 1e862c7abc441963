package urljudge

import "strings"

// Component names used in Check.
const (
	ComponentScheme    = "scheme"
	ComponentAuthority = "authority"
	ComponentPort      = "port"
	ComponentPath      = "path"
	ComponentQuery     = "query"
	ComponentFragment  = "fragment"
)

// Check is the outcome of one component rule.
type Check struct {
	Component string `json:"component"`
	Value     string `json:"value"`
	Present   bool   `json:"present"`
	Valid     bool   `json:"valid"`
}

// Verdict explains the judgment of one URL. Valid is the AND of every check.
type Verdict struct {
	URL    string  `json:"url"`
	Valid  bool    `json:"valid"`
	Checks []Check `json:"checks"`
}

// Failed returns the checks that did not pass.
func (v Verdict) Failed() []Check {
	var failed []Check
	for _, c := range v.Checks {
		if !c.Valid {
			failed = append(failed, c)
		}
	}
	return failed
}

// IsValid reports whether raw is a valid URL.
func (v *Validator) IsValid(raw string) bool {
	return v.Explain(raw).Valid
}

// Explain judges raw and records the result of every rule that applied.
//
// The scheme and authority are required. The authority is cut at its first
// colon into host and port before the host is split into labels, so a port
// never takes part in the top-level domain match. The port is checked only
// when a colon is present, the query only when present.
func (v *Validator) Explain(raw string) Verdict {
	c := Split(raw)
	verdict := Verdict{URL: raw, Valid: true}
	add := func(component string, p Part, ok bool) {
		verdict.Checks = append(verdict.Checks, Check{
			Component: component,
			Value:     p.Value,
			Present:   p.Present,
			Valid:     ok,
		})
		verdict.Valid = verdict.Valid && ok
	}

	add(ComponentScheme, c.Scheme, v.ValidScheme(c.Scheme))

	if !c.Authority.Present {
		add(ComponentAuthority, c.Authority, false)
	} else {
		host, port, hasPort := strings.Cut(c.Authority.Value, ":")
		add(ComponentAuthority, Some(host), v.ValidAuthority(Some(host)))
		if hasPort {
			add(ComponentPort, Some(port), ValidPort(port))
		}
	}

	add(ComponentPath, c.Path, v.ValidPath(c.Path.Value))

	if c.Query.Present {
		add(ComponentQuery, c.Query, ValidQuery(c.Query))
	}

	if c.Fragment.Present && v.noFragments {
		add(ComponentFragment, c.Fragment, false)
	}

	return verdict
}
