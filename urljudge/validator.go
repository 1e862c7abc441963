package urljudge

import "strings"

// Validator judges URLs against a fixed set of allow-lists. The zero value is
// not usable; create one with New.
type Validator struct {
	schemes          set
	tlds             set
	allowDoubleSlash bool
	noFragments      bool
}

// New creates a Validator. The allow-lists are copied, so later changes to
// opts do not affect the Validator.
func New(opts Options) *Validator {
	return &Validator{
		schemes:          newSet(opts.Schemes),
		tlds:             newSet(opts.TLDs),
		allowDoubleSlash: opts.AllowDoubleSlash,
		noFragments:      opts.NoFragments,
	}
}

var defaultValidator = New(DefaultOptions())

// Judge reports whether raw is a valid URL under DefaultOptions.
func Judge(raw string) bool {
	return defaultValidator.IsValid(raw)
}

// ValidScheme reports whether p is a scheme token such as "http:" whose name
// is in the scheme allow-list. Exactly one trailing colon is stripped.
func (v *Validator) ValidScheme(p Part) bool {
	if !p.Present {
		return false
	}
	name, ok := strings.CutSuffix(p.Value, ":")
	if !ok {
		return false
	}
	return v.schemes.has(name)
}

// ValidAuthority reports whether p is a host token such as "//www.example.com"
// with at least two labels and an allowed top-level domain. Any port must be
// removed by the caller. Labels other than the last are not inspected.
func (v *Validator) ValidAuthority(p Part) bool {
	if !p.Present || len(p.Value) < 2 || p.Value[:2] != "//" {
		return false
	}
	labels := splitLabels(p.Value[2:])
	if len(labels) < 2 {
		return false
	}
	return v.tlds.has(labels[len(labels)-1])
}

// splitLabels splits host on dots and drops trailing empty labels, so
// "example.com." and "example.com" yield the same labels. An empty host has
// no labels.
func splitLabels(host string) []string {
	labels := strings.Split(host, ".")
	for len(labels) > 0 && labels[len(labels)-1] == "" {
		labels = labels[:len(labels)-1]
	}
	return labels
}
