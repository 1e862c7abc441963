package subject

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jongio/urljudge/compare"
	"github.com/jongio/urljudge/urljudge"
)

// Names of the available validators.
const (
	NameNetURL     = "neturl"
	NamePlayground = "playground"
	NameJudge      = "judge"
)

// Lookup returns the validator registered under name. opts configures the
// judge and supplies the scheme list for neturl.
func Lookup(name string, opts urljudge.Options) (compare.Checker, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameNetURL:
		return NetURL{Schemes: opts.Schemes}, nil
	case NamePlayground:
		return NewPlayground(""), nil
	case NameJudge:
		return urljudge.New(opts), nil
	default:
		return nil, fmt.Errorf("unknown subject %q (valid options: %s)", name, strings.Join(Names(), ", "))
	}
}

// Names lists the names accepted by Lookup.
func Names() []string {
	names := []string{NameNetURL, NamePlayground, NameJudge}
	sort.Strings(names)
	return names
}
