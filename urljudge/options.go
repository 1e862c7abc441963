package urljudge

// Default allow-lists.
var (
	DefaultSchemes = []string{"http", "https", "ftp"}
	DefaultTLDs    = []string{"com", "gov", "edu", "org"}
)

// AllowLists names the accepted schemes and top-level domains. Matching is
// case-sensitive.
type AllowLists struct {
	Schemes []string `yaml:"schemes" json:"schemes"`
	TLDs    []string `yaml:"tlds" json:"tlds"`
}

// DefaultAllowLists returns a fresh copy of the default allow-lists.
func DefaultAllowLists() AllowLists {
	return AllowLists{
		Schemes: append([]string(nil), DefaultSchemes...),
		TLDs:    append([]string(nil), DefaultTLDs...),
	}
}

// Options configures a Validator.
type Options struct {
	AllowLists

	// AllowDoubleSlash accepts empty path segments such as "/a//b".
	AllowDoubleSlash bool `yaml:"allowDoubleSlash" json:"allowDoubleSlash"`

	// NoFragments rejects any URL carrying a "#fragment".
	NoFragments bool `yaml:"noFragments" json:"noFragments"`
}

// DefaultOptions returns the options used by Judge.
func DefaultOptions() Options {
	return Options{AllowLists: DefaultAllowLists()}
}

type set map[string]struct{}

func newSet(values []string) set {
	s := make(set, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

func (s set) has(v string) bool {
	_, ok := s[v]
	return ok
}
