// Package config loads named judging profiles from YAML and applies
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jongio/urljudge/urljudge"
)

// Environment variables that override the allow-lists of any profile.
const (
	EnvSchemes = "URLJUDGE_SCHEMES"
	EnvTLDs    = "URLJUDGE_TLDS"
)

// DefaultProfile is used when no profile is named.
const DefaultProfile = "default"

var (
	// ErrUnknownProfile is returned when a profile name is not defined.
	ErrUnknownProfile = errors.New("unknown profile")
	// ErrEmptyAllowList is returned when a profile ends up with no schemes or no TLDs.
	ErrEmptyAllowList = errors.New("allow-list is empty")
)

// Profile is one named set of judging and harness settings.
type Profile struct {
	Name             string   `yaml:"name"`
	Schemes          []string `yaml:"schemes"`
	TLDs             []string `yaml:"tlds"`
	AllowDoubleSlash bool     `yaml:"allowDoubleSlash"`
	NoFragments      bool     `yaml:"noFragments"`
	Subject          string   `yaml:"subject"`
	Workers          int      `yaml:"workers"`
	RateLimit        int      `yaml:"rateLimit"`
	Burst            int      `yaml:"burst"`
	Port             int      `yaml:"port"`
	LogLevel         string   `yaml:"logLevel"`
	LogFormat        string   `yaml:"logFormat"`
}

// Profiles contains multiple named profiles.
type Profiles struct {
	Profiles map[string]Profile `yaml:"profiles"`
}

// Load reads profiles from path and merges them over the built-in defaults.
// An empty path or a missing file yields the defaults.
func Load(path string) (*Profiles, error) {
	if path == "" {
		return Defaults(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults(), nil
		}
		return nil, fmt.Errorf("failed to read profiles: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML profiles and merges them over the built-in defaults.
// A user profile that shares a default's name starts from that default;
// any other profile starts from "default". Fields the YAML omits keep the
// base value.
func Parse(data []byte) (*Profiles, error) {
	var raw struct {
		Profiles map[string]yaml.Node `yaml:"profiles"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse profiles: %w", err)
	}

	profiles := Defaults()
	for name, node := range raw.Profiles {
		base, ok := profiles.Profiles[name]
		if !ok {
			base = profiles.Profiles[DefaultProfile]
		}
		if err := node.Decode(&base); err != nil {
			return nil, fmt.Errorf("failed to parse profile %q: %w", name, err)
		}
		base.Name = name
		profiles.Profiles[name] = base
	}

	return profiles, nil
}

// Defaults returns the built-in profiles.
func Defaults() *Profiles {
	return &Profiles{
		Profiles: map[string]Profile{
			"default": {
				Name:      "default",
				Schemes:   urljudge.DefaultAllowLists().Schemes,
				TLDs:      urljudge.DefaultAllowLists().TLDs,
				Subject:   "neturl",
				Workers:   0,
				RateLimit: 50,
				Burst:     100,
				Port:      8080,
				LogLevel:  "info",
				LogFormat: "text",
			},
			"strict": {
				Name:        "strict",
				Schemes:     []string{"https"},
				TLDs:        urljudge.DefaultAllowLists().TLDs,
				NoFragments: true,
				Subject:     "neturl",
				Workers:     0,
				RateLimit:   10,
				Burst:       20,
				Port:        8080,
				LogLevel:    "info",
				LogFormat:   "json",
			},
			"lenient": {
				Name:             "lenient",
				Schemes:          []string{"http", "https", "ftp", "ftps"},
				TLDs:             []string{"com", "gov", "edu", "org", "net", "io", "dev"},
				AllowDoubleSlash: true,
				Subject:          "playground",
				Workers:          0,
				RateLimit:        0,
				Burst:            0,
				Port:             8080,
				LogLevel:         "debug",
				LogFormat:        "text",
			},
		},
	}
}

// Get returns a profile by name. An empty name selects DefaultProfile.
func (p *Profiles) Get(name string) (Profile, error) {
	if name == "" {
		name = DefaultProfile
	}
	profile, exists := p.Profiles[name]
	if !exists {
		return Profile{}, fmt.Errorf("%w %q (available profiles: %s)", ErrUnknownProfile, name, strings.Join(p.Names(), ", "))
	}
	return profile, nil
}

// Names returns the profile names in sorted order.
func (p *Profiles) Names() []string {
	names := make([]string, 0, len(p.Profiles))
	for name := range p.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve loads path, selects the named profile and applies environment
// overrides. The returned profile has non-empty allow-lists.
func Resolve(path, name string) (Profile, error) {
	profiles, err := Load(path)
	if err != nil {
		return Profile{}, err
	}
	profile, err := profiles.Get(name)
	if err != nil {
		return Profile{}, err
	}
	profile = profile.WithEnv(os.LookupEnv)
	if err := profile.Validate(); err != nil {
		return Profile{}, err
	}
	return profile, nil
}

// WithEnv returns a copy of p with URLJUDGE_SCHEMES and URLJUDGE_TLDS applied.
// A variable that is set replaces the list, even when it parses to nothing.
func (p Profile) WithEnv(lookup func(string) (string, bool)) Profile {
	if v, ok := lookup(EnvSchemes); ok {
		p.Schemes = splitList(v)
	}
	if v, ok := lookup(EnvTLDs); ok {
		p.TLDs = splitList(v)
	}
	return p
}

// Validate checks that both allow-lists are non-empty.
func (p Profile) Validate() error {
	if len(p.Schemes) == 0 {
		return fmt.Errorf("profile %q: schemes: %w", p.Name, ErrEmptyAllowList)
	}
	if len(p.TLDs) == 0 {
		return fmt.Errorf("profile %q: tlds: %w", p.Name, ErrEmptyAllowList)
	}
	return nil
}

// Options converts the profile to validator options.
func (p Profile) Options() urljudge.Options {
	return urljudge.Options{
		AllowLists: urljudge.AllowLists{
			Schemes: append([]string(nil), p.Schemes...),
			TLDs:    append([]string(nil), p.TLDs...),
		},
		AllowDoubleSlash: p.AllowDoubleSlash,
		NoFragments:      p.NoFragments,
	}
}

func splitList(v string) []string {
	fields := strings.FieldsFunc(v, func(r rune) bool { return r == ',' || r == ' ' })
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// SaveSample writes a commented sample profiles file to path. It refuses to
// overwrite an existing file.
func SaveSample(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	data, err := yaml.Marshal(Defaults())
	if err != nil {
		return fmt.Errorf("failed to marshal profiles: %w", err)
	}

	header := `# urljudge profiles
#
# Usage: urljudge --config urljudge.yaml --profile strict fuzz --count 1000
#
# Available settings:
#   schemes:          Accepted URL schemes (case-sensitive)
#   tlds:             Accepted top-level domains (case-sensitive)
#   allowDoubleSlash: Accept empty path segments such as /a//b
#   noFragments:      Reject URLs that carry a #fragment
#   subject:          Validator compared against the judge (neturl, playground, judge)
#   workers:          Concurrent checks (0 = one per CPU)
#   rateLimit:        Requests per second for serve (0 = unlimited)
#   burst:            Request burst for serve
#   port:             Listen port for serve
#   logLevel:         Logging level (debug, info, warn, error)
#   logFormat:        Log format (text, json)
#
# URLJUDGE_SCHEMES and URLJUDGE_TLDS (comma separated) override the lists.

`

	if err := os.WriteFile(path, []byte(header+string(data)), 0644); err != nil {
		return fmt.Errorf("failed to write profiles file: %w", err)
	}
	return nil
}
