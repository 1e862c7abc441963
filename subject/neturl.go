package subject

import (
	"fmt"
	neturl "net/url"
	"slices"
	"strconv"
	"strings"
)

// MaxURLLength is the RFC 2616 practical limit for URL length.
const MaxURLLength = 2048

// NetURL validates URLs with net/url.Parse.
type NetURL struct {
	// Schemes lists the accepted protocols. Empty means http and https.
	Schemes []string
}

// Validate reports why raw is not acceptable, or nil. It checks that the URL:
//   - is not empty or only whitespace
//   - does not exceed MaxURLLength
//   - can be parsed by net/url.Parse
//   - uses an accepted scheme
//   - has a host, and a numeric port within 0-65535 when one is given
func (n NetURL) Validate(rawURL string) error {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return fmt.Errorf("url cannot be empty")
	}
	if len(rawURL) > MaxURLLength {
		return fmt.Errorf("url exceeds maximum length of %d characters", MaxURLLength)
	}

	parsed, err := neturl.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL format: %w", err)
	}

	schemes := n.Schemes
	if len(schemes) == 0 {
		schemes = []string{"http", "https"}
	}
	if !slices.Contains(schemes, parsed.Scheme) {
		if parsed.Scheme == "" {
			return fmt.Errorf("url must use one of %s", strings.Join(schemes, ", "))
		}
		return fmt.Errorf("url scheme %q not allowed", parsed.Scheme)
	}

	if parsed.Hostname() == "" {
		return fmt.Errorf("url missing host/domain")
	}

	if port := parsed.Port(); port != "" {
		num, err := strconv.Atoi(port)
		if err != nil || num > 65535 {
			return fmt.Errorf("url port %q out of range", port)
		}
	}

	return nil
}

// IsValid reports whether Validate accepts rawURL.
func (n NetURL) IsValid(rawURL string) bool {
	return n.Validate(rawURL) == nil
}
