package urljudge

import "strconv"

// Registered port range accepted by ValidPort.
const (
	MinPort = 1024
	MaxPort = 49151
)

// ValidPort reports whether port is a decimal number in [MinPort, MaxPort].
// Signs, spaces and any other non-digit byte make it invalid, as does a value
// too large to parse.
func ValidPort(port string) bool {
	if port == "" {
		return false
	}
	for i := 0; i < len(port); i++ {
		if port[i] < '0' || port[i] > '9' {
			return false
		}
	}
	n, err := strconv.Atoi(port)
	if err != nil {
		return false
	}
	return n >= MinPort && n <= MaxPort
}
