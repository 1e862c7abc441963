// Package urlgen synthesizes adversarial URLs for comparing validators.
//
// Each URL is assembled from independently chosen pieces: a scheme (some
// invalid), the "://" separator, an optional "www." prefix, a host label, a
// top-level domain (some invalid), an optional port drawn from a range wider
// than the valid one, and an optional, sometimes malformed, query.
//
// A Generator owns its random source. Two generators built with the same seed
// produce the same sequence.
package urlgen

import (
	"math/rand/v2"
	"strconv"
	"strings"
)

// Piece pools. Empty strings and misspellings are deliberate.
var (
	Schemes = []string{"http", "https", "ftp", "", "htp"}
	Names   = []string{"yahoo.", "", "a.", "123.", "google."}
	TLDs    = []string{"com", "gov", "org", "", "edu", "zog"}
)

// MaxPort bounds generated ports; it lies above the valid range so that
// invalid ports are produced too.
const MaxPort = 66000

// Generator produces pseudo-random URLs. It is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator seeded with seed.
func New(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Next returns the next URL.
//
//   - scheme: uniform over Schemes
//   - "://": 9 in 10
//   - "www.": 9 in 10
//   - name and TLD: uniform over Names and TLDs
//   - ":" + port in [0, MaxPort): 1 in 20
//   - query: 1 in 20; "?" and "=" each appear half of the time around
//     "delete" and "all"
func (g *Generator) Next() string {
	var sb strings.Builder

	sb.WriteString(pick(g.rng, Schemes))
	if g.rng.IntN(10) != 0 {
		sb.WriteString("://")
	}
	if g.rng.IntN(10) != 0 {
		sb.WriteString("www.")
	}
	sb.WriteString(pick(g.rng, Names))
	sb.WriteString(pick(g.rng, TLDs))

	if g.rng.IntN(20) == 0 {
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(g.rng.IntN(MaxPort)))
	}

	if g.rng.IntN(20) == 0 {
		if g.rng.IntN(2) == 0 {
			sb.WriteByte('?')
		}
		sb.WriteString("delete")
		if g.rng.IntN(2) == 0 {
			sb.WriteByte('=')
		}
		sb.WriteString("all")
	}

	return sb.String()
}

// Batch returns the next n URLs.
func (g *Generator) Batch(n int) []string {
	if n <= 0 {
		return nil
	}
	urls := make([]string, n)
	for i := range urls {
		urls[i] = g.Next()
	}
	return urls
}

func pick(rng *rand.Rand, pool []string) string {
	return pool[rng.IntN(len(pool))]
}
