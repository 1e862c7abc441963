package urlgen

import (
	"slices"
	"strings"
	"testing"

	"github.com/jongio/urljudge/urljudge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSameSeedSameSequence(t *testing.T) {
	a := New(42).Batch(200)
	b := New(42).Batch(200)
	assert.Equal(t, a, b)
}

func TestDifferentSeedsDiffer(t *testing.T) {
	a := New(1).Batch(200)
	b := New(2).Batch(200)
	assert.NotEqual(t, a, b)
}

func TestBatch(t *testing.T) {
	assert.Nil(t, New(7).Batch(0))
	assert.Nil(t, New(7).Batch(-3))
	assert.Len(t, New(7).Batch(5), 5)
}

func TestNextShape(t *testing.T) {
	g := New(99)
	for _, u := range g.Batch(2000) {
		scheme := u
		if i := strings.Index(u, "://"); i >= 0 {
			scheme = u[:i]
		}
		// Without "://" the scheme runs into the host, so only check the
		// separated form.
		if strings.Contains(u, "://") {
			assert.True(t, slices.Contains(Schemes, scheme), "unexpected scheme in %q", u)
		}
		assert.NotContains(t, u, "#", "fragment in %q", u)
	}
}

func TestNextCoversValidAndInvalid(t *testing.T) {
	var valid, invalid, withPort, withQuery int
	for _, u := range New(2024).Batch(5000) {
		c := urljudge.Split(u)
		if c.Authority.Present && strings.Contains(c.Authority.Value, ":") {
			withPort++
		}
		if strings.Contains(u, "delete") {
			withQuery++
		}
		if urljudge.Judge(u) {
			valid++
		} else {
			invalid++
		}
	}

	require.Positive(t, valid)
	require.Positive(t, invalid)
	// 1 in 20 each: expect about 250 of 5000.
	assert.InDelta(t, 250, withPort, 125)
	assert.InDelta(t, 250, withQuery, 125)
}
