package urljudge

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJudge(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"http://www.amazon.com", true},
		{"htp://www.amazon.com", false},
		{"http://www.amazon.a", false},
		{"http://www.amazon.com:-1", false},
		{"http://www.amazon.com//contact", false},
		{"http://www.amazon.com/?action=delete", true},

		{"http://www.amazon.com:8080", true},
		{"http://www.amazon.com:1024", true},
		{"http://www.amazon.com:49151", true},
		{"http://www.amazon.com:1023", false},
		{"http://www.amazon.com:49152", false},
		{"http://www.amazon.com:", false},
		{"http://www.amazon.com:8080:9090", false},
		{"https://www.google.edu?delete=all", true},
		{"https://www.google.edu?delete", false},
		{"https://www.google.zog", false},
		{"ftp://yahoo.gov/pub/file.txt", true},
		{"http://www.amazon.com#section", true},
		{"http://www.amazon.com/../secret", false},
		{"HTTP://www.amazon.com", false},
		{"www.amazon.com", false},
		{"http:www.amazon.com", false},
		{"http://", false},
		{"://www.amazon.com", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, Judge(tt.url))
		})
	}
}

func TestJudge_PortDoesNotAffectTLD(t *testing.T) {
	// The port is cut off before the host is split on dots.
	assert.True(t, Judge("http://www.amazon.com:8080/index.html"))
	assert.False(t, Judge("http://www.amazon.com8080"))
}

func TestExplain(t *testing.T) {
	verdict := New(DefaultOptions()).Explain("htp://www.amazon.com:80?x")

	require.False(t, verdict.Valid)
	assert.Equal(t, "htp://www.amazon.com:80?x", verdict.URL)

	byName := map[string]Check{}
	for _, c := range verdict.Checks {
		byName[c.Component] = c
	}
	require.Len(t, byName, 5)
	assert.False(t, byName[ComponentScheme].Valid)
	assert.Equal(t, "htp:", byName[ComponentScheme].Value)
	assert.True(t, byName[ComponentAuthority].Valid)
	assert.Equal(t, "//www.amazon.com", byName[ComponentAuthority].Value)
	assert.False(t, byName[ComponentPort].Valid)
	assert.Equal(t, "80", byName[ComponentPort].Value)
	assert.True(t, byName[ComponentPath].Valid)
	assert.False(t, byName[ComponentQuery].Valid)

	failed := verdict.Failed()
	require.Len(t, failed, 3)
	assert.Equal(t, ComponentScheme, failed[0].Component)
	assert.Equal(t, ComponentPort, failed[1].Component)
	assert.Equal(t, ComponentQuery, failed[2].Component)
}

func TestExplain_MissingAuthority(t *testing.T) {
	verdict := New(DefaultOptions()).Explain("http:relative/path")

	assert.False(t, verdict.Valid)
	require.NotEmpty(t, verdict.Checks)
	auth := verdict.Checks[1]
	assert.Equal(t, ComponentAuthority, auth.Component)
	assert.False(t, auth.Present)
	assert.False(t, auth.Valid)
}

func TestExplain_NoPortCheckWithoutColon(t *testing.T) {
	verdict := New(DefaultOptions()).Explain("http://www.amazon.com")

	require.True(t, verdict.Valid)
	for _, c := range verdict.Checks {
		assert.NotEqual(t, ComponentPort, c.Component)
		assert.NotEqual(t, ComponentQuery, c.Component)
	}
	assert.Empty(t, verdict.Failed())
}

func TestNoFragments(t *testing.T) {
	opts := DefaultOptions()
	opts.NoFragments = true
	v := New(opts)

	assert.False(t, v.IsValid("http://www.amazon.com#top"))
	assert.True(t, v.IsValid("http://www.amazon.com"))
	assert.True(t, Judge("http://www.amazon.com#top"))
}

func TestCustomAllowLists(t *testing.T) {
	v := New(Options{AllowLists: AllowLists{
		Schemes: []string{"https"},
		TLDs:    []string{"io", "dev"},
	}})

	assert.True(t, v.IsValid("https://pkg.go.dev"))
	assert.True(t, v.IsValid("https://www.example.io:8443"))
	assert.False(t, v.IsValid("http://pkg.go.dev"))
	assert.False(t, v.IsValid("https://www.amazon.com"))

	// The package default is untouched.
	assert.True(t, Judge("https://www.amazon.com"))
}

func TestEmptyAllowListsRejectEverything(t *testing.T) {
	v := New(Options{})
	assert.False(t, v.IsValid("http://www.amazon.com"))
}

func TestIsValidIdempotentAndConcurrent(t *testing.T) {
	v := New(DefaultOptions())
	urls := []string{
		"http://www.amazon.com",
		"htp://www.amazon.com",
		"http://www.amazon.com:-1",
		"https://www.google.edu?delete=all",
	}
	want := make([]bool, len(urls))
	for i, u := range urls {
		want[i] = v.IsValid(u)
		require.Equal(t, want[i], v.IsValid(u), "second judgment of %q differs", u)
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 100; n++ {
				for i, u := range urls {
					if v.IsValid(u) != want[i] {
						t.Errorf("concurrent judgment of %q changed", u)
						return
					}
				}
			}
		}()
	}
	wg.Wait()
}

func FuzzJudge(f *testing.F) {
	for _, seed := range []string{
		"",
		"http://www.amazon.com",
		"http://www.amazon.com:-1",
		"https://www.google.edu?delete=all",
		"//",
		"?",
		"#",
		"a:",
		"http://:/?=#",
	} {
		f.Add(seed)
	}

	v := New(DefaultOptions())
	f.Fuzz(func(t *testing.T, raw string) {
		verdict := v.Explain(raw)
		if verdict.Valid != v.IsValid(raw) {
			t.Fatalf("Explain and IsValid disagree for %q", raw)
		}
		if !verdict.Valid {
			return
		}
		c := Split(raw)
		if !c.Scheme.Present || !c.Authority.Present {
			t.Fatalf("%q judged valid without scheme or authority", raw)
		}
	})
}
