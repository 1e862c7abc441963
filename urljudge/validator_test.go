package urljudge

import (
	"strings"
	"testing"
)

func TestValidScheme(t *testing.T) {
	v := New(DefaultOptions())
	tests := []struct {
		name string
		part Part
		want bool
	}{
		{"http", Some("http:"), true},
		{"https", Some("https:"), true},
		{"ftp", Some("ftp:"), true},
		{"upper case", Some("HTTP:"), false},
		{"missing colon", Some("http"), false},
		{"unknown scheme", Some("htp:"), false},
		{"two colons", Some("http::"), false},
		{"colon only", Some(":"), false},
		{"empty", Some(""), false},
		{"absent", Part{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.ValidScheme(tt.part); got != tt.want {
				t.Errorf("ValidScheme(%v) = %v, want %v", tt.part, got, tt.want)
			}
		})
	}
}

func TestValidAuthority(t *testing.T) {
	v := New(DefaultOptions())
	tests := []struct {
		name string
		part Part
		want bool
	}{
		{"www host", Some("//www.amazon.com"), true},
		{"numeric label", Some("//123.com"), true},
		{"single letter label", Some("//a.com"), true},
		{"gov", Some("//yahoo.gov"), true},
		{"trailing dot", Some("//amazon.com."), true},
		{"empty first label", Some("//.com"), true},
		{"empty middle label", Some("//a..com"), true},
		{"single label", Some("//onlylabel"), false},
		{"tld alone", Some("//com"), false},
		{"unknown tld", Some("//www.amazon.a"), false},
		{"upper case tld", Some("//www.amazon.COM"), false},
		{"no slashes", Some("www.amazon.com"), false},
		{"one slash", Some("/www.amazon.com"), false},
		{"slashes only", Some("//"), false},
		{"too short", Some("/"), false},
		{"empty", Some(""), false},
		{"absent", Part{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.ValidAuthority(tt.part); got != tt.want {
				t.Errorf("ValidAuthority(%v) = %v, want %v", tt.part, got, tt.want)
			}
		})
	}
}

func TestValidPort(t *testing.T) {
	tests := []struct {
		port string
		want bool
	}{
		{"1024", true},
		{"49151", true},
		{"8080", true},
		{"001024", true},
		{"1023", false},
		{"49152", false},
		{"0", false},
		{"80", false},
		{"-1", false},
		{"8O80", false},
		{"+8080", false},
		{" 8080", false},
		{"", false},
		{strings.Repeat("9", 30), false},
	}

	for _, tt := range tests {
		t.Run(tt.port, func(t *testing.T) {
			if got := ValidPort(tt.port); got != tt.want {
				t.Errorf("ValidPort(%q) = %v, want %v", tt.port, got, tt.want)
			}
		})
	}
}

func TestValidQuery(t *testing.T) {
	tests := []struct {
		name string
		part Part
		want bool
	}{
		{"key value", Some("?action=delete"), true},
		{"empty key", Some("?="), true},
		{"several pairs", Some("?a=1&b=2"), true},
		{"missing question mark", Some("action=delete"), false},
		{"missing equals", Some("?delete"), false},
		{"question mark only", Some("?"), false},
		{"empty", Some(""), false},
		{"absent", Part{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidQuery(tt.part); got != tt.want {
				t.Errorf("ValidQuery(%v) = %v, want %v", tt.part, got, tt.want)
			}
		})
	}
}

func TestValidPath(t *testing.T) {
	strict := New(DefaultOptions())
	opts := DefaultOptions()
	opts.AllowDoubleSlash = true
	lenient := New(opts)

	tests := []struct {
		path        string
		wantStrict  bool
		wantLenient bool
	}{
		{"", true, true},
		{"/", true, true},
		{"/index.html", true, true},
		{"/a/./b", true, true},
		{"/a/../b", true, true},
		{"//contact", false, true},
		{"/a//b", false, true},
		{"/../etc", false, false},
		{"/a/b/../../..", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := strict.ValidPath(tt.path); got != tt.wantStrict {
				t.Errorf("strict ValidPath(%q) = %v, want %v", tt.path, got, tt.wantStrict)
			}
			if got := lenient.ValidPath(tt.path); got != tt.wantLenient {
				t.Errorf("lenient ValidPath(%q) = %v, want %v", tt.path, got, tt.wantLenient)
			}
		})
	}
}

func TestNewCopiesAllowLists(t *testing.T) {
	opts := Options{AllowLists: AllowLists{
		Schemes: []string{"https"},
		TLDs:    []string{"io"},
	}}
	v := New(opts)

	opts.Schemes[0] = "gopher"
	opts.TLDs[0] = "zog"

	if !v.IsValid("https://pkg.go.io") {
		t.Error("validator changed after caller mutated its allow-lists")
	}
	if v.IsValid("gopher://pkg.go.zog") {
		t.Error("validator picked up mutated allow-lists")
	}
}

func TestDefaultAllowListsReturnsCopy(t *testing.T) {
	lists := DefaultAllowLists()
	lists.Schemes[0] = "changed"
	if DefaultSchemes[0] != "http" {
		t.Errorf("DefaultAllowLists shares storage with DefaultSchemes")
	}
}
