// Package urljudge decides whether a string is a syntactically well-formed URL.
//
// The input is split into its RFC 2396 components with the grammar from
// RFC 2396 Appendix B:
//
//	^(([^:/?#]+):)?(//([^/?#]*))?([^?#]*)(\?([^#]*))?(#(.*))?
//	 12            3  4          5       6  7        8 9
//
// and each component is checked by an independent rule:
//   - scheme: the token before ":" must be in the scheme allow-list
//   - authority: the host must have at least two dot-separated labels and
//     end in an allowed top-level domain
//   - port: optional, all digits, within 1024-49151
//   - path: no empty segments ("//") and no ".." climbing above the root
//   - query: optional, starts with "?" and contains "=" after it
//
// The results are combined with a logical AND into a single verdict. The
// verdict is only about shape: no name is resolved and no connection is made.
//
// # Usage
//
// Use Judge for the default allow-lists:
//
//	if !urljudge.Judge("http://www.example.com:8080/?q=go") {
//		return errors.New("malformed url")
//	}
//
// Build a Validator to supply custom allow-lists:
//
//	v := urljudge.New(urljudge.Options{
//		AllowLists: urljudge.AllowLists{
//			Schemes: []string{"https"},
//			TLDs:    []string{"io", "dev"},
//		},
//	})
//	ok := v.IsValid("https://pkg.go.dev")
//
// Use Explain to see which component failed:
//
//	verdict := v.Explain("htp://www.example.com")
//	for _, c := range verdict.Checks {
//		fmt.Printf("%s %q valid=%v\n", c.Component, c.Value, c.Valid)
//	}
//
// Every function in this package is total: any input, including the empty
// string, yields a definite true or false and never panics. A Validator holds
// no mutable state and is safe for concurrent use.
package urljudge
