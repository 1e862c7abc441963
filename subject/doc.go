// Package subject provides the validators that urljudge compares against its
// own verdicts.
//
// Each implementation is an independent idea of what a valid URL is:
//   - NetURL parses with net/url and applies protocol, host, port and
//     length rules.
//   - Playground applies the "url" tag of go-playground/validator.
//
// Both satisfy compare.Checker. Lookup resolves them by name for the CLI,
// together with "judge", the urljudge oracle itself.
package subject
