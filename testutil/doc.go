// Package testutil provides common testing utilities for urljudge packages.
//
// This package includes helpers for:
//   - Capturing stdout during test execution (CaptureOutput)
//   - Writing fixture files into a directory (WriteFile)
//
// All functions use t.Helper() for proper test line reporting.
//
// Example usage:
//
//	func TestRegressCommand(t *testing.T) {
//	    cases := testutil.WriteFile(t, t.TempDir(), "cases.yaml", "cases: []")
//
//	    output := testutil.CaptureOutput(t, func() error {
//	        return runRegress(cases)
//	    })
//	    if !strings.Contains(output, "0 cases") {
//	        t.Errorf("unexpected output: %s", output)
//	    }
//	}
package testutil
