// Package cliout formats urljudge command output for terminals and scripts.
//
// # Features
//
//   - Two output formats: default human-readable text and JSON
//   - ANSI colors, switched off automatically when stdout is not a terminal
//     or NO_COLOR is set
//   - Unicode symbols with ASCII fallbacks for legacy Windows consoles
//   - Simple aligned tables
//
// # Basic Usage
//
//	cliout.Success("%d cases passed", n)
//	cliout.Error("url mismatch: %s", raw)
//	cliout.Label("Seed", "42")
//
// # Output Formats
//
// Select the format once, usually from the global --output flag:
//
//	if err := cliout.SetFormat(output); err != nil {
//		return err
//	}
//
// then let Print pick the rendering:
//
//	return cliout.Print(report, func() {
//		cliout.Header("Comparison")
//		cliout.Label("Total", strconv.Itoa(report.Total))
//	})
//
// In JSON mode the data value is encoded to stdout and the formatter is not
// called.
package cliout
