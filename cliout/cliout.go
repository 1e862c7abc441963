package cliout

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/term"
)

// Format represents the output format.
type Format string

const (
	// FormatDefault is the default human-readable format.
	FormatDefault Format = "default"
	// FormatJSON is JSON format.
	FormatJSON Format = "json"
)

// ANSI color codes
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	Red         = "\033[31m"
	Green       = "\033[32m"
	Yellow      = "\033[33m"
	Cyan        = "\033[36m"
	BrightRed   = "\033[91m"
	BrightGreen = "\033[92m"
	BrightBlue  = "\033[94m"
)

// Unicode symbols
const (
	SymbolCheck   = "✓"
	SymbolCross   = "✗"
	SymbolWarning = "⚠"
	SymbolInfo    = "ℹ"
	SymbolArrow   = "→"
)

// ASCII fallback symbols
const (
	ASCIICheck   = "[+]"
	ASCIICross   = "[-]"
	ASCIIWarning = "[!]"
	ASCIIInfo    = "[i]"
	ASCIIArrow   = "->"
)

var (
	mu           sync.RWMutex
	globalFormat = FormatDefault
	noColor      = !colorSupported()
)

var supportsUnicode = detectUnicodeSupport()

// colorSupported reports whether stdout is a terminal and NO_COLOR is unset.
func colorSupported() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// detectUnicodeSupport assumes Unicode everywhere except the legacy Windows
// console.
func detectUnicodeSupport() bool {
	if runtime.GOOS != "windows" {
		return true
	}
	for _, key := range []string{"WT_SESSION", "TERM_PROGRAM", "ConEmuPID", "PSModulePath", "TERM"} {
		if os.Getenv(key) != "" {
			return true
		}
	}
	return false
}

func getIcon(unicode, ascii string) string {
	if supportsUnicode {
		return unicode
	}
	return ascii
}

// ForceColor enables color output regardless of terminal detection.
func ForceColor() {
	mu.Lock()
	noColor = false
	mu.Unlock()
}

// NoColor disables color output.
func NoColor() {
	mu.Lock()
	noColor = true
	mu.Unlock()
}

// colorize wraps s in color unless color output is disabled.
func colorize(color, s string) string {
	mu.RLock()
	off := noColor
	mu.RUnlock()
	if off {
		return s
	}
	return color + s + Reset
}

// SetFormat sets the global output format.
func SetFormat(format string) error {
	mu.Lock()
	defer mu.Unlock()

	switch format {
	case "default", "":
		globalFormat = FormatDefault
	case "json":
		globalFormat = FormatJSON
	default:
		return fmt.Errorf("invalid output format: %s (valid options: default, json)", format)
	}
	return nil
}

// GetFormat returns the current output format.
func GetFormat() Format {
	mu.RLock()
	defer mu.RUnlock()
	return globalFormat
}

// IsJSON returns true if the output format is JSON.
func IsJSON() bool {
	return GetFormat() == FormatJSON
}

// PrintJSON prints data as indented JSON to stdout.
func PrintJSON(data any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Print outputs data in the configured format: JSON encodes data, the
// default format calls formatter.
func Print(data any, formatter func()) error {
	if IsJSON() {
		return PrintJSON(data)
	}
	formatter()
	return nil
}

// Header prints a bold header with a divider.
func Header(text string) {
	fmt.Printf("\n%s\n", colorize(Bold, text))
	fmt.Println(strings.Repeat("=", len(text)))
}

// Success prints a message with a green check mark.
func Success(format string, args ...any) {
	fmt.Printf("%s %s\n", colorize(BrightGreen, getIcon(SymbolCheck, ASCIICheck)), fmt.Sprintf(format, args...))
}

// Error prints a message with a red cross.
func Error(format string, args ...any) {
	fmt.Printf("%s %s\n", colorize(BrightRed, getIcon(SymbolCross, ASCIICross)), fmt.Sprintf(format, args...))
}

// ErrorTo reports err on w. In JSON format it writes {"error": "..."} so
// that stdout stays parseable when w is stderr.
func ErrorTo(w io.Writer, err error) {
	if IsJSON() {
		_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}
	fmt.Fprintf(w, "%s %s\n", colorize(BrightRed, getIcon(SymbolCross, ASCIICross)), err.Error())
}

// Warning prints a message with a yellow triangle.
func Warning(format string, args ...any) {
	fmt.Printf("%s  %s\n", colorize(Yellow, getIcon(SymbolWarning, ASCIIWarning)), fmt.Sprintf(format, args...))
}

// Info prints a message with a blue info icon.
func Info(format string, args ...any) {
	fmt.Printf("%s  %s\n", colorize(BrightBlue, getIcon(SymbolInfo, ASCIIInfo)), fmt.Sprintf(format, args...))
}

// ItemSuccess prints an indented line with a check mark.
func ItemSuccess(format string, args ...any) {
	fmt.Printf("   %s %s\n", colorize(Green, getIcon(SymbolCheck, ASCIICheck)), fmt.Sprintf(format, args...))
}

// ItemError prints an indented line with a cross.
func ItemError(format string, args ...any) {
	fmt.Printf("   %s %s\n", colorize(Red, getIcon(SymbolCross, ASCIICross)), fmt.Sprintf(format, args...))
}

// Arrow returns the arrow symbol.
func Arrow() string {
	return getIcon(SymbolArrow, ASCIIArrow)
}

// Label prints a label and value pair.
func Label(label, value string) {
	fmt.Printf("   %s %s\n", colorize(Dim, fmt.Sprintf("%-12s", label+":")), value)
}

// Newline prints a blank line.
func Newline() {
	fmt.Println()
}

// Bool renders a verdict as a colored "valid" or "invalid".
func Bool(valid bool) string {
	if valid {
		return colorize(BrightGreen, "valid")
	}
	return colorize(BrightRed, "invalid")
}

// TableRow maps column header to value.
type TableRow map[string]string

// Table prints rows under the given headers with aligned columns.
func Table(headers []string, rows []TableRow) {
	if len(rows) == 0 {
		return
	}

	widths := make(map[string]int, len(headers))
	for _, header := range headers {
		widths[header] = len(header)
	}
	for _, row := range rows {
		for _, header := range headers {
			if len(row[header]) > widths[header] {
				widths[header] = len(row[header])
			}
		}
	}

	var b strings.Builder
	b.WriteString("   ")
	for _, header := range headers {
		b.WriteString(colorize(Bold, fmt.Sprintf("%-*s", widths[header], header)))
		b.WriteString("  ")
	}
	b.WriteString("\n   ")
	for _, header := range headers {
		b.WriteString(strings.Repeat("─", widths[header]) + "  ")
	}
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString("   ")
		for _, header := range headers {
			fmt.Fprintf(&b, "%-*s  ", widths[header], row[header])
		}
		b.WriteString("\n")
	}
	fmt.Print(b.String())
}
