package framework

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

const reportRule = "=================================================="

var (
	passStyle = color.New(color.FgGreen, color.Bold)
	failStyle = color.New(color.FgRed, color.Bold)
	skipStyle = color.New(color.FgYellow)
)

// Glyph returns the coloured status marker for a result.
func Glyph(r TestResult) string {
	switch {
	case r.Skipped:
		return skipStyle.Sprint("- SKIP")
	case r.Failed:
		return failStyle.Sprint("✖ FAIL")
	default:
		return passStyle.Sprint("✔ PASS")
	}
}

// PrintResults writes one line per probe in execution order, then the summary and the
// final verdict.
func PrintResults(out io.Writer, results Results) {
	fmt.Fprintln(out, reportRule)
	fmt.Fprintln(out, "Test Summary:")
	for _, r := range results.Tests {
		fmt.Fprintf(out, "%s %s: %s\n", Glyph(r), r.TestID, r.Message)
	}
	fmt.Fprintln(out, reportRule)

	total := len(results.Tests)
	passed := results.PassedCount()
	fmt.Fprintf(out, "Backend Tests Complete: %d/%d passed", passed, total)
	if skipped := results.SkippedCount(); skipped > 0 {
		fmt.Fprintf(out, " (%d skipped)", skipped)
	}
	fmt.Fprintln(out)

	if results.OK() {
		fmt.Fprintln(out, passStyle.Sprint("All backend tests PASSED"))
		return
	}
	var names []string
	for _, f := range results.Failures {
		names = append(names, f.TestID.String())
	}
	fmt.Fprintln(out, failStyle.Sprintf("%d test(s) FAILED: %s", len(results.Failures), strings.Join(names, ", ")))
}
