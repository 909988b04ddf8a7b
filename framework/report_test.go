package framework

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withoutColor(t *testing.T) {
	saved := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = saved })
}

func TestPrintResultsAllPassed(t *testing.T) {
	withoutColor(t)
	results := runAll(nil, nil,
		namedAction{"Server Connectivity", func(c *Context) { c.Pass("Server responds correctly") }},
		namedAction{"API Endpoints", func(c *Context) { c.Pass("All 3 endpoint checks passed") }},
	)

	var buf bytes.Buffer
	PrintResults(&buf, results)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	require.Len(t, lines, 7)
	assert.Equal(t, "✔ PASS Server Connectivity: Server responds correctly", lines[2])
	assert.Equal(t, "✔ PASS API Endpoints: All 3 endpoint checks passed", lines[3])
	assert.Equal(t, "Backend Tests Complete: 2/2 passed", lines[5])
	assert.Equal(t, "All backend tests PASSED", lines[6])
}

func TestPrintResultsWithFailuresAndSkips(t *testing.T) {
	withoutColor(t)
	var filters RegexFilters
	require.NoError(t, filters.MustNotMatch.Set("CORS"))
	results := runAll(filters.AsFilter, nil,
		namedAction{"Server Connectivity", func(c *Context) { c.Fail("Connection failed", "refused") }},
		namedAction{"CORS Configuration", passing},
		namedAction{"Error Handling", passing},
	)

	var buf bytes.Buffer
	PrintResults(&buf, results)
	out := buf.String()

	assert.Contains(t, out, "✖ FAIL Server Connectivity: Connection failed\n")
	assert.Contains(t, out, "- SKIP CORS Configuration: excluded by filter parameters\n")
	assert.Contains(t, out, "Backend Tests Complete: 1/3 passed (1 skipped)\n")
	assert.Contains(t, out, "1 test(s) FAILED: Server Connectivity\n")
	assert.Less(t, strings.Index(out, "Server Connectivity:"), strings.Index(out, "CORS Configuration:"))
}
