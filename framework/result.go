package framework

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// Results is the ordered result log of one run.
type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

// TestResult is the record produced once per probe. It is never modified after it has
// been appended to Results.
type TestResult struct {
	TestID  TestID
	Failed  bool
	Skipped bool
	Message string
	Detail  string
	Errors  []error
}

// OK returns true if no probe failed. Skipped probes do not count as failures.
func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// PassedCount returns the number of probes that ran and did not fail.
func (r Results) PassedCount() int {
	n := 0
	for _, t := range r.Tests {
		if t.Passed() {
			n++
		}
	}
	return n
}

// SkippedCount returns the number of probes excluded from the run.
func (r Results) SkippedCount() int {
	n := 0
	for _, t := range r.Tests {
		if t.Skipped {
			n++
		}
	}
	return n
}

func (r TestResult) Passed() bool {
	return !r.Failed && !r.Skipped
}

// Err combines all errors recorded for the probe, or returns nil.
func (r TestResult) Err() error {
	return multierr.Combine(r.Errors...)
}

type TestID struct {
	Path []string
}

// Child returns the ID of a subtest. The parent's path is copied so sibling IDs never
// share a backing array.
func (t TestID) Child(name string) TestID {
	path := make([]string, 0, len(t.Path)+1)
	path = append(path, t.Path...)
	return TestID{Path: append(path, name)}
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// Name returns the last element of the path.
func (t TestID) Name() string {
	if len(t.Path) == 0 {
		return ""
	}
	return t.Path[len(t.Path)-1]
}

type TestFailure struct {
	ID  TestID
	Err error
}

func (f TestFailure) Error() string {
	return fmt.Sprintf("[%s]: %s", f.ID, f.Err)
}

func (f TestFailure) Unwrap() error {
	return f.Err
}
