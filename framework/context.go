package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"

	"go.uber.org/multierr"
)

const defaultPassMessage = "passed"

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
}

// Context is the state of one probe or sub-check. It implements the same failure methods
// as *testing.T, so it can be passed to the assert and require packages.
type Context struct {
	env         *environment
	id          TestID
	debugLogger *CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
	message     string
	failMessage string
	detail      string
	errors      []error
	checkErrors []error
}

// Run executes action with a root context and returns the result log. The root context
// itself does not produce a TestResult; each call to Context.Run inside action does.
func Run(
	filter Filter,
	testLogger TestLogger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:     filter,
		testLogger: testLogger,
	}
	c := &Context{env: env, debugLogger: &CapturingLogger{}}
	c.contain(action)
	return env.results
}

// contain runs action and converts any panic into a failure of this context.
func (c *Context) contain(action func(*Context)) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if other, ok := r.(*Context); ok && other != c {
			panic(r) // FailNow on an enclosing context; let its own boundary handle it
		}
		if c.skipped {
			return
		}
		c.failed = true
		var addError error
		if _, ok := r.(*Context); ok {
			if len(c.errors) == 0 {
				addError = errors.New("test failed with no failure message")
			}
		} else {
			addError = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
		}
		if addError != nil {
			c.errors = append(c.errors, addError)
			c.env.testLogger.TestError(c.id, addError)
		}
	}()

	action(c)
}

func (c *Context) ID() TestID {
	return c.id
}

// Run runs a probe as a child of this context and appends exactly one TestResult for it,
// whatever the probe does.
func (c *Context) Run(name string, action func(*Context)) {
	id := c.id.Child(name)

	c.env.testLogger.TestStarted(id)
	if c.env.filter != nil && !c.env.filter(id) {
		reason := "excluded by filter parameters"
		c.env.results.Tests = append(c.env.results.Tests, TestResult{TestID: id, Skipped: true, Message: reason})
		c.env.testLogger.TestSkipped(id, reason)
		return
	}
	c1 := &Context{
		id:          id,
		env:         c.env,
		debugLogger: &CapturingLogger{},
	}
	c1.contain(action)

	result := c1.result()
	c.env.results.Tests = append(c.env.results.Tests, result)
	if result.Failed {
		c.env.results.Failures = append(c.env.results.Failures, result)
	}
	if c1.skipped {
		c.env.testLogger.TestSkipped(id, c1.skipReason)
	} else {
		c.env.testLogger.TestFinished(id, result, c1.debugLogger.Output())
	}
}

// Check runs a named sub-check inside its own error boundary and returns true if it
// passed. The sub-check shares this context's debug output but does not produce a
// TestResult. Its failure is remembered so that it can be reported if the enclosing
// probe fails, but it does not by itself fail the enclosing probe.
func (c *Context) Check(name string, action func(*Context)) bool {
	id := c.id.Child(name)
	c1 := &Context{
		id:          id,
		env:         c.env,
		debugLogger: c.debugLogger,
	}
	c1.contain(action)

	result := c1.result()
	c.env.testLogger.CheckFinished(id, result)
	if result.Failed {
		c.checkErrors = append(c.checkErrors, TestFailure{ID: id, Err: errors.New(checkSummary(result))})
		c.Debug("check %q failed: %s", name, result.Message)
		return false
	}
	return !result.Skipped
}

func (c *Context) result() TestResult {
	r := TestResult{
		TestID:  c.id,
		Failed:  c.failed,
		Skipped: c.skipped,
		Detail:  c.detail,
		Errors:  c.errors,
	}
	switch {
	case c.skipped:
		r.Message = c.skipReason
	case c.failed:
		r.Message = c.failMessage
		if r.Message == "" && len(c.errors) > 0 {
			r.Message = failureSummary(c.errors[0].Error())
		}
		if len(c.checkErrors) > 0 {
			r.Errors = append(append([]error(nil), c.errors...), c.checkErrors...)
			if r.Detail == "" {
				r.Detail = multierr.Combine(c.checkErrors...).Error()
			}
		}
	default:
		r.Message = c.message
		if r.Message == "" {
			r.Message = defaultPassMessage
		}
	}
	return r
}

// Errorf is called by assertions to log a failure. It does not cause an immediate exit.
func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, err)
}

// Fail records a failure with a short message and an optional detail string, and exits
// the probe immediately. If the probe already failed, the first message is kept.
func (c *Context) Fail(message, detail string) {
	if c.failMessage == "" {
		c.failMessage = message
		c.detail = detail
	}
	err := errors.New(message)
	if detail != "" {
		err = fmt.Errorf("%s: %s", message, detail)
	}
	c.failed = true
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, err)
	c.FailNow()
}

// Pass sets the message reported if the probe does not fail.
func (c *Context) Pass(message string) {
	c.message = message
}

func (c *Context) Failed() bool {
	return c.failed
}

func (c *Context) FailNow() {
	panic(c)
}

func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	return c.debugLogger
}

func checkSummary(r TestResult) string {
	if r.Detail == "" {
		return r.Message
	}
	return r.Message + " (" + r.Detail + ")"
}

// failureSummary picks a one-line message out of a failure's text. Assertion failures
// are multi-line and begin with a blank line, so the labeled "Error:" line is preferred,
// then the first non-blank line.
func failureSummary(s string) string {
	first := ""
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if rest := strings.TrimPrefix(line, "Error:"); rest != line {
			if rest = strings.TrimSpace(rest); rest != "" {
				return rest
			}
		}
		if first == "" {
			first = line
		}
	}
	return first
}
