package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/statusprobe/backend-contract-tests/framework"
)

type ConsoleTestLogger struct {
	Out                  io.Writer
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleTestLogger) TestStarted(id framework.TestID) {
	fmt.Fprintf(c.Out, "\nRunning %s test...\n", id)
}

func (c *ConsoleTestLogger) TestError(id framework.TestID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Fprintf(c.Out, "  %s\n", line)
	}
}

func (c *ConsoleTestLogger) TestFinished(id framework.TestID, result framework.TestResult, debugOutput framework.CapturedOutput) {
	c.printResult(id, result, "")
	if len(debugOutput) > 0 &&
		((result.Failed && c.DebugOutputOnFailure) || (!result.Failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(c.Out, "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(id framework.TestID, reason string) {
	if reason == "" {
		fmt.Fprintf(c.Out, "  SKIPPED: %s\n", id)
	} else {
		fmt.Fprintf(c.Out, "  SKIPPED: %s (%s)\n", id, reason)
	}
}

func (c *ConsoleTestLogger) CheckFinished(id framework.TestID, result framework.TestResult) {
	c.printResult(id, result, "  ")
}

func (c *ConsoleTestLogger) printResult(id framework.TestID, result framework.TestResult, indent string) {
	fmt.Fprintf(c.Out, "%s%s %s: %s\n", indent, framework.Glyph(result), id.Name(), result.Message)
	if result.Detail != "" {
		fmt.Fprintf(c.Out, "%s   Details: %s\n", indent, result.Detail)
	}
}
