package framework

import (
	"fmt"
	"io"
	"sync"
	"time"
)

const debugTimestampFormat = "2006-01-02 15:04:05.000"

// Logger is the minimal logging interface used for debug output. *log.Logger satisfies it.
type Logger interface {
	Printf(message string, args ...interface{})
}

type discardLogger struct{}

func (discardLogger) Printf(string, ...interface{}) {}

// NullLogger returns a Logger that drops everything.
func NullLogger() Logger { return discardLogger{} }

// CapturedMessage is one line of a probe's debug output, such as a request and the
// status it got back.
type CapturedMessage struct {
	Time    time.Time
	Message string
}

func (m CapturedMessage) String() string {
	return "[" + m.Time.Format(debugTimestampFormat) + "] " + m.Message
}

// CapturedOutput is the debug output of one probe and its sub-checks, in order.
type CapturedOutput []CapturedMessage

// CapturingLogger holds a probe's debug output until the probe has finished, so the
// console logger can decide whether to show it based on the outcome. Sub-checks write
// to the logger of their enclosing probe.
type CapturingLogger struct {
	output CapturedOutput
	lock   sync.Mutex
}

func (l *CapturingLogger) Printf(message string, args ...interface{}) {
	m := CapturedMessage{Time: time.Now(), Message: fmt.Sprintf(message, args...)}
	l.lock.Lock()
	l.output = append(l.output, m)
	l.lock.Unlock()
}

// Output returns a copy of everything logged so far.
func (l *CapturingLogger) Output() CapturedOutput {
	l.lock.Lock()
	defer l.lock.Unlock()
	return append(CapturedOutput(nil), l.output...)
}

// Lines formats each message with its timestamp.
func (output CapturedOutput) Lines() []string {
	lines := make([]string, 0, len(output))
	for _, m := range output {
		lines = append(lines, m.String())
	}
	return lines
}

// Dump writes one line per message to dest, each starting with prefix.
func (output CapturedOutput) Dump(dest io.Writer, prefix string) {
	for _, line := range output.Lines() {
		fmt.Fprintln(dest, prefix+line)
	}
}
