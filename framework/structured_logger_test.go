package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestStructuredTestLoggerWritesOneEntryPerEvent(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := NewStructuredTestLogger(zap.New(core))

	runAll(nil, MultiTestLogger{logger},
		namedAction{"good", func(c *Context) {
			c.Check("sub", passing)
			c.Pass("fine")
		}},
		namedAction{"bad", func(c *Context) {
			c.Debug("request sent")
			c.Fail("HTTP 503", "unavailable")
		}},
	)
	require.NoError(t, logger.Sync())

	var messages []string
	for _, e := range logs.All() {
		messages = append(messages, e.Message)
	}
	assert.Equal(t, []string{
		"probe_started", "check_finished", "probe_finished",
		"probe_started", "probe_error", "probe_finished",
	}, messages)

	finished := logs.FilterMessage("probe_finished").All()
	require.Len(t, finished, 2)
	good := finished[0].ContextMap()
	assert.Equal(t, "good", good["probe"])
	assert.Equal(t, true, good["success"])
	bad := finished[1].ContextMap()
	assert.Equal(t, false, bad["success"])
	assert.Equal(t, "HTTP 503", bad["message"])
	assert.Equal(t, "unavailable", bad["detail"])
	assert.Len(t, bad["debug"], 1)
}
