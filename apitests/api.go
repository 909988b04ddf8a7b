package apitests

import (
	"fmt"
	"net/http"

	"github.com/statusprobe/backend-contract-tests/framework"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// SuiteParams are the settings shared by all probes in a run.
type SuiteParams struct {
	// Origin is sent in the Origin header of the cross-origin fallback request.
	Origin string

	// StrictValidation makes the Error Handling probe reject a service that accepts a
	// status payload without client_name.
	StrictValidation bool

	// DetailLimit is the maximum length of response text copied into a failure detail.
	// Zero means no limit.
	DetailLimit int
}

// T represents a probe or a sub-check in our test suite.
//
// It implements the same basic functionality as Go's testing.T, but in an environment that
// is outside of the Go test runner. Those features are provided by our lower-level
// framework package. It also carries the client for the service under test, and has
// helpers that fail the probe with a short message and a detail string when a request or
// a response does not meet expectations.
type T struct {
	context *framework.Context
	client  *Client
	params  SuiteParams
}

func newT(context *framework.Context, client *Client, params SuiteParams) *T {
	return &T{context: context, client: client, params: params}
}

// Errorf is called by assertions to log a test failure. It does not cause an immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately exit.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Fail fails the probe with a short message and an optional detail, and exits it.
func (t *T) Fail(message, detail string) {
	t.context.Fail(message, detail)
}

// Failf is like Fail with a formatted message and no detail.
func (t *T) Failf(format string, args ...interface{}) {
	t.context.Fail(fmt.Sprintf(format, args...), "")
}

// Pass sets the message reported if the probe does not fail.
func (t *T) Pass(format string, args ...interface{}) {
	t.context.Pass(fmt.Sprintf(format, args...))
}

// Check runs a named sub-check and returns true if it passed. A failing sub-check does not
// fail this probe; the probe decides how sub-check outcomes combine.
func (t *T) Check(name string, action func(*T)) bool {
	return t.context.Check(name, func(c *framework.Context) {
		action(newT(c, t.client, t.params))
	})
}

// Debug logs some debug output for the probe. It is shown at the end of the probe if debug
// output is enabled.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

func (t *T) Params() SuiteParams {
	return t.params
}

// Request sends a request and returns the response or the transport error, without
// failing the probe.
func (t *T) Request(method, path string, body interface{}, headers http.Header) (*Response, error) {
	return t.client.Do(method, path, body, headers, t.context.DebugLogger())
}

// RequireRequest is like Request, but fails the probe with failMessage if the request
// could not be completed.
func (t *T) RequireRequest(failMessage, method, path string, body interface{}, headers http.Header) *Response {
	resp, err := t.Request(method, path, body, headers)
	if err != nil {
		t.Fail(failMessage, err.Error())
	}
	return resp
}

// RequireStatus fails the probe with "HTTP <status>" unless the response has the
// expected status.
func (t *T) RequireStatus(resp *Response, expected int) {
	if resp.StatusCode != expected {
		t.Fail(fmt.Sprintf("HTTP %d", resp.StatusCode), t.Snippet(resp))
	}
}

// RequireJSON fails the probe unless the body is well-formed JSON of the given type.
func (t *T) RequireJSON(resp *Response, valueType ldvalue.ValueType, failMessage string) ldvalue.Value {
	value, err := resp.JSON()
	if err != nil {
		t.Fail(failMessage, t.Snippet(resp))
	}
	if value.Type() != valueType {
		t.Fail(failMessage, t.Snippet(resp))
	}
	return value
}

// Snippet returns the response body truncated to the detail limit.
func (t *T) Snippet(resp *Response) string {
	return resp.Snippet(t.params.DetailLimit)
}
