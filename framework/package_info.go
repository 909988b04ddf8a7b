// Package framework contains the low-level implementation of the probe runner that is
// independent of what the probes actually check.
//
// The general model is:
//
// 1. A run is a fixed, ordered list of named probes. Each probe is executed inside a test
// context which is similar to Go's *testing.T: it accumulates failures, can be failed and
// exited immediately with FailNow, and captures debug output.
//
// 2. The context is also an error boundary. Anything that goes wrong inside a probe,
// including an unexpected panic, becomes a failed TestResult and the run continues with
// the next probe. Exactly one TestResult is recorded per probe, in declaration order.
//
// 3. A probe may run named sub-checks with Check. Sub-checks have their own error boundary
// and are reported to the TestLogger, but they do not produce records of their own; the
// probe decides how their outcomes combine into its verdict.
//
// The domain-specific code that knows what is being tested provides the probe bodies and a
// test API on top of the test context.
package framework
