// Package apitests contains the probes run against the service under test, and the
// test API they are written with.
//
// Each probe is a function taking a *T. A probe fails by calling one of the Fail or
// Require methods on T, or by letting an assertion from the testify assert/require
// packages fail with the *T passed as the TestingT. Whatever happens inside a probe,
// including a panic, is contained and recorded as that probe's result.
package apitests
