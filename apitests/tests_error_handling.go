package apitests

import (
	"fmt"
	"net/http"

	"github.com/statusprobe/backend-contract-tests/servicedef"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// DoErrorHandlingTests passes if at least one of its two sub-checks passes.
func DoErrorHandlingTests(t *T) {
	passed := 0
	if t.Check("404 Error Handling", doNotFoundCheck) {
		passed++
	}
	if t.Check("Validation Error Handling", doValidationCheck) {
		passed++
	}
	if passed == 0 {
		t.Failf("0/2 error handling checks passed")
	}
	t.Pass("%d/2 error handling checks passed", passed)
}

func doNotFoundCheck(t *T) {
	resp := t.RequireRequest("Request failed", http.MethodGet, servicedef.PathNonexistent, nil, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Failf("Expected 404, got %d", resp.StatusCode)
	}
	t.Pass("Returns proper 404 for invalid endpoints")
}

// doValidationCheck accepts either a validation error or, unless strict validation was
// requested, a successful response.
func doValidationCheck(t *T) {
	payload := ldvalue.ObjectBuild().Set("invalid_field", ldvalue.String("test")).Build()
	resp := t.RequireRequest("Request failed", http.MethodPost, servicedef.PathStatus, payload, nil)
	switch resp.StatusCode {
	case http.StatusUnprocessableEntity, http.StatusBadRequest:
		t.Pass("Proper validation error (HTTP %d)", resp.StatusCode)
	case http.StatusOK:
		if t.Params().StrictValidation {
			t.Fail("Accepted a payload without client_name", t.Snippet(resp))
		}
		t.Pass("Accepts request (lenient validation)")
	default:
		t.Fail(fmt.Sprintf("Unexpected status %d", resp.StatusCode), t.Snippet(resp))
	}
}
