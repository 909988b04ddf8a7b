package apitests

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/statusprobe/backend-contract-tests/servicedef"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const endpointClientName = "test_client_backend_verification"

func DoEndpointTests(t *T) {
	checks := []struct {
		name   string
		action func(*T)
	}{
		{"GET /api/ endpoint", doRootEndpointCheck},
		{"GET /api/status endpoint", doStatusListCheck},
		{"POST /api/status endpoint", doStatusCreateCheck},
	}

	passed := 0
	for _, c := range checks {
		if t.Check(c.name, c.action) {
			passed++
		}
	}
	if passed != len(checks) {
		t.Failf("%d/%d endpoint checks passed", passed, len(checks))
	}
	t.Pass("All %d endpoint checks passed", len(checks))
}

func doRootEndpointCheck(t *T) {
	resp := t.RequireRequest("Request failed", http.MethodGet, servicedef.PathRoot, nil, nil)
	t.RequireStatus(resp, http.StatusOK)
	t.Pass("Root endpoint working")
}

func doStatusListCheck(t *T) {
	resp := t.RequireRequest("Request failed", http.MethodGet, servicedef.PathStatus, nil, nil)
	t.RequireStatus(resp, http.StatusOK)
	list := t.RequireJSON(resp, ldvalue.ArrayType, "Response is not a list")
	t.Pass("Returns list with %d items", list.Count())
}

func doStatusCreateCheck(t *T) {
	payload := servicedef.StatusCheckCreate{ClientName: endpointClientName}
	resp := t.RequireRequest("Request failed", http.MethodPost, servicedef.PathStatus, payload, nil)
	t.RequireStatus(resp, http.StatusOK)

	created := t.RequireJSON(resp, ldvalue.ObjectType, "Response is not an object")
	if missing := missingFields(created, servicedef.FieldID, servicedef.FieldClientName, servicedef.FieldTimestamp); len(missing) > 0 {
		t.Fail("Missing required fields", fmt.Sprintf("%s not in %s", strings.Join(missing, ", "), created.JSONString()))
	}
	if name := created.GetByKey(servicedef.FieldClientName).StringValue(); name != endpointClientName {
		t.Fail("Client name mismatch", fmt.Sprintf("sent %q, got %q", endpointClientName, name))
	}
	t.Debug("created status check %s", created.GetByKey(servicedef.FieldID))
	t.Pass("Creates status check correctly")
}

// missingFields returns the names of the given fields that obj does not have.
func missingFields(obj ldvalue.Value, names ...string) []string {
	present := make(map[string]bool)
	for _, k := range obj.Keys() {
		present[k] = true
	}
	var missing []string
	for _, name := range names {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	return missing
}
