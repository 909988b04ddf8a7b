package apitests

import (
	"net/http"

	"github.com/statusprobe/backend-contract-tests/servicedef"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func DoConnectivityTest(t *T) {
	resp := t.RequireRequest("Connection failed", http.MethodGet, servicedef.PathRoot, nil, nil)
	t.RequireStatus(resp, http.StatusOK)

	body := t.RequireJSON(resp, ldvalue.ObjectType, "Unexpected response content")
	if body.GetByKey(servicedef.FieldMessage).StringValue() != servicedef.Greeting {
		t.Fail("Unexpected response content", body.JSONString())
	}
	t.Pass("Server responds correctly")
}
