package apitests

import (
	"encoding/hex"
	"fmt"
	"net/http"

	"github.com/statusprobe/backend-contract-tests/servicedef"

	uuid "github.com/nu7hatch/gouuid"
	"github.com/tidwall/gjson"
)

const persistenceNamePrefix = "mongodb_test_"

// DoPersistenceTest writes a record with a name unique to this run and reads the full
// list back to find it.
func DoPersistenceTest(t *T) {
	name, err := uniqueClientName()
	if err != nil {
		t.Fail("Could not generate a unique client name", err.Error())
	}
	t.Debug("using client name %s", name)

	created, err := t.Request(http.MethodPost, servicedef.PathStatus, servicedef.StatusCheckCreate{ClientName: name}, nil)
	if err != nil {
		t.Fail("Failed to create test data", err.Error())
	}
	if created.StatusCode != http.StatusOK {
		t.Fail("Failed to create test data", fmt.Sprintf("HTTP %d: %s", created.StatusCode, t.Snippet(created)))
	}
	if id := gjson.GetBytes(created.Body, servicedef.FieldID); id.Exists() {
		t.Debug("created record has id %s", id.String())
	}

	list, err := t.Request(http.MethodGet, servicedef.PathStatus, nil, nil)
	if err != nil {
		t.Fail("Failed to retrieve data", err.Error())
	}
	if list.StatusCode != http.StatusOK {
		t.Fail("Failed to retrieve data", fmt.Sprintf("HTTP %d: %s", list.StatusCode, t.Snippet(list)))
	}
	if !gjson.ValidBytes(list.Body) || !gjson.ParseBytes(list.Body).IsArray() {
		t.Fail("Response is not a list", t.Snippet(list))
	}

	for _, n := range gjson.GetBytes(list.Body, "#."+servicedef.FieldClientName).Array() {
		if n.String() == name {
			t.Pass("Data persisted successfully")
			return
		}
	}
	t.Fail("Test data not found in database", name)
}

// uniqueClientName returns the name prefix followed by 8 random hex digits.
func uniqueClientName() (string, error) {
	u, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	return persistenceNamePrefix + hex.EncodeToString(u[:4]), nil
}
