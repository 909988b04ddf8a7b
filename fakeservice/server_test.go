package fakeservice

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statusprobe/backend-contract-tests/servicedef"
)

func newTestServer(t *testing.T, opts Options) (*Server, *httptest.Server) {
	s := New(opts, nil)
	s.now = func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }
	hs := httptest.NewServer(s.Router())
	t.Cleanup(hs.Close)
	return s, hs
}

func postStatus(t *testing.T, url string, body string) *http.Response {
	resp, err := http.Post(url+"/api/status", "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestRootReturnsGreeting(t *testing.T) {
	_, hs := newTestServer(t, Options{})
	resp, err := http.Get(hs.URL + "/api/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body servicedef.RootResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Hello World", body.Message)
}

func TestCreateThenList(t *testing.T) {
	s, hs := newTestServer(t, Options{})

	resp := postStatus(t, hs.URL, `{"client_name": "x"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var created servicedef.StatusCheck
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "x", created.ClientName)
	assert.Equal(t, "2024-01-01T00:00:00", created.Timestamp)

	list, err := http.Get(hs.URL + "/api/status")
	require.NoError(t, err)
	defer list.Body.Close()
	var checks []servicedef.StatusCheck
	require.NoError(t, json.NewDecoder(list.Body).Decode(&checks))
	assert.Equal(t, []servicedef.StatusCheck{created}, checks)
	assert.Equal(t, checks, s.Store().List())
}

func TestEmptyListIsArray(t *testing.T) {
	_, hs := newTestServer(t, Options{})
	resp, err := http.Get(hs.URL + "/api/status")
	require.NoError(t, err)
	defer resp.Body.Close()
	var raw json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	assert.Equal(t, "[]", string(raw))
}

func TestValidation(t *testing.T) {
	_, lenient := newTestServer(t, Options{})
	assert.Equal(t, http.StatusOK, postStatus(t, lenient.URL, `{"invalid_field": "test"}`).StatusCode)
	assert.Equal(t, http.StatusUnprocessableEntity, postStatus(t, lenient.URL, `not json`).StatusCode)

	_, strict := newTestServer(t, Options{StrictValidation: true})
	assert.Equal(t, http.StatusUnprocessableEntity, postStatus(t, strict.URL, `{"invalid_field": "test"}`).StatusCode)
}

func TestDropWrites(t *testing.T) {
	s, hs := newTestServer(t, Options{DropWrites: true})
	assert.Equal(t, http.StatusOK, postStatus(t, hs.URL, `{"client_name": "x"}`).StatusCode)
	assert.Empty(t, s.Store().List())
}

func TestNotFound(t *testing.T) {
	_, hs := newTestServer(t, Options{})
	resp, err := http.Get(hs.URL + "/api/nonexistent")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCORS(t *testing.T) {
	get := func(url string) *http.Response {
		req, _ := http.NewRequest(http.MethodGet, url+"/api/", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		return resp
	}

	_, enabled := newTestServer(t, Options{})
	assert.Equal(t, "*", get(enabled.URL).Header.Get("Access-Control-Allow-Origin"))

	_, disabled := newTestServer(t, Options{DisableCORS: true})
	resp := get(disabled.URL)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}
