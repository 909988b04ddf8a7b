package apitests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/statusprobe/backend-contract-tests/framework"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Client sends requests to the service under test. Every request is attempted exactly
// once and is bounded by the client timeout.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends a request to baseURL+path. If body is non-nil it is encoded as JSON.
func (c *Client) Do(
	method string,
	path string,
	body interface{},
	headers http.Header,
	logger framework.Logger,
) (*Response, error) {
	if logger == nil {
		logger = framework.NullLogger()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		logger.Printf("%s %s with body: %s", method, path, string(data))
		reqBody = bytes.NewReader(data)
	} else {
		logger.Printf("%s %s", method, path)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	for name, values := range headers {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Printf("%s %s failed: %s", method, path, err)
		return nil, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}
	logger.Printf("%s %s returned HTTP %d: %s", method, path, resp.StatusCode, string(data))

	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: data}, nil
}

// JSON parses the body. Unlike ldvalue.Parse, it reports malformed JSON as an error
// instead of returning a null value.
func (r *Response) JSON() (ldvalue.Value, error) {
	var v ldvalue.Value
	if err := json.Unmarshal(r.Body, &v); err != nil {
		return ldvalue.Null(), fmt.Errorf("malformed JSON in response body: %w", err)
	}
	return v, nil
}

// Snippet returns the body as text, truncated to at most limit runes.
func (r *Response) Snippet(limit int) string {
	return truncate(string(r.Body), limit)
}

// HasHeader reports whether the header is present, even with an empty value.
func (r *Response) HasHeader(name string) bool {
	_, ok := r.Header[http.CanonicalHeaderKey(name)]
	return ok
}

func truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
