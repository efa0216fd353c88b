package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// ErrorBody is the JSON error envelope returned by the student server.
type ErrorBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// StatusError is returned when the server answers with an unexpected status code.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server status %d", e.Code)
	}
	return fmt.Sprintf("server status %d: %s", e.Code, e.Message)
}

// Client talks to the REST endpoint of the student server.
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

// NewClient creates a client for baseURL (scheme://host:port) authenticated with token.
func NewClient(baseURL, token string) *Client {
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), Token: token, HTTP: http.DefaultClient}
}

// Endpoint joins the REST root with path segments and an optional query.
func (c *Client) Endpoint(query url.Values, segments ...string) string {
	p := c.BaseURL + "/rest"
	for _, s := range segments {
		p += "/" + url.PathEscape(s)
	}
	if len(query) > 0 {
		p += "?" + query.Encode()
	}
	return p
}

// Do sends a request with an optional JSON payload and returns the response with its body read.
func (c *Client) Do(ctx context.Context, method, endpoint string, payload any, header http.Header) (*http.Response, []byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, nil, err
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	hc := c.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, err
	}
	return resp, b, nil
}

// AsStatusError builds a StatusError from a response, using the JSON message when present.
func AsStatusError(resp *http.Response, body []byte) error {
	var eb ErrorBody
	msg := strings.TrimSpace(string(body))
	if json.Unmarshal(body, &eb) == nil && eb.Message != "" {
		msg = eb.Message
	}
	return &StatusError{Code: resp.StatusCode, Message: msg}
}
