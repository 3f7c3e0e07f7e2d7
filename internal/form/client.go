package form

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// maxResponseBytes caps how much of an endpoint response is read.
const maxResponseBytes = 64 << 10

// ConfirmYes is the confirmation value sent when the user agrees to
// overwrite an existing record.
const ConfirmYes = "Yes"

// Payload is the JSON body sent to the calculation endpoint.
type Payload struct {
	SGPA1        float64 `json:"sgpa1"`
	SGPA2        float64 `json:"sgpa2"`
	Credit1      float64 `json:"credit1"`
	Credit2      float64 `json:"credit2"`
	Name         string  `json:"name"`
	Roll         string  `json:"roll"`
	Number       string  `json:"number"`
	Semester     string  `json:"semester"`
	Confirmation string  `json:"confirmation,omitempty"`
}

// Response is the JSON body returned by the calculation endpoint.
type Response struct {
	CGPA    DisplayValue `json:"cgpa"`
	Message string       `json:"message,omitempty"`
	Exists  bool         `json:"exists,omitempty"`
	Name    string       `json:"name,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// DisplayValue holds a JSON number or string exactly as it should be shown.
// Numbers keep their literal form, so 8.7 renders as "8.7".
type DisplayValue string

func (d *DisplayValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*d = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*d = DisplayValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("cgpa must be a number or string: %w", err)
	}
	*d = DisplayValue(n.String())
	return nil
}

// APIError is returned when the endpoint answers with a non-success status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("calculation endpoint returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("calculation endpoint returned status %d: %s", e.StatusCode, e.Message)
}

// Calculator performs one remote calculation.
type Calculator interface {
	Calculate(ctx context.Context, p Payload) (Response, error)
}

// Client calls the calculation endpoint over HTTP.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the default traced HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the request timeout on a copy of the current HTTP
// client, so a shared client passed to WithHTTPClient is left untouched.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		hc := *c.httpClient
		hc.Timeout = d
		c.httpClient = &hc
	}
}

// NewClient returns a Client posting to endpoint. Requests are traced with
// otelhttp; the trace context is propagated once a tracer provider and
// propagator are installed, as observability.InitTracing does.
func NewClient(endpoint string, opts ...ClientOption) *Client {
	c := &Client{
		endpoint: strings.TrimSpace(endpoint),
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Calculate(ctx context.Context, p Payload) (Response, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return Response{}, fmt.Errorf("encoding payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Response{}, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("calling calculation endpoint: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return Response{}, fmt.Errorf("reading response: %w", err)
	}
	if len(raw) > maxResponseBytes {
		return Response{}, fmt.Errorf("response exceeds %d bytes", maxResponseBytes)
	}

	var out Response
	decodeErr := json.Unmarshal(raw, &out)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: out.Error}
		if decodeErr != nil {
			apiErr.Message = strings.TrimSpace(string(raw))
		}
		return Response{}, apiErr
	}

	if decodeErr != nil {
		return Response{}, fmt.Errorf("decoding response: %w", decodeErr)
	}
	return out, nil
}

// IsAPIError reports whether err carries a non-success endpoint response.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}
