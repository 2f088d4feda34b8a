// Package coordtrans provides a client for the coordinate
// transformation service, which reads source X/Y trace header words out
// of SEG-Y files and reprojects them to WGS84 latitude/longitude.
package coordtrans

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rotisserie/eris"
)

// FileConfig tells the service where in one file's trace headers the
// source coordinates live. Byte positions and numeric formats come from
// the user's header inspection; ScalarField is the standard SEG-Y
// coordinate scalar at byte 71.
type FileConfig struct {
	SeismicID   string  `json:"seismic_id"`
	FilePath    string  `json:"file_path"`
	SrcXField   *int    `json:"srcx_field,omitempty"`
	SrcYField   *int    `json:"srcy_field,omitempty"`
	SrcXFormat  *string `json:"srcx_format,omitempty"`
	SrcYFormat  *string `json:"srcy_format,omitempty"`
	ScalarField int     `json:"scalar_field"`
}

// Coordinate is one transformed WGS84 sample.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// FileResult carries the transformed track for one file, correlated
// back by seismic identifier.
type FileResult struct {
	SeismicID   string       `json:"seismic_id"`
	Coordinates []Coordinate `json:"coordinates"`
}

// BatchResult is the service response for a whole batch.
type BatchResult struct {
	Files []FileResult `json:"files"`
}

// Client transforms trace-header coordinates for batches of SEG-Y files.
type Client interface {
	// TransformBatch reprojects every configured file in one call. The
	// CRS is given either by SRID or by a raw proj4 string; the service
	// prefers the SRID when both are set.
	TransformBatch(ctx context.Context, configs []FileConfig, srid int, proj4 string) (*BatchResult, error)
}

// Option configures the transform client.
type Option func(*client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-batch deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *client) {
		c.timeout = d
	}
}

type client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

// NewClient creates a transform service client for the given base URL.
func NewClient(baseURL string, opts ...Option) Client {
	c := &client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Minute},
		timeout:    10 * time.Minute,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type batchRequest struct {
	Files []FileConfig `json:"files"`
	SRID  int          `json:"srid,omitempty"`
	Proj4 string       `json:"proj4,omitempty"`
}

type batchError struct {
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *client) TransformBatch(ctx context.Context, configs []FileConfig, srid int, proj4 string) (*BatchResult, error) {
	if len(configs) == 0 {
		return &BatchResult{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	payload, err := json.Marshal(batchRequest{Files: configs, SRID: srid, Proj4: proj4})
	if err != nil {
		return nil, eris.Wrap(err, "coordtrans: marshal request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transform", bytes.NewReader(payload))
	if err != nil {
		return nil, eris.Wrap(err, "coordtrans: build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "coordtrans: POST /transform")
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "coordtrans: read body")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("coordtrans: transform returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var be batchError
	if err := json.Unmarshal(body, &be); err == nil && be.Error != nil {
		return nil, eris.Errorf("coordtrans: transform failed: %s", be.Error.Message)
	}

	var out BatchResult
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, eris.Wrap(err, "coordtrans: parse response")
	}
	return &out, nil
}
