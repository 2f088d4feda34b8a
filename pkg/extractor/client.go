// Package extractor provides a client for the metadata extraction
// gateway, the external backend that parses SEG-Y textual headers and
// LAS sections into structured metadata.
package extractor

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"

	"github.com/edafy/ingest-cli/internal/model"
	"github.com/edafy/ingest-cli/internal/resilience"
)

// Client extracts structured metadata from raw geoscience files.
type Client interface {
	// ExtractSegy parses one SEG-Y file into its metadata record.
	ExtractSegy(ctx context.Context, filePath string) (*model.SegyRecord, error)

	// ExtractLas parses one LAS well-log file into its metadata record.
	ExtractLas(ctx context.Context, filePath string) (*model.LasRecord, error)

	// ExtractOther derives filesystem-level metadata for a document.
	ExtractOther(ctx context.Context, filePath string) (*model.OtherRecord, error)
}

// Option configures the extractor client.
type Option func(*client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.httpClient = hc
	}
}

// WithRateLimit sets the requests-per-second limit on gateway calls.
func WithRateLimit(rps float64) Option {
	return func(c *client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), int(rps))
	}
}

// WithTimeout sets the per-call deadline. The gateway parses whole
// files, so the default is generous.
func WithTimeout(d time.Duration) Option {
	return func(c *client) {
		c.timeout = d
	}
}

// WithCircuitBreaker replaces the default breaker config. The breaker
// trips on transport failures and transient gateway statuses; a clean
// response reporting a bad file does not count against it.
func WithCircuitBreaker(cfg resilience.CircuitBreakerConfig) Option {
	return func(c *client) {
		if cfg.ShouldTrip == nil {
			cfg.ShouldTrip = resilience.IsTransient
		}
		c.breaker = resilience.NewCircuitBreaker(cfg)
	}
}

type client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	timeout    time.Duration
	breaker    *resilience.CircuitBreaker
}

// NewClient creates an extraction gateway client for the given base URL.
func NewClient(baseURL string, opts ...Option) Client {
	c := &client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 5 * time.Minute},
		limiter:    rate.NewLimiter(10, 10),
		timeout:    5 * time.Minute,
		breaker:    resilience.NewCircuitBreaker(defaultBreakerConfig()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func defaultBreakerConfig() resilience.CircuitBreakerConfig {
	cfg := resilience.DefaultCircuitBreakerConfig()
	cfg.ShouldTrip = resilience.IsTransient
	return cfg
}

type extractRequest struct {
	FilePath string `json:"file_path"`
}

// gatewayError is the discriminated error half of a gateway response.
// A 200 with a populated error object still means the extraction
// failed; the body never carries both halves.
type gatewayError struct {
	Error *struct {
		Message string `json:"message"`
		Code    string `json:"code,omitempty"`
	} `json:"error"`
}

func (c *client) post(ctx context.Context, path, filePath string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return eris.Wrap(err, "extractor: rate limit")
	}
	return c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.doPost(ctx, path, filePath, out)
	})
}

func (c *client) doPost(ctx context.Context, path, filePath string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	payload, err := json.Marshal(extractRequest{FilePath: filePath})
	if err != nil {
		return eris.Wrap(err, "extractor: marshal request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return eris.Wrap(err, "extractor: build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return eris.Wrapf(err, "extractor: POST %s", path)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return eris.Wrap(err, "extractor: read body")
	}
	if resp.StatusCode != http.StatusOK {
		err := eris.Errorf("extractor: %s returned status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
		if resilience.IsTransientHTTPStatus(resp.StatusCode) {
			return resilience.NewTransientError(err, resp.StatusCode)
		}
		return err
	}

	var ge gatewayError
	if err := json.Unmarshal(body, &ge); err == nil && ge.Error != nil {
		return eris.Errorf("extractor: %s failed: %s", path, ge.Error.Message)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return eris.Wrapf(err, "extractor: parse %s response", path)
	}
	return nil
}

func (c *client) ExtractSegy(ctx context.Context, filePath string) (*model.SegyRecord, error) {
	var rec model.SegyRecord
	if err := c.post(ctx, "/extract/segy", filePath, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *client) ExtractLas(ctx context.Context, filePath string) (*model.LasRecord, error) {
	var rec model.LasRecord
	if err := c.post(ctx, "/extract/las", filePath, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *client) ExtractOther(ctx context.Context, filePath string) (*model.OtherRecord, error) {
	var rec model.OtherRecord
	if err := c.post(ctx, "/extract/others", filePath, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}
