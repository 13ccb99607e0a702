// Package gateway issues the admin API requests for each curated entity.
//
// Every call is a GET with its fields in the query string. Read calls decode
// a JSON response; mutating calls expect the literal acknowledgement "True"
// (or a JSON body for creations). Network failures, non-200 statuses, the
// literal "False" and undecodable bodies are logged here and returned as a
// *Failure, so callers only ever see a nil error (success) or a Failure
// carrying the reason.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/audiograms/internal/journal"
	"github.com/mesh-intelligence/audiograms/internal/logging"
	"github.com/mesh-intelligence/audiograms/pkg/types"
)

// Admin API endpoints, relative to the configured base URL.
const (
	EndpointReadAnimal         = "edit_animal_metadata"
	EndpointSaveAnimal         = "save_animal"
	EndpointReadExperiment     = "edit_experiment_metadata"
	EndpointSaveExperiment     = "save_experiment"
	EndpointDeleteExperiment   = "delete_experiment"
	EndpointReadDataPoints     = "edit_data_points"
	EndpointCreateDataPoint    = "create_data_point"
	EndpointSaveDataPoint      = "save_data_point"
	EndpointDeleteDataPoint    = "delete_data_point"
	EndpointReadPublication    = "read_publication"
	EndpointSavePublication    = "save_publication"
	EndpointRetrieveSpecies    = "retrieve_species_otl"
	EndpointAddTaxon           = "add_taxon"
	EndpointSpeciesVernacular  = "all_species_vernacular"
	EndpointPublications       = "all_publications"
	EndpointFacilities         = "all_facilities"
	EndpointMeasurementMethods = "all_measurement_methods"
	EndpointToneMethods        = "all_tone_methods"
	EndpointSPLReferences      = "list_spl_reference"
)

// Literal acknowledgements returned by mutating endpoints.
const (
	ackTrue  = "True"
	ackFalse = "False"
)

// HeaderRequestID carries a per-call id so server logs can be matched with
// the local journal.
const HeaderRequestID = "X-Request-ID"

const maxResponseBytes = 8 << 20

// Failure describes a gateway operation that did not succeed. Err wraps one
// of types.ErrRequest, types.ErrRejected, types.ErrDecode or
// types.ErrNotFound.
type Failure struct {
	Op       string
	Endpoint string
	Err      error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s (%s): %v", f.Op, f.Endpoint, f.Err)
}

func (f *Failure) Unwrap() error { return f.Err }

// Recorder receives an entry for every mutating call. *journal.Journal
// implements it.
type Recorder interface {
	Record(ctx context.Context, e journal.Entry) error
}

// Client sends requests to the admin API. It holds connection settings only;
// no per-call state is kept between requests.
type Client struct {
	baseURL    *url.URL
	username   string
	password   string
	timeout    time.Duration
	httpClient *http.Client
	log        *logging.Logger
	recorder   Recorder
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger used for request and failure messages.
func WithLogger(l *logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithRecorder journals every mutating call to r.
func WithRecorder(r Recorder) Option {
	return func(c *Client) { c.recorder = r }
}

// NewClient creates a client for cfg. Missing values take the Config
// defaults; the result must pass Config.Validate.
func NewClient(cfg types.Config, opts ...Option) (*Client, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	c := &Client{
		baseURL:    base,
		username:   cfg.Username,
		password:   cfg.Password,
		timeout:    cfg.Timeout,
		httpClient: &http.Client{},
		log:        logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.log.Debug("admin api client initialized",
		"base_url", base.String(),
		"timeout", cfg.Timeout,
		"basic_auth", cfg.Username != "",
		"journal", c.recorder != nil)
	return c, nil
}

// Animals returns the animal gateway.
func (c *Client) Animals() *Animals { return &Animals{client: c} }

// Experiments returns the experiment gateway.
func (c *Client) Experiments() *Experiments { return &Experiments{client: c} }

// DataPoints returns the data point gateway.
func (c *Client) DataPoints() *DataPoints { return &DataPoints{client: c} }

// Publications returns the publication gateway.
func (c *Client) Publications() *Publications { return &Publications{client: c} }

// Taxonomy returns the taxonomy gateway.
func (c *Client) Taxonomy() *Taxonomy { return &Taxonomy{client: c} }

// References returns the reference lookup gateway.
func (c *Client) References() *References { return &References{client: c} }

// call describes one request.
type call struct {
	op       string
	endpoint string
	entityID string
	params   url.Values
	mutates  bool
}

// endpointURL returns the absolute URL for endpoint with params encoded.
func (c *Client) endpointURL(endpoint string, params url.Values) string {
	u := c.baseURL.JoinPath(endpoint)
	if len(params) > 0 {
		u.RawQuery = params.Encode()
	}
	return u.String()
}

// do sends the request and returns the trimmed response body. A literal
// "False" body is reported as rejected for mutations and not found for reads.
func (c *Client) do(ctx context.Context, cl call) (body []byte, err error) {
	requestID := uuid.NewString()
	start := time.Now()

	defer func() {
		if err != nil {
			err = &Failure{Op: cl.op, Endpoint: cl.endpoint, Err: err}
			c.log.Warn("admin api call failed",
				"op", cl.op,
				"endpoint", cl.endpoint,
				"entity_id", cl.entityID,
				"request_id", requestID,
				"error", err)
		} else {
			c.log.Debug("admin api call",
				"op", cl.op,
				"endpoint", cl.endpoint,
				"entity_id", cl.entityID,
				"request_id", requestID,
				"duration", time.Since(start))
		}
		if cl.mutates {
			c.record(ctx, cl, requestID, err)
		}
	}()

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, c.endpointURL(cl.endpoint, cl.params), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrRequest, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderRequestID, requestID)
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrRequest, err)
	}
	defer resp.Body.Close()

	body, err = io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", types.ErrRequest, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", types.ErrRejected, resp.StatusCode)
	}

	body = bytes.TrimSpace(body)
	if string(body) == ackFalse {
		if cl.mutates {
			return nil, types.ErrRejected
		}
		return nil, types.ErrNotFound
	}
	return body, nil
}

// getJSON performs cl and decodes the body into v.
func (c *Client) getJSON(ctx context.Context, cl call, v any) error {
	body, err := c.do(ctx, cl)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		failure := &Failure{Op: cl.op, Endpoint: cl.endpoint, Err: fmt.Errorf("%w: %v", types.ErrDecode, err)}
		c.log.Warn("admin api response undecodable", "op", cl.op, "endpoint", cl.endpoint, "error", err)
		return failure
	}
	return nil
}

// ack performs a mutating call that must answer "True".
func (c *Client) ack(ctx context.Context, cl call) error {
	body, err := c.do(ctx, cl)
	if err != nil {
		return err
	}
	if string(body) != ackTrue {
		return &Failure{Op: cl.op, Endpoint: cl.endpoint, Err: fmt.Errorf("%w: unexpected acknowledgement %q", types.ErrRejected, truncate(string(body), 64))}
	}
	return nil
}

// record journals a mutating call. Journal failures are logged only; they
// never change the outcome reported to the caller.
func (c *Client) record(ctx context.Context, cl call, requestID string, callErr error) {
	if c.recorder == nil {
		return
	}
	e := journal.Entry{
		RequestID: requestID,
		Operation: cl.op,
		Endpoint:  cl.endpoint,
		EntityID:  cl.entityID,
		OK:        callErr == nil,
	}
	if callErr != nil {
		e.Message = callErr.Error()
	}
	if err := c.recorder.Record(context.WithoutCancel(ctx), e); err != nil {
		c.log.Error("journal write failed", "op", cl.op, "endpoint", cl.endpoint, "error", err)
	}
}

// first returns the row of a one-row array response. An empty array is
// reported as not found.
func first[T any](rows []T, op, endpoint string) (T, error) {
	var zero T
	if len(rows) == 0 {
		return zero, &Failure{Op: op, Endpoint: endpoint, Err: types.ErrNotFound}
	}
	return rows[0], nil
}

// maxIDKey is the column the server uses to report a freshly inserted id.
const maxIDKey = "max(id)"

// insertedID extracts the id from a [{"max(id)": N}] response.
func insertedID(rows []map[string]types.Scalar) (int, error) {
	if len(rows) == 0 {
		return 0, types.ErrDecode
	}
	if resp, ok := rows[0]["response"]; ok && resp.String() == "false" {
		return 0, types.ErrRejected
	}
	v, ok := rows[0][maxIDKey]
	if !ok {
		return 0, fmt.Errorf("%w: missing %q", types.ErrDecode, maxIDKey)
	}
	id, err := v.Int()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", types.ErrDecode, err)
	}
	return id, nil
}

// IsFailure reports whether err came from a gateway call.
func IsFailure(err error) bool {
	var f *Failure
	return errors.As(err, &f)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
