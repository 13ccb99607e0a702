package gateway

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/audiograms/internal/journal"
	"github.com/mesh-intelligence/audiograms/pkg/types"
)

const testBaseURL = "http://admin.test/admin/v1/"

// endpoint returns the mock URL for an endpoint. Responders registered
// without a query string match any query.
func endpoint(name string) string {
	return testBaseURL + name
}

type fakeRecorder struct {
	mu      sync.Mutex
	entries []journal.Entry
	err     error
}

func (r *fakeRecorder) Record(_ context.Context, e journal.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
	return r.err
}

func newTestClient(t *testing.T, opts ...Option) (*Client, *httpmock.MockTransport) {
	t.Helper()
	transport := httpmock.NewMockTransport()
	opts = append([]Option{WithHTTPClient(&http.Client{Transport: transport})}, opts...)
	c, err := NewClient(types.Config{
		BaseURL:  testBaseURL,
		Username: "curator",
		Password: "secret",
	}, opts...)
	require.NoError(t, err)
	return c, transport
}

// capture registers a responder for name that stores the last request and
// answers status/body.
func capture(transport *httpmock.MockTransport, name string, status int, body string) *http.Request {
	req := &http.Request{}
	transport.RegisterResponder(http.MethodGet, endpoint(name), func(r *http.Request) (*http.Response, error) {
		*req = *r
		return httpmock.NewStringResponse(status, body), nil
	})
	return req
}
