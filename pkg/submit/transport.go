package submit

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestIDHeader carries the per-submission ID so service logs can be matched to ours.
const RequestIDHeader = "X-Request-ID"

// headerTransport wraps an http.RoundTripper and stamps the User-Agent and
// request ID on every outgoing request.
type headerTransport struct {
	http.RoundTripper
	UserAgent string
}

// RoundTrip executes a single HTTP transaction with the extra headers set.
func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	cloned := req.Clone(req.Context())
	if t.UserAgent != "" {
		cloned.Header.Set("User-Agent", t.UserAgent)
	}
	if cloned.Header.Get(RequestIDHeader) == "" {
		cloned.Header.Set(RequestIDHeader, uuid.NewString())
	}

	base := t.RoundTripper
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(cloned)
}
