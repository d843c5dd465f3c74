package util

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dixieflatline76/Wiggle/config"
)

// releaseTransport answers every request with the same status and body and
// remembers what it was asked.
type releaseTransport struct {
	status   int
	body     string
	requests []*http.Request
}

func (rt *releaseTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	rt.requests = append(rt.requests, req)
	return &http.Response{
		StatusCode: rt.status,
		Body:       io.NopCloser(bytes.NewBufferString(rt.body)),
		Header:     make(http.Header),
		Request:    req,
	}, nil
}

func newTestChecker(rt *releaseTransport) *UpdateChecker {
	return NewUpdateChecker(&http.Client{Transport: rt})
}

func TestUpdateCheckerCheck(t *testing.T) {
	originalVersion := config.AppVersion
	defer func() { config.AppVersion = originalVersion }()

	tests := []struct {
		name            string
		currentVersion  string
		responseBody    string
		statusCode      int
		expectUpdate    bool
		expectError     bool
		expectedVersion string
	}{
		{
			name:            "Update Available",
			currentVersion:  "0.1.0",
			responseBody:    `{"tag_name": "v0.2.0", "html_url": "http://release", "body": " notes\n"}`,
			statusCode:      200,
			expectUpdate:    true,
			expectedVersion: "v0.2.0",
		},
		{
			name:            "No Update Available",
			currentVersion:  "v0.2.0",
			responseBody:    `{"tag_name": "0.2.0", "html_url": "http://release", "body": "notes"}`,
			statusCode:      200,
			expectedVersion: "v0.2.0",
		},
		{
			name:            "Newer Local Version",
			currentVersion:  "v1.0.0",
			responseBody:    `{"tag_name": "v0.2.0", "html_url": "http://release", "body": "notes"}`,
			statusCode:      200,
			expectedVersion: "v0.2.0",
		},
		{
			name:            "Unparseable Tag",
			currentVersion:  "v0.1.0",
			responseBody:    `{"tag_name": "nightly", "html_url": "http://release", "body": "notes"}`,
			statusCode:      200,
			expectedVersion: "vnightly",
		},
		{
			name:            "Development Build",
			currentVersion:  "dev",
			responseBody:    `{"tag_name": "v0.2.0", "html_url": "http://release", "body": "notes"}`,
			statusCode:      200,
			expectedVersion: "v0.2.0",
		},
		{
			name:           "API Error",
			currentVersion: "v0.1.0",
			responseBody:   `{"message": "Not Found"}`,
			statusCode:     404,
			expectError:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config.AppVersion = tt.currentVersion
			rt := &releaseTransport{status: tt.statusCode, body: tt.responseBody}

			result, err := newTestChecker(rt).Check(context.Background())

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectUpdate, result.UpdateAvailable)
			assert.Equal(t, tt.expectedVersion, result.LatestVersion)
			assert.Equal(t, "http://release", result.ReleaseURL)
			assert.Equal(t, "notes", result.ReleaseNotes)

			require.Len(t, rt.requests, 1)
			assert.Equal(t, "/repos/dixieflatline76/Wiggle/releases/latest", rt.requests[0].URL.Path)
			assert.Equal(t, config.UserAgent(), rt.requests[0].Header.Get("User-Agent"))
		})
	}
}

func TestUpdateCheckerCachesSuccess(t *testing.T) {
	rt := &releaseTransport{status: 200, body: `{"tag_name": "v9.0.0", "html_url": "http://release"}`}
	c := newTestChecker(rt)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	first, err := c.Check(context.Background())
	require.NoError(t, err)

	now = now.Add(c.TTL - time.Second)
	second, err := c.Check(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Len(t, rt.requests, 1)

	now = now.Add(2 * time.Second)
	_, err = c.Check(context.Background())
	require.NoError(t, err)
	assert.Len(t, rt.requests, 2, "stale result is refreshed")
}

func TestUpdateCheckerDoesNotCacheFailures(t *testing.T) {
	rt := &releaseTransport{status: 500, body: `{"message": "boom"}`}
	c := newTestChecker(rt)

	_, err := c.Check(context.Background())
	require.Error(t, err)

	rt.status, rt.body = 200, `{"tag_name": "v0.0.1"}`
	result, err := c.Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v0.0.1", result.LatestVersion)
	assert.Len(t, rt.requests, 2)
}
