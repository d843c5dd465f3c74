package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/dixieflatline76/Wiggle/pkg/picker"
)

// Form field names expected by the GIF service.
const (
	ImageField  = "image"
	PointsField = "points"
)

// maxResponseSize bounds how much of a response body is read.
const maxResponseSize = 256 << 20

// maxErrorBody bounds how much of an error body is kept in a StatusError.
const maxErrorBody = 4 << 10

var (
	// ErrNoEndpoint is returned when no service URL is configured.
	ErrNoEndpoint = errors.New("no GIF service endpoint configured")
	// ErrNoImage is returned when the request carries no image data.
	ErrNoImage = errors.New("no image to submit")
	// ErrNotGIF is returned when the service answers with something other than a GIF.
	ErrNotGIF = errors.New("response is not a GIF")
)

// StatusError reports a non-2xx answer from the service.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("GIF service returned %d %s", e.Code, http.StatusText(e.Code))
	}
	return fmt.Sprintf("GIF service returned %d %s: %s", e.Code, http.StatusText(e.Code), e.Body)
}

// Settings configures a Client.
type Settings struct {
	Endpoint    string
	FrameOffset int
	Timeout     time.Duration
	// Interval is the minimum spacing between two submissions. Zero disables spacing.
	Interval  time.Duration
	UserAgent string
}

// Request is one submission.
type Request struct {
	FileName    string
	ContentType string
	Data        []byte
	Selection   picker.Selection
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Its transport is still
// wrapped to add the User-Agent and request ID headers.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// Client submits selections to the GIF service. It is safe for concurrent use.
type Client struct {
	settings Settings
	http     *http.Client
	limiter  *rate.Limiter
}

// NewClient creates a Client for the given settings.
func NewClient(cfg Settings, opts ...Option) *Client {
	c := &Client{
		settings: cfg,
		http:     &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}

	hc := *c.http
	hc.Transport = &headerTransport{RoundTripper: c.http.Transport, UserAgent: cfg.UserAgent}
	c.http = &hc

	limit := rate.Inf
	if cfg.Interval > 0 {
		limit = rate.Every(cfg.Interval)
	}
	c.limiter = rate.NewLimiter(limit, 1)
	return c
}

// Settings returns the settings the client was built with.
func (c *Client) Settings() Settings {
	return c.settings
}

// Submit uploads the image with its normalised points and returns the GIF.
// It blocks while an earlier submission is still inside the minimum interval.
func (c *Client) Submit(ctx context.Context, req Request) (*Result, error) {
	if c.settings.Endpoint == "" {
		return nil, ErrNoEndpoint
	}
	if len(req.Data) == 0 {
		return nil, ErrNoImage
	}
	points, err := Normalize(req.Selection, c.settings.FrameOffset)
	if err != nil {
		return nil, err
	}

	body, contentType, err := encodeForm(req, points)
	if err != nil {
		return nil, err
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting to submit: %w", err)
	}

	if c.settings.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.settings.Timeout)
		defer cancel()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.settings.Endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	requestID := uuid.NewString()
	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set("Accept", "image/gif")
	httpReq.Header.Set(RequestIDHeader, requestID)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	return decodeResult(requestID, data)
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// encodeForm builds the multipart body: the original file bytes under
// ImageField and the points as a JSON array under PointsField.
func encodeForm(req Request, points []Point) (io.Reader, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	name := req.FileName
	if name == "" {
		name = "image"
	}
	ct := req.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		ImageField, quoteEscaper.Replace(name)))
	h.Set("Content-Type", ct)
	part, err := mw.CreatePart(h)
	if err != nil {
		return nil, "", fmt.Errorf("creating image part: %w", err)
	}
	if _, err := part.Write(req.Data); err != nil {
		return nil, "", fmt.Errorf("writing image part: %w", err)
	}

	encoded, err := json.Marshal(points)
	if err != nil {
		return nil, "", fmt.Errorf("encoding points: %w", err)
	}
	if err := mw.WriteField(PointsField, string(encoded)); err != nil {
		return nil, "", fmt.Errorf("writing points: %w", err)
	}

	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("closing form: %w", err)
	}
	return &buf, mw.FormDataContentType(), nil
}
