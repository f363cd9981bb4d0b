// Package relay submits contact-form messages to a third-party form-relay
// endpoint. One best-effort POST per call: no retries, no backoff.
package relay

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"folio/internal/jsonutil"
)

// User-facing result strings shown after a submission attempt.
const (
	SuccessMessage = "Message sent successfully! I'll get back to you soon."
	FailureMessage = "Oops! There was a problem sending your message. Please try again."
)

// DefaultTimeout bounds a single relay request. A hung relay must resolve
// into the failure branch rather than wedge the submission state.
const DefaultTimeout = 10 * time.Second

// StatusError reports a response with a non-success HTTP status.
type StatusError struct {
	Code   int
	Detail string // Optional detail extracted from the relay's JSON body
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("relay returned status %d: %s", e.Code, e.Detail)
	}
	return fmt.Sprintf("relay returned status %d", e.Code)
}

// Client sends submissions to a fixed form-relay endpoint.
type Client struct {
	endpoint string
	http     *http.Client
	log      zerolog.Logger
	tracer   oteltrace.Tracer
}

// NewClient creates a relay client for the given endpoint.
func NewClient(endpoint string, log zerolog.Logger) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: DefaultTimeout},
		log:      log.With().Str("component", "relay").Logger(),
		tracer:   otel.Tracer("folio/relay"),
	}
}

// Endpoint returns the configured relay URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Submit validates the submission and, if valid, POSTs it form-encoded with
// an Accept: application/json header. Invalid input never reaches the
// network. A non-2xx response is returned as *StatusError; transport
// failures are returned wrapped.
func (c *Client) Submit(ctx context.Context, sub Submission) error {
	if err := sub.Validate(); err != nil {
		return err
	}

	ctx, span := c.tracer.Start(ctx, "relay.submit",
		oteltrace.WithAttributes(attribute.String("relay.endpoint", c.endpoint)))
	defer span.End()

	form := url.Values{}
	form.Set("name", sub.Name)
	form.Set("email", sub.Email)
	form.Set("message", sub.Message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "relay request failed")
		c.log.Warn().Err(err).Msg("relay request failed")
		return fmt.Errorf("send to relay: %w", err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &StatusError{Code: resp.StatusCode, Detail: responseDetail(resp.Body)}
		span.SetStatus(codes.Error, statusErr.Error())
		c.log.Warn().Int("status", resp.StatusCode).Str("detail", statusErr.Detail).Msg("relay rejected submission")
		return statusErr
	}

	c.log.Info().Str("from", sub.Email).Msg("submission relayed")
	return nil
}

// responseDetail pulls a human-readable message out of the relay's JSON
// error body, if there is one.
func responseDetail(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var m map[string]interface{}
	if err := jsonutil.UnmarshalWithContext(raw, &m, "relay response"); err != nil {
		return ""
	}
	return jsonutil.GetStringOr(m, "message", jsonutil.GetString(m, "error"))
}
