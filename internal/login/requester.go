// Package login submits credentials to an authentication endpoint and
// reports the outcome.
package login

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"loginprobe/pkg/errors"
	"loginprobe/pkg/logger"
	"loginprobe/pkg/validator"
)

// Credentials is the payload posted to the login endpoint.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Response is the fully read reply from the login endpoint.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       string
}

// TransportError is any failure to complete the HTTP exchange before a
// response was obtained.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	if e.Err == nil {
		return errors.ErrTransport.Error()
	}
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is makes every TransportError match errors.ErrTransport.
func (e *TransportError) Is(target error) bool {
	return target == errors.ErrTransport
}

// Requester posts credentials once per call. It never retries.
type Requester struct {
	client    *http.Client
	validator *validator.Validator
	logger    logger.Logger
}

// NewRequester creates a new Requester. Nil arguments are replaced with a
// plain http.Client, a fresh validator and a no-op logger.
func NewRequester(client *http.Client, val *validator.Validator, log logger.Logger) *Requester {
	if client == nil {
		client = &http.Client{}
	}
	if val == nil {
		val = validator.New()
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Requester{
		client:    client,
		validator: val,
		logger:    log,
	}
}

// AttemptLogin posts creds as JSON to url and blocks until the response
// body has been read or the exchange fails.
func (r *Requester) AttemptLogin(ctx context.Context, url string, creds Credentials) (*Response, error) {
	attemptID := uuid.New().String()

	if err := r.validator.Validate(&creds); err != nil {
		r.logger.Error("Credentials rejected", map[string]interface{}{
			"attempt_id": attemptID,
			"error":      err.Error(),
		})
		return nil, errors.Wrap(errors.ErrInvalidCredentials, err.Error())
	}

	if err := r.validator.Var(url, "http_url"); err != nil {
		r.logger.Error("Login URL rejected", map[string]interface{}{
			"attempt_id": attemptID,
			"url":        url,
		})
		return nil, &TransportError{URL: url, Err: fmt.Errorf("%w: %q", errors.ErrInvalidURL, url)}
	}

	payload, err := json.Marshal(creds)
	if err != nil {
		return nil, errors.Wrap(err, "encode credentials")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	r.logger.Debug("Sending login request", map[string]interface{}{
		"attempt_id": attemptID,
		"url":        url,
		"username":   creds.Username,
	})

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Warn("Login request failed", map[string]interface{}{
			"attempt_id": attemptID,
			"url":        url,
			"error":      err.Error(),
		})
		return nil, &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		r.logger.Warn("Reading login response failed", map[string]interface{}{
			"attempt_id":  attemptID,
			"status_code": resp.StatusCode,
			"error":       err.Error(),
		})
		return nil, &TransportError{URL: url, Err: err}
	}

	r.logger.Debug("Login response received", map[string]interface{}{
		"attempt_id":  attemptID,
		"status_code": resp.StatusCode,
		"bytes":       len(body),
	})

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       string(body),
	}, nil
}

// Report prints three lines for a response or a single Error line.
func Report(w io.Writer, resp *Response, err error) {
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(w, "Status Code: %d\n", resp.StatusCode)
	fmt.Fprintf(w, "Response Headers: %v\n", resp.Header)
	fmt.Fprintf(w, "Response Body: %s\n", resp.Body)
}
