package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
)

// transportKind classifies a transport-level failure so the right terminal
// error can be raised once the retry budget is exhausted.
type transportKind int

const (
	transportOther transportKind = iota
	transportTimeout
	transportConnection
)

func classifyTransport(err error) transportKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return transportTimeout
	}
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return transportTimeout
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return transportConnection
	}
	var operr *net.OpError
	if errors.As(err, &operr) && operr.Op == "dial" {
		return transportConnection
	}
	return transportOther
}

// attemptOutcome is the result-or-error union produced by one attempt.
// Exactly one of data, apiErr and transportErr is set.
type attemptOutcome struct {
	data         json.RawMessage
	apiErr       error // terminal, never retried
	transportErr error // retried while attempts remain
}

// doRequest performs one logical (method, endpoint, body, params) operation
// against the configured base URL. Transport failures are retried up to the
// configured attempt count with exponential backoff; responses with status
// >= 400 are mapped to typed errors and never retried.
func (c *Client) doRequest(ctx context.Context, method, endpoint string, body any, params url.Values) (json.RawMessage, error) {
	reqURL := c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, &RequestError{Message: "encode request body", Err: err}
		}
	}

	var lastErr error
	for attempt := 0; attempt < c.retryAttempts; attempt++ {
		if attempt > 0 {
			delay := c.retryBackoff * (1 << (attempt - 1))
			c.log.WithFields(logrus.Fields{
				"method":  method,
				"url":     reqURL,
				"attempt": attempt,
				"delay":   delay,
			}).Debug("retrying request")
			if err := c.sleep(ctx, delay); err != nil {
				return nil, err
			}
		}

		outcome := c.attempt(ctx, method, reqURL, payload)
		if outcome.apiErr != nil {
			return nil, outcome.apiErr
		}
		if outcome.transportErr == nil {
			return outcome.data, nil
		}

		lastErr = outcome.transportErr
		c.log.WithFields(logrus.Fields{
			"method":  method,
			"url":     reqURL,
			"attempt": attempt,
		}).WithError(lastErr).Debug("request attempt failed")
	}

	switch classifyTransport(lastErr) {
	case transportTimeout:
		return nil, &TimeoutError{
			Message: fmt.Sprintf("request timeout after %d attempts", c.retryAttempts),
			Err:     lastErr,
		}
	case transportConnection:
		return nil, &ConnectionError{
			Message: fmt.Sprintf("connection failed after %d attempts", c.retryAttempts),
			Err:     lastErr,
		}
	default:
		return nil, &RequestError{Message: lastErr.Error(), Err: lastErr}
	}
}

// attempt issues a single HTTP request and folds the response into an
// attemptOutcome.
func (c *Client) attempt(ctx context.Context, method, reqURL string, payload []byte) attemptOutcome {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return attemptOutcome{transportErr: err}
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return attemptOutcome{transportErr: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return attemptOutcome{transportErr: err}
	}

	if resp.StatusCode >= 400 {
		return attemptOutcome{apiErr: errorFromResponse(resp.StatusCode, respBody)}
	}
	return attemptOutcome{data: normalizeBody(respBody)}
}

// normalizeBody returns the response body as JSON, wrapping non-JSON bodies
// in a plain message object so callers always decode structured data.
func normalizeBody(body []byte) json.RawMessage {
	if json.Valid(body) && len(bytes.TrimSpace(body)) > 0 {
		return body
	}
	wrapped, _ := json.Marshal(map[string]string{"message": string(body)})
	return wrapped
}

// errorFromResponse maps an error response to the typed taxonomy. 404s are
// disambiguated by the message text: "task" means TaskNotFoundError,
// "project" means ProjectNotFoundError, anything else stays a generic
// APIError.
func errorFromResponse(statusCode int, body []byte) error {
	message := "Unknown error"
	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err == nil {
		if m, ok := decoded["message"].(string); ok {
			message = m
		}
	} else if len(bytes.TrimSpace(body)) > 0 {
		message = string(body)
	}

	base := APIError{Message: message, StatusCode: statusCode, Body: body}
	switch statusCode {
	case http.StatusBadRequest:
		return &ValidationError{base}
	case http.StatusUnauthorized:
		return &AuthenticationError{base}
	case http.StatusForbidden:
		return &AuthorizationError{base}
	case http.StatusNotFound:
		lower := strings.ToLower(message)
		switch {
		case strings.Contains(lower, "task"):
			return &TaskNotFoundError{base}
		case strings.Contains(lower, "project"):
			return &ProjectNotFoundError{base}
		default:
			return &base
		}
	case http.StatusTooManyRequests:
		return &RateLimitError{base}
	default:
		return &base
	}
}

// decodeList accepts both list response shapes the API produces: a bare
// array, or an envelope with a named array field. A single object decodes
// to a one-element slice.
func decodeList[T any](raw json.RawMessage, key string) ([]T, error) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("decode %s list: %w", key, err)
		}
		return items, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if inner, ok := envelope[key]; ok {
			innerTrimmed := bytes.TrimLeft(inner, " \t\r\n")
			if len(innerTrimmed) > 0 && innerTrimmed[0] == '[' {
				var items []T
				if err := json.Unmarshal(inner, &items); err != nil {
					return nil, fmt.Errorf("decode %s list: %w", key, err)
				}
				return items, nil
			}
		}
	}

	var single T
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", key, err)
	}
	return []T{single}, nil
}
