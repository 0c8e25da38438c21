package vxmcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// ErrorCode is the taxonomy code attached to every *ClientError.
type ErrorCode string

const (
	CodeValidation   ErrorCode = "VALIDATION_ERROR"
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeRateLimited  ErrorCode = "RATE_LIMITED"
	CodeServer       ErrorCode = "SERVER_ERROR"
	CodeTimeout      ErrorCode = "TIMEOUT"
	CodeNetwork      ErrorCode = "NETWORK_ERROR"
	CodeUnknown      ErrorCode = "UNKNOWN"
)

// retryableCodes fixes the retryable flag per taxonomy code. Codes absent
// from the map are terminal.
var retryableCodes = map[ErrorCode]bool{
	CodeRateLimited: true,
	CodeServer:      true,
	CodeTimeout:     true,
	CodeNetwork:     true,
}

// ClientError is the only error shape the client raises. Lower-level
// failures (network faults, parse faults, timeouts) are mapped into it
// before crossing the client boundary.
type ClientError struct {
	Code      ErrorCode
	Message   string
	Status    int
	Retryable bool
	Cause     error

	// retryAfter is a server-requested wait parsed from the Retry-After
	// header; it overrides computed backoff when set.
	retryAfter time.Duration
}

func newError(code ErrorCode, message string, cause error) *ClientError {
	return &ClientError{
		Code:      code,
		Message:   message,
		Retryable: retryableCodes[code],
		Cause:     cause,
	}
}

// Error implements the error interface.
func (e *ClientError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *ClientError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is compares taxonomy codes for errors.Is.
func (e *ClientError) Is(target error) bool {
	if e == nil {
		return false
	}
	if targetErr, ok := target.(*ClientError); ok {
		return e.Code == targetErr.Code
	}
	return false
}

// IsRetryable reports whether err represents a transient failure that might
// succeed on retry: rate limiting, 5xx responses, timeouts and network
// faults. Validation, auth and not-found failures are terminal.
func IsRetryable(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Retryable
	}
	return false
}

// apiErrorBody is the optional error envelope the service returns on
// non-success statuses.
type apiErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// classifyStatus maps a non-success HTTP status to a taxonomy code. The
// response body, when it carries an error envelope, refines the message.
func classifyStatus(status int, body []byte, header http.Header) *ClientError {
	var code ErrorCode
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		code = CodeUnauthorized
	case http.StatusNotFound:
		code = CodeNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		code = CodeValidation
	case http.StatusTooManyRequests:
		code = CodeRateLimited
	case http.StatusInternalServerError, http.StatusBadGateway,
		http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		code = CodeServer
	default:
		code = CodeUnknown
	}

	cerr := newError(code, statusMessage(status, body), nil)
	cerr.Status = status
	if cerr.Retryable {
		cerr.retryAfter = parseRetryAfter(header.Get("Retry-After"))
	}
	return cerr
}

func statusMessage(status int, body []byte) string {
	var envelope apiErrorBody
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Error != "" {
			return envelope.Error
		}
		if envelope.Message != "" {
			return envelope.Message
		}
	}
	return fmt.Sprintf("request failed with status %d", status)
}

// classifyTransport maps a transport-level failure (connection refused, DNS,
// deadline) to TIMEOUT or NETWORK_ERROR. Caller cancellation is terminal.
func classifyTransport(err error) *ClientError {
	if errors.Is(err, context.DeadlineExceeded) {
		return newError(CodeTimeout, "request timed out", err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return newError(CodeTimeout, "request timed out", err)
	}
	if errors.Is(err, context.Canceled) {
		cerr := newError(CodeNetwork, "request canceled", err)
		cerr.Retryable = false
		return cerr
	}
	return newError(CodeNetwork, "network request failed", err)
}

// parseRetryAfter parses a Retry-After header value, supporting both
// delay-seconds and HTTP-date formats. Results are capped at one hour.
func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}

	if seconds, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
		if seconds > 0 {
			delay := time.Duration(seconds) * time.Second
			if delay > time.Hour {
				delay = time.Hour
			}
			return delay
		}
		return 0
	}

	if t, err := http.ParseTime(value); err == nil {
		delay := time.Until(t)
		if delay > 0 && delay <= time.Hour {
			return delay
		}
	}

	return 0
}
