package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// ErrMalformedResponse marks a 2xx response whose body could not be decoded.
var ErrMalformedResponse = errors.New("failed to decode response")

// ErrorKind classifies a normalized failure.
type ErrorKind string

const (
	// KindValidation covers client-side input rejection; no request was sent.
	KindValidation ErrorKind = "validation"
	// KindTransport covers network-level failures (timeout, unreachable).
	KindTransport ErrorKind = "transport"
	// KindServer covers non-2xx responses from a backend.
	KindServer ErrorKind = "server"
	// KindSemantic covers well-formed responses missing expected data.
	KindSemantic ErrorKind = "semantic"
)

// Error is the single failure shape domain modules hand to callers. It pairs
// a human-readable message with the operation label and the original cause.
type Error struct {
	Err       error
	Kind      ErrorKind
	Operation string
	Message   string
	Status    int
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Operation, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ValidationError reports input rejected before any network call.
func ValidationError(operation, message string) *Error {
	return &Error{Kind: KindValidation, Operation: operation, Message: message}
}

// SemanticError reports a well-formed response that lacks expected data.
func SemanticError(operation, message string) *Error {
	return &Error{Kind: KindSemantic, Operation: operation, Message: message}
}

// Normalize converts any failure from a backend call into an *Error with a
// status-specific human message. Already-normalized errors pass through
// unchanged so modules can re-wrap freely.
func Normalize(operation string, err error) *Error {
	var already *Error
	if errors.As(err, &already) {
		return already
	}

	if errors.Is(err, ErrMalformedResponse) {
		return &Error{
			Kind:      KindSemantic,
			Operation: operation,
			Message:   "unexpected response from server, try again later",
			Err:       err,
		}
	}

	var status *StatusError
	if errors.As(err, &status) {
		return &Error{
			Kind:      KindServer,
			Operation: operation,
			Message:   serverMessage(operation, status),
			Status:    status.Status,
			Err:       err,
		}
	}

	return &Error{
		Kind:      KindTransport,
		Operation: operation,
		Message:   transportMessage(err),
		Err:       err,
	}
}

func serverMessage(operation string, status *StatusError) string {
	switch status.Status {
	case http.StatusBadRequest:
		if status.Detail != "" {
			return status.Detail
		}
		return "invalid request parameters"
	case http.StatusUnauthorized:
		return "unauthorized, please log in again"
	case http.StatusForbidden:
		return "access to this feature is forbidden"
	case http.StatusNotFound:
		return "service temporarily unavailable, try again later"
	case http.StatusRequestEntityTooLarge:
		return "file too large, choose a smaller one"
	case http.StatusUnsupportedMediaType:
		return "unsupported file format"
	case http.StatusTooManyRequests:
		return "too many requests, slow down"
	case http.StatusInternalServerError:
		return "internal server error, try again later"
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		return "service temporarily unavailable, try again later"
	default:
		if status.Detail != "" {
			return status.Detail
		}
		return operation + " failed, try again later"
	}
}

func transportMessage(err error) string {
	if isTimeout(err) {
		return "request timed out, check your network connection"
	}
	return "network connection failed, check your network settings"
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
