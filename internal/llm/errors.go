package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
)

var (
	// ErrNotConfigured indicates a credential or endpoint setting is absent.
	ErrNotConfigured = errors.New("llm not configured")

	// ErrUnavailable indicates the remote endpoint is unreachable.
	ErrUnavailable = errors.New("llm endpoint unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrHTTPStatus indicates the endpoint answered with a non-2xx status.
	ErrHTTPStatus = errors.New("llm endpoint returned error status")

	// ErrInvalidOutput indicates the response body had no usable text.
	ErrInvalidOutput = errors.New("invalid llm output format")

	// ErrPredictionFailed indicates the prediction job reached a failed state.
	ErrPredictionFailed = errors.New("llm prediction failed")

	// ErrPollExhausted indicates the prediction did not finish within the
	// polling budget.
	ErrPollExhausted = errors.New("llm polling attempts exhausted")
)

// ErrorCode maps an error to the short code reported to observers.
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotConfigured):
		return "NOT_CONFIGURED"
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrHTTPStatus):
		return "HTTP_STATUS"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	case errors.Is(err, ErrPredictionFailed):
		return "PREDICTION_FAILED"
	case errors.Is(err, ErrPollExhausted):
		return "POLL_EXHAUSTED"
	default:
		return "UNKNOWN"
	}
}

// classifyTransportError converts a transport failure into a sentinel.
func classifyTransportError(ctx context.Context, err error) error {
	if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
