// Package gen defines the completion gateway contract: one upstream
// text-generation call per accepted submission, with every failure mapped to
// exactly one stable category.
package gen

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
)

// Gateway produces an architecture recommendation for a validated project
// description. Implementations make at most one outbound call per invocation.
type Gateway interface {
	Generate(ctx context.Context, description string) (string, error)
}

type Category string

const (
	// CategoryClient: the upstream service rejected the submitted content
	// itself (policy/safety or a 400-class response).
	CategoryClient Category = "client-error"
	// CategoryRateLimited: quota or rate exhaustion upstream.
	CategoryRateLimited Category = "rate-limited"
	// CategoryUnavailable: upstream unreachable, timed out or failing
	// transiently.
	CategoryUnavailable Category = "upstream-unavailable"
	// CategoryInternal: anything unexpected during the call.
	CategoryInternal Category = "internal-error"
)

func (c Category) HTTPStatus() int {
	switch c {
	case CategoryClient:
		return http.StatusBadRequest
	case CategoryRateLimited:
		return http.StatusTooManyRequests
	case CategoryUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Error is the only error type a Gateway returns. Message is safe to show to
// the client; the underlying provider error stays inside the gateway.
type Error struct {
	Category Category
	Message  string
}

func (e *Error) Error() string { return string(e.Category) + ": " + e.Message }

func fail(c Category, msg string) *Error {
	return &Error{Category: c, Message: msg}
}

// Client-facing messages per category, matching the service's published
// error strings.
const (
	msgClient      = "Project description was rejected by the generation service. Please rephrase and try again."
	msgRateLimited = "Service temporarily unavailable due to high demand. Please try again in a few minutes."
	msgUnavailable = "Unable to generate architecture recommendation. Please try again."
	msgInternal    = "An unexpected error occurred. Please try again."
)

// Categorize translates an upstream call failure into exactly one *Error.
// Provider error shapes handled, in order: an already-categorized *Error,
// context expiry, a safety block, a typed REST error from the Google API
// layer, a network timeout, and finally a message-text heuristic for quota
// errors that arrive untyped.
func Categorize(err error) *Error {
	var ge *Error
	if errors.As(err, &ge) {
		return ge
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fail(CategoryUnavailable, msgUnavailable)
	}
	var blocked *genai.BlockedError
	if errors.As(err, &blocked) {
		return fail(CategoryClient, msgClient)
	}
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusBadRequest:
			return fail(CategoryClient, msgClient)
		case apiErr.Code == http.StatusTooManyRequests:
			return fail(CategoryRateLimited, msgRateLimited)
		case apiErr.Code == http.StatusRequestTimeout || apiErr.Code/100 == 5:
			return fail(CategoryUnavailable, msgUnavailable)
		}
		// 401/403 and friends mean a credential or configuration problem,
		// not a problem with the submitted content.
		return fail(CategoryInternal, msgInternal)
	}
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return fail(CategoryUnavailable, msgUnavailable)
	}
	lower := strings.ToLower(err.Error())
	for _, m := range []string{"429", "quota", "rate limit", "too many requests", "resource exhausted"} {
		if strings.Contains(lower, m) {
			return fail(CategoryRateLimited, msgRateLimited)
		}
	}
	if strings.Contains(lower, "unavailable") || strings.Contains(lower, "connection refused") {
		return fail(CategoryUnavailable, msgUnavailable)
	}
	return fail(CategoryInternal, msgInternal)
}

// Unavailable tags an upstream condition (empty response, transport failure)
// as upstream-unavailable without exposing provider detail to the client.
func Unavailable() *Error { return fail(CategoryUnavailable, msgUnavailable) }
