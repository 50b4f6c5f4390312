package gen

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
)

// timeoutErr implements net.Error the way transport-level timeouts surface.
type timeoutErr struct{}

func (timeoutErr) Error() string   { return "dial tcp: i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestCategorizeStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		code int
		want Category
	}{
		{"bad request", http.StatusBadRequest, CategoryClient},
		{"unauthorized", http.StatusUnauthorized, CategoryInternal},
		{"forbidden", http.StatusForbidden, CategoryInternal},
		{"rate limited", http.StatusTooManyRequests, CategoryRateLimited},
		{"request timeout", http.StatusRequestTimeout, CategoryUnavailable},
		{"internal", http.StatusInternalServerError, CategoryUnavailable},
		{"bad gateway", http.StatusBadGateway, CategoryUnavailable},
		{"service unavailable", http.StatusServiceUnavailable, CategoryUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &googleapi.Error{Code: tt.code, Message: tt.name}
			assert.Equal(t, tt.want, Categorize(err).Category)
		})
	}
}

func TestCategorizeWrappedStatusCode(t *testing.T) {
	err := fmt.Errorf("generate: %w", &googleapi.Error{Code: http.StatusTooManyRequests})
	assert.Equal(t, CategoryRateLimited, Categorize(err).Category)
}

func TestCategorizeContextExpiry(t *testing.T) {
	assert.Equal(t, CategoryUnavailable, Categorize(context.DeadlineExceeded).Category)
	assert.Equal(t, CategoryUnavailable, Categorize(context.Canceled).Category)
}

func TestCategorizeSafetyBlock(t *testing.T) {
	err := &genai.BlockedError{PromptFeedback: &genai.PromptFeedback{BlockReason: genai.BlockReasonSafety}}
	assert.Equal(t, CategoryClient, Categorize(err).Category)
}

func TestCategorizeNetworkTimeout(t *testing.T) {
	assert.Equal(t, CategoryUnavailable, Categorize(timeoutErr{}).Category)
}

func TestCategorizeQuotaMessageHeuristic(t *testing.T) {
	for _, msg := range []string{
		"googleapi: got HTTP response code 429 with body",
		"quota exceeded for quota metric",
		"rpc error: code = ResourceExhausted desc = resource exhausted",
	} {
		assert.Equal(t, CategoryRateLimited, Categorize(errors.New(msg)).Category, msg)
	}
}

func TestCategorizeUnknownIsInternal(t *testing.T) {
	got := Categorize(errors.New("something odd happened"))
	assert.Equal(t, CategoryInternal, got.Category)
	assert.NotEmpty(t, got.Message)
}

func TestCategorizePassesThroughTypedError(t *testing.T) {
	orig := Unavailable()
	assert.Same(t, orig, Categorize(fmt.Errorf("wrapped: %w", orig)))
}

func TestCategoryHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, CategoryClient.HTTPStatus())
	assert.Equal(t, http.StatusTooManyRequests, CategoryRateLimited.HTTPStatus())
	assert.Equal(t, http.StatusServiceUnavailable, CategoryUnavailable.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, CategoryInternal.HTTPStatus())
}
