package ai

import (
	"context"
	"errors"
)

var (
	// ErrRateLimited is returned when the upstream gateway answers 429.
	ErrRateLimited = errors.New("upstream rate limit exceeded")
	// ErrQuotaExceeded is returned when the upstream gateway answers 402.
	ErrQuotaExceeded = errors.New("upstream quota exhausted")
	// ErrUpstreamFailure covers every other non-success status and transport error.
	ErrUpstreamFailure = errors.New("failed to get AI response")
	// ErrEmptyCompletion indicates the gateway returned no choices.
	ErrEmptyCompletion = errors.New("upstream returned no completion")
)

// Prompt is the system/user message pair sent upstream.
type Prompt struct {
	System string
	User   string
}

// ChatCompleter sends a single prompt to a chat-completion gateway and returns the raw content of the first choice.
type ChatCompleter interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}
