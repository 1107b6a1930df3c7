package llm

import (
	"context"
	"errors"
)

// ErrEmptyCompletion is returned when the provider answers without any text.
var ErrEmptyCompletion = errors.New("empty completion returned by model")

// CompletionRequest is a single prompt sent to a text-completion model.
type CompletionRequest struct {
	Prompt      string
	Model       string
	Temperature float32
}

// CompletionModel maps a prompt to generated text.
// It hides concrete providers to preserve dependency direction.
type CompletionModel interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// CompletionFunc adapts a plain function to CompletionModel.
type CompletionFunc func(ctx context.Context, req CompletionRequest) (string, error)

func (f CompletionFunc) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	return f(ctx, req)
}
