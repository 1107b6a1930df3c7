package chain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/STIWARI-IN/AI-ML/pkg/llm"
	"github.com/STIWARI-IN/AI-ML/pkg/prompt"
)

var (
	// ErrExternalService covers every failure of the completion capability:
	// transport errors, timeouts, non-2xx answers and empty replies.
	ErrExternalService = errors.New("external completion service failed")
	// ErrTemplateBinding is re-exported so callers need a single import.
	ErrTemplateBinding = prompt.ErrTemplateBinding
)

// StageError tells which of the two completions failed.
type StageError struct {
	Stage int
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%v: stage %d: %v", ErrExternalService, e.Stage, e.Err)
}

func (e *StageError) Unwrap() []error { return []error{ErrExternalService, e.Err} }

// Step is one templated completion whose reply is stored under OutputKey.
type Step struct {
	Template  prompt.Template
	OutputKey string
}

// Result holds both replies of a run.
type Result struct {
	Name     string `json:"name"`
	ListText string `json:"listText"`
}

// Observer is notified after every completion call.
type Observer func(stage int, took time.Duration, err error)

// Temperature is sent with every completion. Both stages decode at the minimum.
const Temperature float32 = 0

// Options configure both stages.
type Options struct {
	Model    string
	Observer Observer
}

// Runner executes a fixed two-step chain. It keeps no state between runs.
type Runner struct {
	model  llm.CompletionModel
	opts   Options
	first  Step
	second Step
}

// New validates the steps and builds a Runner. The second step's template
// must consume exactly what the first step produces.
func New(model llm.CompletionModel, opts Options, first, second Step) (*Runner, error) {
	if model == nil {
		return nil, errors.New("chain: completion model is nil")
	}
	if first.OutputKey == "" || second.OutputKey == "" {
		return nil, fmt.Errorf("%w: output keys must be set", ErrTemplateBinding)
	}
	if first.OutputKey == second.OutputKey {
		return nil, fmt.Errorf("%w: duplicate output key %q", ErrTemplateBinding, first.OutputKey)
	}
	if first.Template.Variable() == "" || second.Template.Variable() == "" {
		return nil, fmt.Errorf("%w: step template is not initialised", ErrTemplateBinding)
	}
	if second.Template.Variable() != first.OutputKey {
		return nil, fmt.Errorf("%w: second template expects {%s}, first step produces %q",
			ErrTemplateBinding, second.Template.Variable(), first.OutputKey)
	}
	return &Runner{model: model, opts: opts, first: first, second: second}, nil
}

// InputVariable is the variable the query is bound to.
func (r *Runner) InputVariable() string { return r.first.Template.Variable() }

// Model returns the configured model identifier (may be empty for provider default).
func (r *Runner) Model() string { return r.opts.Model }

// Run sends query through both steps. Exactly two completions are made on success;
// the first failure aborts the run and no partial result is returned.
func (r *Runner) Run(ctx context.Context, query string) (Result, error) {
	name, err := r.step(ctx, 1, r.first, query)
	if err != nil {
		return Result{}, err
	}
	list, err := r.step(ctx, 2, r.second, name)
	if err != nil {
		return Result{}, err
	}
	return Result{Name: name, ListText: list}, nil
}

func (r *Runner) step(ctx context.Context, stage int, s Step, value string) (string, error) {
	text, err := s.Template.Render(s.Template.Variable(), value)
	if err != nil {
		return "", err
	}
	start := time.Now()
	out, err := r.model.Complete(ctx, llm.CompletionRequest{
		Prompt:      text,
		Model:       r.opts.Model,
		Temperature: Temperature,
	})
	out = strings.TrimSpace(out)
	if err == nil && out == "" {
		err = llm.ErrEmptyCompletion
	}
	if r.opts.Observer != nil {
		r.opts.Observer(stage, time.Since(start), err)
	}
	if err != nil {
		return "", &StageError{Stage: stage, Err: err}
	}
	return out, nil
}
