package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/STIWARI-IN/AI-ML/pkg/chain"
	"github.com/STIWARI-IN/AI-ML/pkg/llm"
	"github.com/STIWARI-IN/AI-ML/pkg/metrics"
	"github.com/STIWARI-IN/AI-ML/pkg/nlp"
)

// entry pairs a catalog advisor with its chain.
type entry struct {
	advisor Advisor
	runner  *chain.Runner
}

type service struct {
	advisors []Advisor
	entries  map[string]entry
	log      *zap.Logger
	now      func() time.Time
}

// NewService builds one chain per advisor. A template binding mismatch in any
// advisor is returned here, before the service accepts requests.
func NewService(model llm.CompletionModel, opts chain.Options, advisors []Advisor, log *zap.Logger) (UseCase, error) {
	if len(advisors) == 0 {
		return nil, errors.New("no advisors configured")
	}
	if log == nil {
		log = zap.NewNop()
	}
	s := &service{
		advisors: advisors,
		entries:  make(map[string]entry, len(advisors)),
		log:      log,
		now:      time.Now,
	}
	for _, a := range advisors {
		if _, dup := s.entries[a.Slug]; dup {
			return nil, fmt.Errorf("advisor %q defined twice", a.Slug)
		}
		first, second, err := Steps(a)
		if err != nil {
			return nil, fmt.Errorf("advisor %q: %w", a.Slug, err)
		}
		r, err := chain.New(model, opts, first, second)
		if err != nil {
			return nil, fmt.Errorf("advisor %q: %w", a.Slug, err)
		}
		s.entries[a.Slug] = entry{advisor: a, runner: r}
	}
	return s, nil
}

func (s *service) Advisors() []Advisor {
	out := make([]Advisor, len(s.advisors))
	copy(out, s.advisors)
	return out
}

func (s *service) Get(slug string) (Advisor, error) {
	for _, a := range s.advisors {
		if a.Slug == slug {
			return a, nil
		}
	}
	return Advisor{}, ErrUnknownAdvisor
}

func (s *service) Advise(ctx context.Context, slug, query string) (Advice, error) {
	e, ok := s.entries[slug]
	if !ok {
		return Advice{}, ErrUnknownAdvisor
	}
	// slug may alias a reused request buffer; only the catalog copy is retained
	slug = e.advisor.Slug
	query = strings.TrimSpace(query)
	if query == "" {
		metrics.AdvisorRuns.WithLabelValues(slug, metrics.OutcomeEmptyInput).Inc()
		return Advice{}, ErrEmptyInput
	}

	runID := uuid.New()
	log := s.log.With(zap.String("runId", runID.String()), zap.String("advisor", slug))
	start := s.now()

	res, err := e.runner.Run(ctx, query)
	if err != nil {
		metrics.AdvisorRuns.WithLabelValues(slug, metrics.OutcomeFailed).Inc()
		fields := []zap.Field{zap.Error(err), zap.Duration("took", s.now().Sub(start))}
		var se *chain.StageError
		if errors.As(err, &se) {
			fields = append(fields, zap.Int("stage", se.Stage))
		}
		log.Error("advisor run failed", fields...)
		return Advice{}, err
	}
	metrics.AdvisorRuns.WithLabelValues(slug, metrics.OutcomeOK).Inc()

	items := nlp.SplitList(res.ListText)
	log.Info("advisor run completed",
		zap.String("name", res.Name),
		zap.Int("items", len(items)),
		zap.Duration("took", s.now().Sub(start)),
	)

	return Advice{
		RunID:     runID,
		Advisor:   slug,
		Query:     query,
		Name:      nlp.Normalize(res.Name),
		ListText:  res.ListText,
		Items:     items,
		Model:     e.runner.Model(),
		CreatedAt: start.UTC(),
	}, nil
}
