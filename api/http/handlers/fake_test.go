package handlers

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/STIWARI-IN/AI-ML/pkg/advisor"
	"github.com/STIWARI-IN/AI-ML/pkg/chain"
)

// fakeAdvisors implements advisor.UseCase over the default catalog.
type fakeAdvisors struct {
	err     error
	queries []string
}

func (f *fakeAdvisors) Advisors() []advisor.Advisor { return advisor.DefaultCatalog() }

func (f *fakeAdvisors) Get(slug string) (advisor.Advisor, error) {
	for _, a := range advisor.DefaultCatalog() {
		if a.Slug == slug {
			return a, nil
		}
	}
	return advisor.Advisor{}, advisor.ErrUnknownAdvisor
}

func (f *fakeAdvisors) Advise(_ context.Context, slug, query string) (advisor.Advice, error) {
	if _, err := f.Get(slug); err != nil {
		return advisor.Advice{}, err
	}
	if strings.TrimSpace(query) == "" {
		return advisor.Advice{}, advisor.ErrEmptyInput
	}
	f.queries = append(f.queries, query)
	if f.err != nil {
		return advisor.Advice{}, f.err
	}
	return advisor.Advice{
		RunID:    uuid.New(),
		Advisor:  slug,
		Query:    query,
		Name:     "CityX",
		ListText: "A, B, C",
		Items:    []string{"A", "B", "C"},
	}, nil
}

func externalErr() error {
	return &chain.StageError{Stage: 1, Err: context.DeadlineExceeded}
}
