package advisor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/STIWARI-IN/AI-ML/pkg/chain"
	"github.com/STIWARI-IN/AI-ML/pkg/llm"
	"github.com/STIWARI-IN/AI-ML/pkg/prompt"
)

// stageModel answers "CityX" to name prompts and "A, B, C" to list prompts.
type stageModel struct {
	prompts []string
	failOn  string
}

func (m *stageModel) Complete(_ context.Context, req llm.CompletionRequest) (string, error) {
	m.prompts = append(m.prompts, req.Prompt)
	if m.failOn != "" && strings.Contains(req.Prompt, m.failOn) {
		return "", errors.New("upstream 503")
	}
	if strings.Contains(req.Prompt, "comma separated") {
		return "A, B, C", nil
	}
	return "CityX", nil
}

func newTestService(t *testing.T, model llm.CompletionModel, log *zap.Logger) UseCase {
	t.Helper()
	svc, err := NewService(model, chain.Options{Model: "llama3-8b-8192"}, DefaultCatalog(), log)
	require.NoError(t, err)
	return svc
}

func TestService_Advise_Success(t *testing.T) {
	model := &stageModel{}
	core, logs := observer.New(zapcore.InfoLevel)
	svc := newTestService(t, model, zap.New(core))

	advice, err := svc.Advise(context.Background(), "travel", "  anything ")
	require.NoError(t, err)

	assert.Equal(t, "travel", advice.Advisor)
	assert.Equal(t, "anything", advice.Query)
	assert.Equal(t, "CityX", advice.Name)
	assert.Equal(t, "A, B, C", advice.ListText)
	assert.Equal(t, []string{"A", "B", "C"}, advice.Items)
	assert.Equal(t, "llama3-8b-8192", advice.Model)
	assert.NotEqual(t, uuid.Nil, advice.RunID)
	assert.False(t, advice.CreatedAt.IsZero())

	require.Len(t, model.prompts, 2)
	assert.Equal(t, "I want to travel anything", model.prompts[0])
	assert.Contains(t, model.prompts[1], "CityX")

	entries := logs.FilterMessage("advisor run completed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "travel", entries[0].ContextMap()["advisor"])
}

func TestService_Advise_Hospital(t *testing.T) {
	model := &stageModel{}
	svc := newTestService(t, model, nil)

	advice, err := svc.Advise(context.Background(), "hospital", "Pune")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, advice.Items)
	assert.Contains(t, model.prompts[1], "hospitals in CityX")
}

func TestService_Advise_EmptyInput(t *testing.T) {
	model := &stageModel{}
	svc := newTestService(t, model, nil)

	_, err := svc.Advise(context.Background(), "travel", "   ")
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.Empty(t, model.prompts, "empty input must not reach the model")
}

func TestService_Advise_UnknownAdvisor(t *testing.T) {
	svc := newTestService(t, &stageModel{}, nil)
	_, err := svc.Advise(context.Background(), "restaurants", "Goa")
	assert.ErrorIs(t, err, ErrUnknownAdvisor)
}

func TestService_Advise_ExternalFailure(t *testing.T) {
	model := &stageModel{failOn: "comma separated"}
	core, logs := observer.New(zapcore.ErrorLevel)
	svc := newTestService(t, model, zap.New(core))

	advice, err := svc.Advise(context.Background(), "travel", "Goa")
	require.Error(t, err)
	assert.ErrorIs(t, err, chain.ErrExternalService)
	assert.Equal(t, Advice{}, advice)

	entries := logs.FilterMessage("advisor run failed").All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, 2, entries[0].ContextMap()["stage"])
}

func TestService_AdvisorsAndGet(t *testing.T) {
	svc := newTestService(t, &stageModel{}, nil)

	list := svc.Advisors()
	require.Len(t, list, 2)
	list[0].Title = "mutated"
	assert.NotEqual(t, "mutated", svc.Advisors()[0].Title)

	a, err := svc.Get("hospital")
	require.NoError(t, err)
	assert.Equal(t, "Well Known Hospitals", a.ListHeading)

	_, err = svc.Get("nope")
	assert.ErrorIs(t, err, ErrUnknownAdvisor)
}

func TestNewService_BindingMismatch(t *testing.T) {
	bad := []Advisor{{
		Slug:       "travel",
		NamePrompt: "I want to travel {State}",
		ListPrompt: "Suggest some famous sight seeing for {place}",
	}}
	_, err := NewService(&stageModel{}, chain.Options{}, bad, nil)
	assert.ErrorIs(t, err, prompt.ErrTemplateBinding)
}

func TestNewService_Invalid(t *testing.T) {
	_, err := NewService(&stageModel{}, chain.Options{}, nil, nil)
	assert.Error(t, err)

	dup := append(DefaultCatalog(), DefaultCatalog()[0])
	_, err = NewService(&stageModel{}, chain.Options{}, dup, nil)
	assert.Error(t, err)

	_, err = NewService(nil, chain.Options{}, DefaultCatalog(), nil)
	assert.Error(t, err)
}
