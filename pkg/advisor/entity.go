package advisor

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Naming contract shared by every advisor: the query is bound by the first
// template, whose reply is stored as NameKey and fed to the second template.
const (
	NameKey = "place_name"
	ListKey = "items"
)

var (
	ErrEmptyInput     = errors.New("query is empty")
	ErrUnknownAdvisor = errors.New("advisor not found")
)

// Advisor описывает один вариант советника (путешествия, больницы и т.п.).
type Advisor struct {
	Slug        string `json:"slug" yaml:"slug"`
	Title       string `json:"title" yaml:"title"`
	InputLabel  string `json:"inputLabel" yaml:"input_label"`
	ListHeading string `json:"listHeading" yaml:"list_heading"`
	NamePrompt  string `json:"-" yaml:"name_prompt"`
	ListPrompt  string `json:"-" yaml:"list_prompt"`
}

// Advice — результат одного запуска цепочки.
type Advice struct {
	RunID     uuid.UUID `json:"runId"`
	Advisor   string    `json:"advisor"`
	Query     string    `json:"query"`
	Name      string    `json:"name"`
	ListText  string    `json:"listText"`
	Items     []string  `json:"items"`
	Model     string    `json:"model"`
	CreatedAt time.Time `json:"createdAt"`
}

// UseCase — сценарии работы с советниками.
type UseCase interface {
	Advisors() []Advisor
	Get(slug string) (Advisor, error)
	Advise(ctx context.Context, slug, query string) (Advice, error)
}
