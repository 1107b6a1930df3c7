package checkers

import (
	"context"
	"time"
)

// Pinger is satisfied by completion clients that can probe their endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

type LLMChecker struct {
	name    string
	client  Pinger
	timeout time.Duration
}

func NewLLMChecker(name string, client Pinger) *LLMChecker {
	return &LLMChecker{name: name, client: client, timeout: 3 * time.Second}
}

func (c *LLMChecker) Name() string { return c.name }

func (c *LLMChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.client.Ping(ctx)
}
