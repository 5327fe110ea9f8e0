package check

import (
	"context"

	"github.com/optimode/addrcheck/internal/parse"
	"github.com/optimode/addrcheck/types"
)

// NoopChecker never reports errors. It exists to exercise the registry
// discovery and execution machinery end to end.
type NoopChecker struct{}

func NewNoopChecker() *NoopChecker {
	return &NoopChecker{}
}

func (c *NoopChecker) Name() string { return "noop" }

func (c *NoopChecker) Check(_ context.Context, _ *parse.Email) []types.Error {
	return nil
}
