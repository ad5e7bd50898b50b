// Package dynamic implements the rule evaluators that need the live rendered
// page: computed styles, focus behavior and click-target geometry. All
// in-page evaluation goes through self-contained IIFE snippets. A snippet
// must never reference helpers outside its own scope, since nothing outside
// the expression is serialized into the page context.
package dynamic

import (
	"context"
	"fmt"

	"github.com/raysh454/aria/internal/checks"
	"github.com/raysh454/aria/internal/interfaces"
	"github.com/raysh454/aria/internal/model"
)

// Querier evaluates a JavaScript expression in the live page and unmarshals
// the JSON result into out. Implementations serialize concurrent calls.
type Querier interface {
	Eval(ctx context.Context, expression string, out any) error
}

// Func is a dynamic check against a live page.
type Func func(ctx context.Context, q Querier) (*model.CheckResult, error)

var dynamics = []struct {
	Name string
	Fn   Func
}{
	{checks.CheckColors, Colors},
	{checks.CheckKeyboard, Keyboard},
}

// Names returns the dynamic check names in registry order.
func Names() []string {
	out := make([]string, 0, len(dynamics))
	for _, c := range dynamics {
		out = append(out, c.Name)
	}
	return out
}

// Run executes every dynamic check under the same isolation contract as the
// static battery: a failing check yields an empty result, never an aborted
// run.
func Run(ctx context.Context, q Querier, logger interfaces.Logger) map[string]*model.CheckResult {
	out := make(map[string]*model.CheckResult, len(dynamics))
	for _, c := range dynamics {
		out[c.Name] = runOne(ctx, c.Name, c.Fn, q, logger)
	}
	return out
}

func runOne(ctx context.Context, name string, fn Func, q Querier, logger interfaces.Logger) (result *model.CheckResult) {
	defer func() {
		if r := recover(); r != nil {
			logFault(logger, name, fmt.Errorf("panic: %v", r))
			result = model.NewCheckResult(name)
		}
	}()

	res, err := fn(ctx, q)
	if err != nil {
		logFault(logger, name, err)
		return model.NewCheckResult(name)
	}
	if res == nil {
		return model.NewCheckResult(name)
	}
	return res
}

func logFault(logger interfaces.Logger, name string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("dynamic check failed, substituting empty result",
		interfaces.Field{Key: "check", Value: name},
		interfaces.Field{Key: "error", Value: err.Error()})
}
