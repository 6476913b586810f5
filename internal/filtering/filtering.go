package filtering

import (
	"context"
	"fmt"

	"github.com/smartresume/resume-matcher/internal/matching"
	"go.uber.org/zap"
)

// Filter represents a single filtering step applied to ranked match results.
type Filter interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	Validate(cfg *Config) error
	Apply(ctx context.Context, deps Deps, r *matching.Results) (*matching.Results, Step, error)
}

// Deps aggregates dependencies shared across all filtering steps.
type Deps struct {
	Logger *zap.Logger
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Config contains configuration settings consumed by the filters.
type Config struct {
	Tier      string
	Tiers     matching.Tiers
	MinScore  int
	Companies []string
}

// Status represents runtime information about a filter.
type Status struct {
	Name    string
	Enabled bool
	Reason  string
	Details map[string]string
}

// statusProvider is implemented by filters that can supply detailed status information.
type statusProvider interface {
	Status() Status
}

// DisableByName marks a filter with the provided name as disabled while keeping it in the list.
func DisableByName(steps []Filter, name, reason string) {
	for _, step := range steps {
		if step.Name() == name {
			step.Disable(reason)
		}
	}
}

// Run executes the supplied filters sequentially and returns the remaining
// results. Filters only remove entries; the ranked order of the input list
// is never disturbed.
func Run(ctx context.Context, cfg *Config, deps Deps, steps []Filter, r *matching.Results) (*matching.Results, error) {
	for _, step := range steps {
		if !step.IsEnabled() {
			continue
		}
		if err := step.Validate(cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}
	}

	for _, step := range steps {
		if !step.IsEnabled() {
			if deps.Logger != nil {
				deps.Logger.Info("filter disabled", zap.String("name", step.Name()))
			}
			continue
		}

		next, info, err := step.Apply(ctx, deps, r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		if deps.Logger != nil {
			deps.Logger.Info("filter step",
				zap.String("name", step.Name()),
				zap.Int("initial", info.Initial),
				zap.Int("dropped", info.Dropped),
				zap.Int("left", info.Left),
			)
		}

		r = next
	}

	return r, nil
}

// Describe returns status entries for the provided filters.
func Describe(steps []Filter) []Status {
	statuses := make([]Status, 0, len(steps))
	for _, step := range steps {
		if reporter, ok := step.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}

		statuses = append(statuses, Status{
			Name:    step.Name(),
			Enabled: step.IsEnabled(),
		})
	}
	return statuses
}
