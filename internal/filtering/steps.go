package filtering

import (
	"context"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/smartresume/resume-matcher/internal/catalog"
	"github.com/smartresume/resume-matcher/internal/matching"
)

type tierFilter struct {
	disabled bool
	reason   string
	tier     matching.Tier
	tiers    matching.Tiers
}

// NewTier creates a filter that keeps only results in the configured tier.
func NewTier() Filter {
	return &tierFilter{}
}

func (f *tierFilter) Name() string { return "tier" }

func (f *tierFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *tierFilter) IsEnabled() bool { return !f.disabled }

func (f *tierFilter) Validate(cfg *Config) error {
	f.tier = matching.TierAll
	f.tiers = matching.DefaultTiers()
	if cfg == nil {
		return nil
	}

	tier, err := matching.ParseTier(cfg.Tier)
	if err != nil {
		return err
	}

	f.tier = tier
	if cfg.Tiers.High > 0 && cfg.Tiers.Medium > 0 {
		f.tiers = cfg.Tiers
	}
	return nil
}

func (f *tierFilter) Apply(_ context.Context, deps Deps, r *matching.Results) (*matching.Results, Step, error) {
	initial := r.Len()
	dropped := r.KeepTier(f.tier, f.tiers)
	if deps.Logger != nil && len(dropped) > 0 {
		deps.Logger.Info("excluding matches outside the requested tier",
			zap.String("tier", string(f.tier)),
			zap.Strings("excluded_matches", dropped),
			zap.Int("matches_left", r.Len()),
		)
	}

	return r, Step{Initial: initial, Dropped: len(dropped), Left: r.Len()}, nil
}

func (f *tierFilter) Status() Status {
	details := map[string]string{
		"tier":             string(f.tier),
		"high_threshold":   strconv.Itoa(f.tiers.High),
		"medium_threshold": strconv.Itoa(f.tiers.Medium),
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}

type minScoreFilter struct {
	min int
}

// NewMinScore creates a filter that drops results below a minimum score.
func NewMinScore() Filter {
	return &minScoreFilter{}
}

func (f *minScoreFilter) Name() string { return "min_score" }

func (f *minScoreFilter) Disable(string) {}

func (f *minScoreFilter) IsEnabled() bool { return true }

func (f *minScoreFilter) Validate(cfg *Config) error {
	f.min = 0
	if cfg != nil {
		f.min = cfg.MinScore
	}
	return nil
}

func (f *minScoreFilter) Apply(_ context.Context, deps Deps, r *matching.Results) (*matching.Results, Step, error) {
	initial := r.Len()
	if f.min <= 0 {
		return r, Step{Initial: initial, Dropped: 0, Left: r.Len()}, nil
	}

	dropped := r.KeepMinScore(f.min)
	if deps.Logger != nil && len(dropped) > 0 {
		deps.Logger.Info("excluding matches below minimum score",
			zap.Int("min_score", f.min),
			zap.Strings("excluded_matches", dropped),
			zap.Int("matches_left", r.Len()),
		)
	}

	return r, Step{Initial: initial, Dropped: len(dropped), Left: r.Len()}, nil
}

func (f *minScoreFilter) Status() Status {
	return Status{Name: f.Name(), Enabled: true, Details: map[string]string{
		"min_score": strconv.Itoa(f.min),
	}}
}

type companiesFilter struct {
	companies []string
}

// NewCompanies creates a filter that removes matches from companies excluded in the config.
func NewCompanies() Filter {
	return &companiesFilter{}
}

func (f *companiesFilter) Name() string { return "companies" }

func (f *companiesFilter) Disable(string) {}

func (f *companiesFilter) IsEnabled() bool { return true }

func (f *companiesFilter) Validate(cfg *Config) error {
	f.companies = nil
	if cfg != nil {
		f.companies = append(f.companies, cfg.Companies...)
	}
	return nil
}

func (f *companiesFilter) Apply(_ context.Context, deps Deps, r *matching.Results) (*matching.Results, Step, error) {
	initial := r.Len()
	if len(f.companies) == 0 {
		return r, Step{Initial: initial, Dropped: 0, Left: r.Len()}, nil
	}

	dropped := r.Exclude(matching.ResultCompanyField, f.companies)
	if deps.Logger != nil && len(dropped) > 0 {
		deps.Logger.Info("excluding matches by companies",
			zap.Strings("excluded_companies", f.companies),
			zap.Strings("excluded_matches", dropped),
			zap.Int("matches_left", r.Len()),
		)
	}

	return r, Step{Initial: initial, Dropped: len(dropped), Left: r.Len()}, nil
}

func (f *companiesFilter) Status() Status {
	details := map[string]string{}
	if len(f.companies) > 0 {
		details["companies"] = strings.Join(f.companies, ",")
	}
	return Status{Name: f.Name(), Enabled: true, Details: details}
}

type excludeFileFilter struct {
	path string
}

// NewExcludeFile creates a filter that removes postings recorded in the exclude file.
func NewExcludeFile() Filter {
	return &excludeFileFilter{}
}

func (f *excludeFileFilter) Name() string { return "exclude_file" }

func (f *excludeFileFilter) Disable(string) {}

func (f *excludeFileFilter) IsEnabled() bool { return true }

func (f *excludeFileFilter) Validate(*Config) error {
	f.path = strings.TrimSpace(viper.GetString("exclude-file"))
	return nil
}

func (f *excludeFileFilter) Apply(_ context.Context, deps Deps, r *matching.Results) (*matching.Results, Step, error) {
	initial := r.Len()
	if f.path == "" {
		return r, Step{Initial: initial, Dropped: 0, Left: r.Len()}, nil
	}

	seen, err := catalog.SeenJobsFromFile(f.path)
	if err != nil {
		return r, Step{}, err
	}

	dropped := r.Exclude(matching.ResultSourceURLField, seen.SourceURLs())
	if deps.Logger != nil && len(dropped) > 0 {
		deps.Logger.Info("excluding matches based on exclude file",
			zap.String("path", f.path),
			zap.Strings("excluded_matches", dropped),
			zap.Int("matches_left", r.Len()),
		)
	}

	return r, Step{Initial: initial, Dropped: len(dropped), Left: r.Len()}, nil
}

func (f *excludeFileFilter) Status() Status {
	details := map[string]string{}
	if f.path != "" {
		details["path"] = f.path
	}
	return Status{Name: f.Name(), Enabled: true, Details: details}
}
