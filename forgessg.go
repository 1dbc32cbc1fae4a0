package forgessg

import (
	"context"

	"github.com/goliatone/go-forge-ssg/pkg/inject"
	"github.com/goliatone/go-forge-ssg/pkg/site"
)

// Target aliases site.Target so callers can describe builds from the
// top-level package.
type Target = site.Target

// Report aliases site.Report.
type Report = site.Report

// Replacement aliases inject.Replacement.
type Replacement = inject.Replacement

// Inject substitutes each placeholder in template in order. Missing
// placeholders produce warnings rather than errors.
func Inject(template string, replacements ...Replacement) (string, []string) {
	return inject.Inject(template, replacements...)
}

// Build runs a single target with a builder configured by options.
func Build(ctx context.Context, target Target, options ...site.Option) (Report, error) {
	return site.New(options...).Build(ctx, target)
}

// BuildFile loads a config file and builds the named targets, or all of them
// when names is empty.
func BuildFile(ctx context.Context, configPath string, names []string, options ...site.Option) ([]Report, error) {
	cfg, err := site.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	return site.New(options...).BuildConfig(ctx, cfg, names...)
}

// PresetTarget returns a target seeded with a preset's conventional paths.
func PresetTarget(name string) (Target, bool) {
	preset, ok := site.LookupPreset(name)
	if !ok {
		return Target{}, false
	}
	return preset.Target(), true
}
