package site

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-forge-ssg/internal/source"
	"github.com/goliatone/go-forge-ssg/pkg/inject"
	"github.com/goliatone/go-forge-ssg/pkg/jsondata"
)

// Option customises a Builder.
type Option func(*Builder)

// WithLogger routes progress and warning messages to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithFileSystem reads template, pre-render and data paths from fsys instead
// of the operating system. Outputs are always written to disk.
func WithFileSystem(fsys fs.FS) Option {
	return func(b *Builder) {
		b.sourceOpts.FileSystem = fsys
	}
}

// WithHTTPClient allows http(s) locations for template, pre-render and data
// inputs using client.
func WithHTTPClient(client *http.Client) Option {
	return func(b *Builder) {
		b.sourceOpts.HTTPClient = client
	}
}

// WithHTTPFallback allows http(s) inputs using a default client with the
// given timeout.
func WithHTTPFallback(timeout time.Duration) Option {
	return func(b *Builder) {
		b.sourceOpts.AllowHTTP = true
		b.sourceOpts.Timeout = timeout
	}
}

// Builder runs targets. The zero value is not usable; call New.
type Builder struct {
	logger     *zap.Logger
	sourceOpts source.Options
	loader     *source.Loader
}

// New constructs a Builder. Without options it reads from disk, refuses
// http(s) inputs and discards log output.
func New(options ...Option) *Builder {
	b := &Builder{logger: zap.NewNop()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	b.loader = source.New(b.sourceOpts)
	return b
}

// Report summarises a finished target build.
type Report struct {
	Target string
	Output string

	// PrerenderSource is set when pre-rendered markup was mounted.
	PrerenderSource string

	DataSource string
	Label      string
	Records    int

	Warnings []string
}

// PrerenderInjected reports whether pre-rendered markup made it into the
// output.
func (r Report) PrerenderInjected() bool {
	return r.PrerenderSource != ""
}

// Build runs a single target: read the template, mount optional pre-rendered
// markup, inline the data file and write the output. Missing placeholders
// are reported as warnings; unreadable required inputs and malformed JSON
// are returned as errors and nothing is written.
func (b *Builder) Build(ctx context.Context, target Target) (Report, error) {
	resolved, err := target.Resolve()
	if err != nil {
		return Report{}, err
	}
	if err := resolved.Validate(); err != nil {
		return Report{}, err
	}
	logger := b.logger.With(zap.String("target", resolved.Name))

	template, err := b.loader.LoadText(ctx, b.source(resolved.Template))
	if err != nil {
		return Report{}, fmt.Errorf("site: read template %s: %w", resolved.Template, err)
	}

	report := Report{
		Target:     resolved.Name,
		Output:     resolved.Output,
		DataSource: resolved.Data,
		Label:      resolved.Label,
	}

	var replacements []inject.Replacement
	mounted := false
	if resolved.Prerender != "" {
		markup, ok, err := b.loadOptional(ctx, resolved.Prerender)
		if err != nil {
			return Report{}, fmt.Errorf("site: read pre-render %s: %w", resolved.Prerender, err)
		}
		if ok {
			if resolved.Sanitize {
				markup = sanitizeMarkup(markup, resolved.AllowElements)
			}
			replacements = append(replacements, inject.Mount(resolved.MountPlaceholder, markup))
			mounted = strings.Contains(template, resolved.MountPlaceholder)
		} else {
			logger.Debug("pre-render source not found, skipping", zap.String("path", resolved.Prerender))
		}
	}

	raw, err := b.loader.Load(ctx, b.source(resolved.Data))
	if err != nil {
		return Report{}, fmt.Errorf("site: read data %s: %w", resolved.Data, err)
	}
	data, err := jsondata.Decode(raw)
	if err != nil {
		return Report{}, fmt.Errorf("site: parse data %s: %w", resolved.Data, err)
	}
	replacements = append(replacements, inject.Replacement{
		Placeholder: resolved.DataPlaceholder,
		Content:     jsondata.ScriptBlock(resolved.ScriptID, data),
		Name:        "inlined data",
	})

	document, warnings := inject.Inject(template, replacements...)
	for _, warning := range warnings {
		logger.Warn(warning)
	}

	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	if err := WriteOutput(resolved.Output, []byte(document)); err != nil {
		return Report{}, err
	}

	if mounted {
		report.PrerenderSource = resolved.Prerender
	}
	report.Records = jsondata.Len(data)
	report.Warnings = warnings

	logger.Debug("output written", zap.String("path", resolved.Output), zap.Int("bytes", len(document)))
	if mounted {
		logger.Debug("pre-rendered markup mounted", zap.String("from", resolved.Prerender))
	}
	logger.Debug(fmt.Sprintf("inlined %d %s", report.Records, resolved.Label), zap.String("from", resolved.Data))

	return report, nil
}

// BuildConfig runs the named targets from cfg in config order, or every
// target when names is empty. It stops at the first failing target and
// returns the reports of the targets that completed.
func (b *Builder) BuildConfig(ctx context.Context, cfg Config, names ...string) ([]Report, error) {
	targets, err := selectTargets(cfg, names)
	if err != nil {
		return nil, err
	}

	reports := make([]Report, 0, len(targets))
	for _, t := range targets {
		if err := ctx.Err(); err != nil {
			return reports, err
		}
		report, err := b.Build(ctx, t)
		if err != nil {
			return reports, fmt.Errorf("site: build %q: %w", t.Name, err)
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func selectTargets(cfg Config, names []string) ([]Target, error) {
	if len(names) == 0 {
		return cfg.Targets, nil
	}
	wanted := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, ok := cfg.Target(name); !ok {
			return nil, fmt.Errorf("%w: unknown target %q", ErrConfig, name)
		}
		wanted[name] = struct{}{}
	}
	var out []Target
	for _, t := range cfg.Targets {
		if _, ok := wanted[t.Name]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (b *Builder) loadOptional(ctx context.Context, location string) (string, bool, error) {
	text, err := b.loader.LoadText(ctx, b.source(location))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, err
	}
	return text, true, nil
}

func (b *Builder) source(location string) source.Source {
	switch {
	case source.IsURL(location):
		return source.URL(strings.TrimSpace(location))
	case b.sourceOpts.FileSystem != nil:
		return source.FS(location)
	default:
		return source.File(location)
	}
}
