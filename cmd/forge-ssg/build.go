package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/goliatone/go-forge-ssg/pkg/site"
)

func buildCommand() *cli.Command {
	return &cli.Command{
		Name:      "build",
		Usage:     "build targets from a config file or a single preset target from flags",
		ArgsUsage: "[target...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "config file listing build targets",
				Value:   defaultConfigPath,
				EnvVars: []string{"FORGE_SSG_CONFIG"},
			},
			&cli.StringFlag{Name: "env-file", Usage: "dotenv file used to expand ${VAR} in config paths", Value: ".env"},
			&cli.StringFlag{Name: "preset", Usage: "build one target from flags using this preset"},
			&cli.StringFlag{Name: "template", Usage: "template HTML path"},
			&cli.StringFlag{Name: "prerender", Usage: "optional pre-rendered component HTML path"},
			&cli.StringFlag{Name: "data", Usage: "JSON data path"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "output HTML path"},
			&cli.StringFlag{Name: "data-placeholder", Usage: "override the data placeholder token"},
			&cli.StringFlag{Name: "script-id", Usage: "override the inlined script element id"},
			&cli.BoolFlag{Name: "sanitize", Usage: "sanitize pre-rendered markup before mounting it"},
			&cli.BoolFlag{Name: "allow-http", Usage: "allow http(s) locations for inputs"},
			&cli.DurationFlag{Name: "http-timeout", Usage: "timeout for http(s) inputs"},
		},
		Action: runBuild,
	}
}

func runBuild(c *cli.Context) error {
	logger := newLogger(c.App.Writer, c.Bool("verbose"))
	defer func() { _ = logger.Sync() }()

	options := []site.Option{site.WithLogger(logger)}
	if c.Bool("allow-http") {
		options = append(options, site.WithHTTPFallback(c.Duration("http-timeout")))
	}
	builder := site.New(options...)

	var (
		reports []site.Report
		err     error
	)
	if adHoc(c) {
		var report site.Report
		report, err = builder.Build(c.Context, targetFromFlags(c))
		if err == nil {
			reports = append(reports, report)
		}
	} else {
		var cfg site.Config
		cfg, err = site.LoadConfig(c.String("config"), site.WithEnvFile(c.String("env-file")))
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("%w (run `forge-ssg init` or pass --preset with --template, --data and --output)", err)
			}
			return err
		}
		reports, err = builder.BuildConfig(c.Context, cfg, c.Args().Slice()...)
	}

	for _, report := range reports {
		printReport(c.App.Writer, report)
	}
	return err
}

func adHoc(c *cli.Context) bool {
	for _, name := range []string{"preset", "template", "data", "output"} {
		if c.IsSet(name) {
			return true
		}
	}
	return false
}

func targetFromFlags(c *cli.Context) site.Target {
	return site.Target{
		Name:            c.String("preset"),
		Preset:          c.String("preset"),
		Template:        strings.TrimSpace(c.String("template")),
		Prerender:       strings.TrimSpace(c.String("prerender")),
		Data:            strings.TrimSpace(c.String("data")),
		Output:          strings.TrimSpace(c.String("output")),
		DataPlaceholder: c.String("data-placeholder"),
		ScriptID:        c.String("script-id"),
		Sanitize:        c.Bool("sanitize"),
	}
}

func printReport(w io.Writer, r site.Report) {
	fmt.Fprintf(w, "✓ SSG build complete → %s\n", r.Output)
	if r.PrerenderInjected() {
		fmt.Fprintf(w, "  Pre-rendered component HTML injected from %s\n", r.PrerenderSource)
	}
	fmt.Fprintf(w, "  Inlined %d %s from %s\n", r.Records, r.Label, r.DataSource)
	if n := len(r.Warnings); n > 0 {
		fmt.Fprintf(w, "  %d warning(s)\n", n)
	}
}
