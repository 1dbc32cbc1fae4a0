package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-forge-ssg/pkg/site"
)

func initCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "write a starter config file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "config file to create",
				Value:   defaultConfigPath,
			},
			&cli.StringSliceFlag{Name: "preset", Usage: "presets to include (default: all)"},
			&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "accept defaults without prompting"},
			&cli.BoolFlag{Name: "force", Usage: "overwrite an existing config file"},
		},
		Action: runInit,
	}
}

func runInit(c *cli.Context) error {
	path := c.String("config")
	if !c.Bool("force") {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("init: %s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("init: stat %s: %w", path, err)
		}
	}

	var p prompter
	if !c.Bool("yes") && interactive() {
		p = surveyPrompter{}
	}

	cfg, err := scaffoldConfig(c.Context, p, c.StringSlice("preset"))
	if err != nil {
		return err
	}
	data, err := encodeConfig(cfg)
	if err != nil {
		return err
	}
	if err := site.WriteOutput(path, data); err != nil {
		return fmt.Errorf("init: %w", err)
	}
	fmt.Fprintf(c.App.Writer, "Config written to %s (%d targets)\n", path, len(cfg.Targets))
	return nil
}

// scaffoldConfig builds a config from the selected presets. With a nil
// prompter the preset paths are used unchanged.
func scaffoldConfig(ctx context.Context, p prompter, selected []string) (site.Config, error) {
	names := selected
	if len(names) == 0 {
		names = site.PresetNames()
	}
	if p != nil {
		chosen, err := p.MultiSelect(ctx, "Which site layouts should be built?", site.PresetNames(), names)
		if err != nil {
			return site.Config{}, err
		}
		names = chosen
	}

	var cfg site.Config
	for _, name := range names {
		preset, ok := site.LookupPreset(strings.TrimSpace(name))
		if !ok {
			return site.Config{}, fmt.Errorf("init: unknown preset %q (available: %s)", name, strings.Join(site.PresetNames(), ", "))
		}
		target := preset.Target()
		if p != nil {
			var err error
			if target, err = promptTarget(ctx, p, target); err != nil {
				return site.Config{}, err
			}
		}
		cfg.Targets = append(cfg.Targets, target)
	}
	if len(cfg.Targets) == 0 {
		return site.Config{}, errors.New("init: no presets selected")
	}
	return cfg, nil
}

type pathPrompt struct {
	label string
	value *string
}

func promptTarget(ctx context.Context, p prompter, target site.Target) (site.Target, error) {
	fields := []pathPrompt{
		{"template", &target.Template},
		{"data file", &target.Data},
		{"output", &target.Output},
	}
	if target.Prerender != "" {
		fields = append(fields, pathPrompt{"pre-rendered markup", &target.Prerender})
	}
	for _, f := range fields {
		answer, err := p.Input(ctx, fmt.Sprintf("[%s] %s path", target.Name, f.label), *f.value)
		if err != nil {
			return site.Target{}, err
		}
		*f.value = strings.TrimSpace(answer)
	}
	if target.Prerender != "" {
		sanitize, err := p.Confirm(ctx, fmt.Sprintf("[%s] sanitize pre-rendered markup?", target.Name), false)
		if err != nil {
			return site.Target{}, err
		}
		target.Sanitize = sanitize
	}
	return target, nil
}

func encodeConfig(cfg site.Config) ([]byte, error) {
	var b strings.Builder
	b.WriteString("# forge-ssg build targets. Relative paths resolve against this file.\n")
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("init: encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("init: encode config: %w", err)
	}
	return []byte(b.String()), nil
}
