package site

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-forge-ssg/internal/source"
)

// ErrConfig reports an unreadable or malformed config file.
var ErrConfig = errors.New("site: invalid config")

// Config lists the targets a build runs, in order.
type Config struct {
	Targets []Target `json:"targets" yaml:"targets"`

	// Source records the file the config was loaded from.
	Source string `json:"-" yaml:"-"`
}

// Target returns the target registered under name.
func (c Config) Target(name string) (Target, bool) {
	for _, t := range c.Targets {
		if t.Name == name {
			return t, true
		}
	}
	return Target{}, false
}

type configOptions struct {
	envFiles []string
	env      map[string]string
}

// ConfigOption customises LoadConfig.
type ConfigOption func(*configOptions)

// WithEnvFile seeds ${VAR} expansion from a dotenv file. Values in the file
// take precedence over the process environment. A missing file is ignored.
func WithEnvFile(path string) ConfigOption {
	return func(opts *configOptions) {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			opts.envFiles = append(opts.envFiles, trimmed)
		}
	}
}

// WithEnv seeds ${VAR} expansion from a map.
func WithEnv(env map[string]string) ConfigOption {
	return func(opts *configOptions) {
		if opts.env == nil {
			opts.env = make(map[string]string, len(env))
		}
		for k, v := range env {
			opts.env[k] = v
		}
	}
}

// LoadConfig reads a YAML or JSON config file. Target paths may reference
// environment variables as ${VAR}; relative paths resolve against the
// directory holding the config file.
func LoadConfig(path string, options ...ConfigOption) (Config, error) {
	opts := configOptions{}
	for _, opt := range options {
		if opt != nil {
			opt(&opts)
		}
	}

	env, err := loadEnv(opts)
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("site: read config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data, path)
	if err != nil {
		return Config{}, err
	}

	base := filepath.Dir(path)
	for i := range cfg.Targets {
		cfg.Targets[i] = resolvePaths(cfg.Targets[i], base, env)
	}
	return cfg, nil
}

// ParseConfig decodes config bytes, trying JSON first and then YAML. Paths
// are returned exactly as written.
func ParseConfig(data []byte, source string) (Config, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Config{}, fmt.Errorf("%w: file %s is empty", ErrConfig, source)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		cfg = Config{}
		if yamlErr := yaml.Unmarshal(data, &cfg); yamlErr != nil {
			return Config{}, fmt.Errorf("%w: parse %s: invalid JSON or YAML", ErrConfig, source)
		}
	}
	cfg.Source = source

	if len(cfg.Targets) == 0 {
		return Config{}, fmt.Errorf("%w: file %s defines no targets", ErrConfig, source)
	}
	seen := make(map[string]struct{}, len(cfg.Targets))
	for i, t := range cfg.Targets {
		name := strings.TrimSpace(t.Name)
		if name == "" {
			name = strings.TrimSpace(t.Preset)
		}
		if name == "" {
			return Config{}, fmt.Errorf("%w: file %s target %d has no name", ErrConfig, source, i)
		}
		if _, dup := seen[name]; dup {
			return Config{}, fmt.Errorf("%w: duplicate target %q (file %s)", ErrConfig, name, source)
		}
		seen[name] = struct{}{}
		cfg.Targets[i].Name = name
	}
	return cfg, nil
}

func loadEnv(opts configOptions) (map[string]string, error) {
	env := make(map[string]string)
	for _, file := range opts.envFiles {
		values, err := godotenv.Read(file)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("site: read env file %s: %w", file, err)
		}
		for k, v := range values {
			env[k] = v
		}
	}
	for k, v := range opts.env {
		env[k] = v
	}
	return env, nil
}

func resolvePaths(t Target, base string, env map[string]string) Target {
	t.Template = resolvePath(t.Template, base, env)
	t.Prerender = resolvePath(t.Prerender, base, env)
	t.Data = resolvePath(t.Data, base, env)
	t.Output = resolvePath(t.Output, base, env)
	return t
}

func resolvePath(raw, base string, env map[string]string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ""
	}
	value = os.Expand(value, func(key string) string {
		if v, ok := env[key]; ok {
			return v
		}
		return os.Getenv(key)
	})
	if source.IsURL(value) || filepath.IsAbs(value) {
		return value
	}
	return filepath.Join(base, value)
}
