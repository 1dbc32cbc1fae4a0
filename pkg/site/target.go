package site

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTarget reports a target that cannot be built as configured.
var ErrInvalidTarget = errors.New("site: invalid target")

// DefaultMountPlaceholder is the empty custom element that receives
// pre-rendered component markup.
const DefaultMountPlaceholder = "<forge-app></forge-app>"

const defaultLabel = "records"

// Target describes a single template-to-output build.
type Target struct {
	Name   string `json:"name" yaml:"name"`
	Preset string `json:"preset,omitempty" yaml:"preset,omitempty"`

	Template string `json:"template" yaml:"template"`
	Output   string `json:"output" yaml:"output"`

	// Prerender is optional; a missing file is skipped silently.
	Prerender        string `json:"prerender,omitempty" yaml:"prerender,omitempty"`
	MountPlaceholder string `json:"mount_placeholder,omitempty" yaml:"mount_placeholder,omitempty"`

	Data            string `json:"data" yaml:"data"`
	DataPlaceholder string `json:"data_placeholder,omitempty" yaml:"data_placeholder,omitempty"`
	ScriptID        string `json:"script_id,omitempty" yaml:"script_id,omitempty"`

	// Label names the inlined records in the build summary.
	Label string `json:"label,omitempty" yaml:"label,omitempty"`

	// Sanitize runs pre-rendered markup through an HTML sanitizer before it
	// is mounted. AllowElements extends the allowed element list.
	Sanitize      bool     `json:"sanitize,omitempty" yaml:"sanitize,omitempty"`
	AllowElements []string `json:"allow_elements,omitempty" yaml:"allow_elements,omitempty"`
}

// Resolve fills empty fields from the named preset and the built-in defaults.
func (t Target) Resolve() (Target, error) {
	if name := strings.TrimSpace(t.Preset); name != "" {
		preset, ok := LookupPreset(name)
		if !ok {
			return Target{}, fmt.Errorf("%w: unknown preset %q", ErrInvalidTarget, name)
		}
		t = preset.apply(t)
	}
	if t.MountPlaceholder == "" {
		t.MountPlaceholder = DefaultMountPlaceholder
	}
	if t.Label == "" {
		t.Label = defaultLabel
	}
	if t.Name == "" {
		t.Name = t.Preset
	}
	return t, nil
}

// Validate reports missing or malformed fields.
func (t Target) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"template", t.Template},
		{"data", t.Data},
		{"output", t.Output},
		{"data_placeholder", t.DataPlaceholder},
		{"script_id", t.ScriptID},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%w %s: %s is required", ErrInvalidTarget, t.display(), r.field)
		}
	}
	if strings.ContainsAny(t.ScriptID, "\"<> \t\n") {
		return fmt.Errorf("%w %s: script_id %q is not a valid id attribute", ErrInvalidTarget, t.display(), t.ScriptID)
	}
	return nil
}

func (t Target) display() string {
	if t.Name == "" {
		return "(unnamed)"
	}
	return fmt.Sprintf("%q", t.Name)
}
