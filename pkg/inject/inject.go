package inject

import (
	"fmt"
	"strings"
)

// Replacement pairs a literal placeholder token with the content that should
// take its place.
type Replacement struct {
	// Placeholder is matched literally, e.g. "<!-- PRODUCTS_DATA_PLACEHOLDER -->".
	Placeholder string

	// Content replaces every occurrence of Placeholder.
	Content string

	// Name describes the content in warnings. Optional.
	Name string
}

// Inject applies the replacements to template in order and returns the final
// document. Each replacement sees the output of the previous one. Every
// occurrence of a placeholder is replaced; a placeholder that does not occur
// leaves the text untouched and produces a warning instead of an error.
func Inject(template string, replacements ...Replacement) (string, []string) {
	text := template
	var warnings []string
	for _, r := range replacements {
		if r.Placeholder == "" || !strings.Contains(text, r.Placeholder) {
			warnings = append(warnings, r.missingWarning())
			continue
		}
		text = strings.ReplaceAll(text, r.Placeholder, r.Content)
	}
	return text, warnings
}

func (r Replacement) missingWarning() string {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		name = "content"
	}
	if r.Placeholder == "" {
		return fmt.Sprintf("empty placeholder, %s not injected", name)
	}
	return fmt.Sprintf("placeholder %s not found, %s not injected", r.Placeholder, name)
}

// Mount builds a replacement for an empty element placeholder such as
// "<forge-app></forge-app>", keeping the element and placing markup inside
// it. Placeholders that are not an empty open/close pair are replaced by the
// markup as-is.
func Mount(placeholder, markup string) Replacement {
	content := markup
	if open, closing, ok := splitEmptyElement(placeholder); ok {
		content = open + markup + closing
	}
	return Replacement{
		Placeholder: placeholder,
		Content:     content,
		Name:        "pre-rendered markup",
	}
}

func splitEmptyElement(token string) (string, string, bool) {
	if !strings.HasPrefix(token, "<") || !strings.HasSuffix(token, ">") {
		return "", "", false
	}
	idx := strings.Index(token, "></")
	if idx < 0 {
		return "", "", false
	}
	open, closing := token[:idx+1], token[idx+1:]

	name := strings.TrimPrefix(open, "<")
	name = strings.TrimSuffix(name, ">")
	if fields := strings.Fields(name); len(fields) > 0 {
		name = fields[0]
	} else {
		return "", "", false
	}
	if closing != "</"+name+">" {
		return "", "", false
	}
	return open, closing, true
}
