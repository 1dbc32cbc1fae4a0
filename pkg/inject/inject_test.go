package inject_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-forge-ssg/pkg/inject"
)

func TestInject_ReplacesPlaceholder(t *testing.T) {
	got, warnings := inject.Inject("<html><!-- DATA --></html>", inject.Replacement{
		Placeholder: "<!-- DATA -->",
		Content:     "<p>hi</p>",
	})
	if want := "<html><p>hi</p></html>"; got != want {
		t.Fatalf("inject mismatch\nwant: %q\n got: %q", want, got)
	}
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
}

func TestInject_ReplacesAllOccurrences(t *testing.T) {
	got, _ := inject.Inject("a X b X c", inject.Replacement{Placeholder: "X", Content: "Y"})
	if got != "a Y b Y c" {
		t.Fatalf("expected every occurrence replaced, got %q", got)
	}
}

func TestInject_MissingPlaceholderWarns(t *testing.T) {
	template := "<html><body></body></html>"
	got, warnings := inject.Inject(template, inject.Replacement{
		Placeholder: "<!-- PRODUCTS_DATA_PLACEHOLDER -->",
		Content:     "ignored",
		Name:        "inlined data",
	})
	if got != template {
		t.Fatalf("expected template unchanged, got %q", got)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected one warning, got %v", warnings)
	}
	if !strings.Contains(warnings[0], "<!-- PRODUCTS_DATA_PLACEHOLDER -->") {
		t.Fatalf("warning should name the placeholder: %q", warnings[0])
	}
	if !strings.Contains(warnings[0], "inlined data") {
		t.Fatalf("warning should name the content: %q", warnings[0])
	}
}

func TestInject_EmptyPlaceholderWarns(t *testing.T) {
	got, warnings := inject.Inject("abc", inject.Replacement{Content: "zzz"})
	if got != "abc" {
		t.Fatalf("expected template unchanged, got %q", got)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected one warning, got %v", warnings)
	}
}

func TestInject_AppliesSequentially(t *testing.T) {
	got, warnings := inject.Inject("[A]",
		inject.Replacement{Placeholder: "A", Content: "B-B"},
		inject.Replacement{Placeholder: "B", Content: "C"},
		inject.Replacement{Placeholder: "missing", Content: "nope"},
	)
	if got != "[C-C]" {
		t.Fatalf("expected later replacement to see earlier output, got %q", got)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected one warning, got %v", warnings)
	}
}

func TestInject_NoReplacements(t *testing.T) {
	got, warnings := inject.Inject("unchanged")
	if got != "unchanged" || warnings != nil {
		t.Fatalf("unexpected result %q %v", got, warnings)
	}
}

func TestMount(t *testing.T) {
	cases := []struct {
		name        string
		placeholder string
		markup      string
		want        string
	}{
		{
			name:        "empty element",
			placeholder: "<forge-app></forge-app>",
			markup:      "<main>ssg</main>",
			want:        "<forge-app><main>ssg</main></forge-app>",
		},
		{
			name:        "element with attributes",
			placeholder: `<forge-app id="root"></forge-app>`,
			markup:      "x",
			want:        `<forge-app id="root">x</forge-app>`,
		},
		{
			name:        "comment marker",
			placeholder: "<!-- APP -->",
			markup:      "x",
			want:        "x",
		},
		{
			name:        "mismatched tags",
			placeholder: "<a></b>",
			markup:      "x",
			want:        "x",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := inject.Mount(tc.placeholder, tc.markup)
			if r.Placeholder != tc.placeholder {
				t.Fatalf("placeholder changed: %q", r.Placeholder)
			}
			if diff := cmp.Diff(tc.want, r.Content); diff != "" {
				t.Fatalf("content mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMount_InjectsIntoTemplate(t *testing.T) {
	got, warnings := inject.Inject(
		"<body><forge-app></forge-app></body>",
		inject.Mount("<forge-app></forge-app>", "<h1>Listings</h1>"),
	)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if want := "<body><forge-app><h1>Listings</h1></forge-app></body>"; got != want {
		t.Fatalf("mount mismatch\nwant: %q\n got: %q", want, got)
	}
}
