package source

import (
	"strings"
)

// Kind identifies where a source is read from.
type Kind int

const (
	KindFile Kind = iota
	KindFS
	KindURL
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindFS:
		return "fs"
	case KindURL:
		return "url"
	default:
		return "unknown"
	}
}

// Source names a template, data file or pre-render input.
type Source struct {
	Kind     Kind
	Location string
}

func (s Source) String() string {
	return s.Location
}

// File returns a Source pointing at a path on disk.
func File(path string) Source {
	return Source{Kind: KindFile, Location: path}
}

// FS returns a Source naming a file inside the loader's fs.FS.
func FS(name string) Source {
	return Source{Kind: KindFS, Location: name}
}

// URL returns a Source fetched over HTTP(S).
func URL(raw string) Source {
	return Source{Kind: KindURL, Location: raw}
}

// IsURL reports whether raw looks like an HTTP(S) location.
func IsURL(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	return strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://")
}
