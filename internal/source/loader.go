// Package source reads build inputs from disk, an fs.FS or HTTP.
package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"time"
)

// Options configures a Loader.
type Options struct {
	// FileSystem serves KindFS sources.
	FileSystem fs.FS

	// HTTPClient serves KindURL sources. Nil disables HTTP unless
	// AllowHTTP is set.
	HTTPClient *http.Client

	// AllowHTTP enables a default client when HTTPClient is nil.
	AllowHTTP bool

	// Timeout caps each HTTP request.
	Timeout time.Duration
}

// Loader fetches raw bytes for a Source. Missing inputs are reported with
// errors matching fs.ErrNotExist regardless of the source kind.
type Loader struct {
	fs      fs.FS
	http    *http.Client
	timeout time.Duration
}

// New constructs a Loader from options.
func New(options Options) *Loader {
	var client *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if options.Timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = options.Timeout
		}
		client = &clone
	case options.AllowHTTP:
		client = &http.Client{Timeout: options.Timeout}
	}
	return &Loader{
		fs:      options.FileSystem,
		http:    client,
		timeout: options.Timeout,
	}
}

// Load returns the raw content of src.
func (l *Loader) Load(ctx context.Context, src Source) ([]byte, error) {
	if strings.TrimSpace(src.Location) == "" {
		return nil, errors.New("source loader: location is required")
	}
	switch src.Kind {
	case KindFile:
		return loadFile(ctx, src.Location)
	case KindFS:
		return loadFromFS(ctx, l.fs, src.Location)
	case KindURL:
		if l.http == nil {
			return nil, errors.New("source loader: http support disabled")
		}
		return loadHTTP(ctx, l.http, src.Location, l.timeout)
	default:
		return nil, fmt.Errorf("source loader: unsupported source kind %v", src.Kind)
	}
}

// LoadText returns src as text with "\r\n" and lone "\r" line endings
// converted to "\n".
func (l *Loader) LoadText(ctx context.Context, src Source) (string, error) {
	data, err := l.Load(ctx, src)
	if err != nil {
		return "", err
	}
	return NormalizeNewlines(string(data)), nil
}

// NormalizeNewlines converts "\r\n" and "\r" to "\n".
func NormalizeNewlines(text string) string {
	if !strings.Contains(text, "\r") {
		return text
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
