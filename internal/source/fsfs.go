package source

import (
	"context"
	"errors"
	"io/fs"
	"path"
	"strings"
)

func loadFromFS(ctx context.Context, filesystem fs.FS, name string) ([]byte, error) {
	if filesystem == nil {
		return nil, errors.New("source loader: filesystem is not configured")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	clean := path.Clean(strings.TrimPrefix(name, "./"))
	return fs.ReadFile(filesystem, clean)
}
