package site

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

const outputMode os.FileMode = 0o644

// WriteOutput replaces path with data atomically, creating the parent
// directory when needed. Readers never observe a partially written file. An
// existing file keeps its permissions; new files are created 0644.
func WriteOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("site: create output dir %s: %w", dir, err)
		}
	}

	mode := outputMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("site: write output %s: %w", path, err)
	}
	if err := os.Chmod(path, mode); err != nil {
		return fmt.Errorf("site: chmod output %s: %w", path, err)
	}
	return nil
}
