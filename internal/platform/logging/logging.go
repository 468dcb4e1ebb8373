package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	hclog "github.com/hashicorp/go-hclog"
)

const rootName = "wellness"

// New builds the root logger writing to out at the given level name.
func New(level string, out io.Writer) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   rootName,
		Level:  hclog.LevelFromString(level),
		Output: out,
	})
}

// NewFile builds a logger that appends to path. The returned closer owns the file.
func NewFile(level, path string) (hclog.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(level, f), f, nil
}

// Discard is used by tests and by adapters constructed without a logger.
func Discard() hclog.Logger {
	return hclog.NewNullLogger()
}
