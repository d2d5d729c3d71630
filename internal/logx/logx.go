package logx

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// DefaultFileName is the well-known launch log name inside the OS temp
// directory. Every launcher run starts the file fresh.
const DefaultFileName = "voicebox-launch.log"

// DefaultPath returns the launch log location inside the OS temp directory.
func DefaultPath() string {
	return filepath.Join(os.TempDir(), DefaultFileName)
}

// New opens the launch log at the default path. See NewAt.
func New() (*log.Logger, io.Closer, error) {
	return NewAt(DefaultPath())
}

// NewAt truncates and opens the launch log at path, returning a logger that
// timestamps every line. The returned closer should be closed when logging is
// no longer needed; each append hits the file directly, so a missed close
// loses nothing.
func NewAt(path string) (*log.Logger, io.Closer, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("ensure log directory: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.New(file, "", log.LstdFlags)
	return logger, file, nil
}

// Discard returns a logger that drops everything. Used when the launch log
// cannot be opened; logging is best-effort and must never block a launch.
func Discard() *log.Logger {
	return log.New(io.Discard, "", 0)
}
