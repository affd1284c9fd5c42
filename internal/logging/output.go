package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// CreateWriter resolves a log output name into a writer:
//   - "stderr" or "" - os.Stderr
//   - "stdout" - os.Stdout
//   - "file:///path/to/file" or any path containing a separator - appends to that file
func CreateWriter(output string) (io.Writer, error) {
	switch {
	case output == "" || output == "stderr":
		return os.Stderr, nil
	case output == "stdout":
		return os.Stdout, nil
	case strings.HasPrefix(output, "file://"):
		return openLogFile(strings.TrimPrefix(output, "file://"))
	case isFilePath(output):
		return openLogFile(output)
	default:
		return nil, fmt.Errorf("unsupported log output: %s", output)
	}
}

// isFilePath rejects URLs with schemes other than file:// and accepts anything path-like
func isFilePath(path string) bool {
	if strings.Contains(path, "://") {
		return false
	}
	return strings.ContainsAny(path, `/\`)
}

// openLogFile opens filePath for appending, creating parent directories as needed
func openLogFile(filePath string) (io.Writer, error) {
	dir := filepath.Dir(filePath)
	if dir != "." && dir != "/" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	return file, nil
}
