package merge

import (
	"fmt"
	"os"
)

// Source is a readable byte origin: either a file path or an in-memory
// buffer. The zero value materializes as empty content.
type Source struct {
	path string
	data []byte
	file bool
}

// File returns a Source that reads the file at path when the merge runs.
func File(path string) Source {
	return Source{path: path, file: true}
}

// Buffer returns a Source backed by data. The slice is borrowed for the
// duration of one merge call and is never modified.
func Buffer(data []byte) Source {
	return Source{data: data}
}

// materialize returns the full contents of the source. A file source performs
// exactly one read-to-completion per merge pass; a buffer source returns its
// slice as-is without copying.
func (s Source) materialize() ([]byte, error) {
	if !s.file {
		return s.data, nil
	}
	content, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read source %s: %w", s.path, err)
	}
	return content, nil
}
