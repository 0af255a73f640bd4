package merge

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var (
	// ErrNoUnits is returned when a merge is invoked with an empty unit
	// list. Zero units has no defined output, and failing early surfaces
	// configuration mistakes.
	ErrNoUnits = errors.New("merge: at least one unit is required")

	// ErrInvalidSkip is returned when a skip rule carries a negative
	// count. Over-long counts are not errors; they clamp to empty content.
	ErrInvalidSkip = errors.New("merge: negative skip count")
)

// Merge assembles the configured units into one in-memory byte sequence.
func Merge(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := MergeTo(cfg, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MergeToFile assembles the configured units and writes the result to path,
// creating or overwriting it. The result is assembled fully in memory, staged
// in a temporary file next to path and renamed into place, so a failed merge
// never leaves partial output at the destination.
func MergeToFile(cfg Config, path string) error {
	out, err := Merge(cfg)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(out); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// MergeTo writes the assembled byte sequence to w. Units are read once each,
// strictly in order: materialize, trim, enforce the ending newline, then emit
// boundary bytes per the precedence in the package documentation. All skip
// rules are validated before any I/O happens.
func MergeTo(cfg Config, w io.Writer) error {
	if len(cfg.Units) == 0 {
		return ErrNoUnits
	}
	for i, u := range cfg.Units {
		if !u.SkipStart.valid() || !u.SkipEnd.valid() {
			return fmt.Errorf("unit %d: %w", i, ErrInvalidSkip)
		}
	}

	for i, u := range cfg.Units {
		if i == 0 && u.PadBefore != nil {
			if _, err := w.Write(u.PadBefore); err != nil {
				return err
			}
		}

		content, err := u.Source.materialize()
		if err != nil {
			return err
		}
		content = trim(content, u.SkipStart, u.SkipEnd)
		if _, err := w.Write(content); err != nil {
			return err
		}
		if needsNewline(cfg, u, content) {
			if _, err := w.Write(cfg.Newline.bytes()); err != nil {
				return err
			}
		}

		if pad := boundary(cfg, i); len(pad) > 0 {
			if _, err := w.Write(pad); err != nil {
				return err
			}
		}
	}
	return nil
}

// boundary resolves the bytes written after unit i: its trailing padding when
// i is the last unit, otherwise the seam towards unit i+1. Explicit padding
// always beats the separator, and the left unit's PadAfter beats the right
// unit's PadBefore so a seam never carries two paddings.
func boundary(cfg Config, i int) []byte {
	u := cfg.Units[i]
	if i == len(cfg.Units)-1 {
		return u.PadAfter
	}
	if u.PadAfter != nil {
		return u.PadAfter
	}
	if next := cfg.Units[i+1]; next.PadBefore != nil {
		return next.PadBefore
	}
	return cfg.Separator
}

func needsNewline(cfg Config, u Unit, content []byte) bool {
	force := cfg.ForceNewline
	if u.ForceNewline != nil {
		force = *u.ForceNewline
	}
	return force && len(content) > 0 && content[len(content)-1] != '\n'
}
