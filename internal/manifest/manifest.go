// Package manifest loads YAML merge descriptions and turns them into merge
// configurations.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"filemerge/pkg/merge"
)

// Manifest is the on-disk YAML description of one merge run.
//
// Example:
//
//	output: merged.txt
//	separator: "---\n"
//	newline: true
//	units:
//	  - path: header.txt
//	  - path: chapter1.txt
//	    skip_start: {lines: 1}
//	  - content: "generated footer"
//	    pad_before: "\n"
type Manifest struct {
	Output    string     `yaml:"output,omitempty"`
	Separator *string    `yaml:"separator,omitempty"`
	Newline   bool       `yaml:"newline,omitempty"`
	CRLF      bool       `yaml:"crlf,omitempty"`
	Units     []UnitSpec `yaml:"units"`
}

// UnitSpec describes one unit. Exactly one of Path and Content must be set.
type UnitSpec struct {
	Path      string    `yaml:"path,omitempty"`
	Content   *string   `yaml:"content,omitempty"`
	SkipStart *SkipSpec `yaml:"skip_start,omitempty"`
	SkipEnd   *SkipSpec `yaml:"skip_end,omitempty"`
	PadBefore *string   `yaml:"pad_before,omitempty"`
	PadAfter  *string   `yaml:"pad_after,omitempty"`
	Newline   *bool     `yaml:"newline,omitempty"`
}

// SkipSpec selects exactly one skip rule.
type SkipSpec struct {
	Bytes   *int    `yaml:"bytes,omitempty"`
	Lines   *int    `yaml:"lines,omitempty"`
	Past    *string `yaml:"past,omitempty"`
	To      *string `yaml:"to,omitempty"`
	Repeats *string `yaml:"repeats,omitempty"`
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	return &m, nil
}

// Config validates the manifest and builds the merge configuration it
// describes.
func (m *Manifest) Config() (merge.Config, error) {
	cfg := merge.Config{
		ForceNewline: m.Newline,
	}
	if m.CRLF {
		cfg.Newline = merge.CRLF
	}
	if m.Separator != nil {
		cfg.Separator = []byte(*m.Separator)
	}

	for i, u := range m.Units {
		unit, err := u.unit()
		if err != nil {
			return merge.Config{}, fmt.Errorf("unit %d: %w", i, err)
		}
		cfg.Units = append(cfg.Units, unit)
	}
	return cfg, nil
}

func (u UnitSpec) unit() (merge.Unit, error) {
	var unit merge.Unit
	switch {
	case u.Path != "" && u.Content != nil:
		return unit, fmt.Errorf("path and content are mutually exclusive")
	case u.Path != "":
		unit.Source = merge.File(u.Path)
	case u.Content != nil:
		unit.Source = merge.Buffer([]byte(*u.Content))
	default:
		return unit, fmt.Errorf("either path or content is required")
	}

	var err error
	if unit.SkipStart, err = u.SkipStart.rule(); err != nil {
		return unit, fmt.Errorf("skip_start: %w", err)
	}
	if unit.SkipEnd, err = u.SkipEnd.rule(); err != nil {
		return unit, fmt.Errorf("skip_end: %w", err)
	}

	if u.PadBefore != nil {
		unit.PadBefore = []byte(*u.PadBefore)
	}
	if u.PadAfter != nil {
		unit.PadAfter = []byte(*u.PadAfter)
	}
	unit.ForceNewline = u.Newline
	return unit, nil
}

func (s *SkipSpec) rule() (merge.Skip, error) {
	if s == nil {
		return merge.Skip{}, nil
	}

	var (
		rule merge.Skip
		set  int
	)
	if s.Bytes != nil {
		rule = merge.SkipBytes(*s.Bytes)
		set++
	}
	if s.Lines != nil {
		rule = merge.SkipLines(*s.Lines)
		set++
	}
	if s.Past != nil {
		rule = merge.SkipPast([]byte(*s.Past))
		set++
	}
	if s.To != nil {
		rule = merge.SkipTo([]byte(*s.To))
		set++
	}
	if s.Repeats != nil {
		rule = merge.SkipRepeats([]byte(*s.Repeats))
		set++
	}
	if set > 1 {
		return merge.Skip{}, fmt.Errorf("bytes, lines, past, to and repeats are mutually exclusive")
	}
	return rule, nil
}
