package merge

// NewlineStyle selects the byte sequence appended by newline enforcement.
type NewlineStyle int

const (
	// LF appends "\n".
	LF NewlineStyle = iota
	// CRLF appends "\r\n". Content already ending in '\n' is left alone
	// either way; existing terminators are never rewritten.
	CRLF
)

func (n NewlineStyle) bytes() []byte {
	if n == CRLF {
		return []byte("\r\n")
	}
	return []byte("\n")
}

// Unit is a single merge participant: a content source plus the trim,
// padding and newline settings applied to it. Units are built by the caller,
// consumed once during a merge, and carry no state afterwards.
type Unit struct {
	Source    Source
	SkipStart Skip
	SkipEnd   Skip

	// PadBefore and PadAfter are literal bytes emitted adjacent to this
	// unit's content. nil means unset; an empty non-nil slice counts as
	// set and suppresses the separator at its seam.
	PadBefore []byte
	PadAfter  []byte

	// ForceNewline overrides Config.ForceNewline for this unit when
	// non-nil.
	ForceNewline *bool
}

// Config describes one merge call. The engine is a pure function of it.
type Config struct {
	// Units are processed strictly in the order given.
	Units []Unit

	// Separator is inserted between two adjacent units when neither the
	// left unit's PadAfter nor the right unit's PadBefore is set. It never
	// appears before the first or after the last unit.
	Separator []byte

	// ForceNewline appends a newline to every unit whose trimmed content
	// is non-empty and does not already end in '\n'. Units can override it
	// individually.
	ForceNewline bool

	// Newline selects the byte sequence enforcement appends.
	Newline NewlineStyle
}
