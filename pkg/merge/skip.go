package merge

import "bytes"

type skipKind int

const (
	skipNone skipKind = iota
	skipBytes
	skipLines
	skipPast
	skipTo
	skipRepeats
)

// Skip describes how much of a unit's content to drop from one end. The zero
// value drops nothing. The same rule works at the start and at the end of a
// unit; end rules scan from the end of the remaining content.
type Skip struct {
	kind skipKind
	n    int
	pat  []byte
}

// SkipBytes drops n bytes. Counts larger than the content clamp to dropping
// everything.
func SkipBytes(n int) Skip { return Skip{kind: skipBytes, n: n} }

// SkipLines drops n newline-delimited lines. A trailing '\n' belongs to the
// last line. Counts larger than the line count clamp to dropping everything.
func SkipLines(n int) Skip { return Skip{kind: skipLines, n: n} }

// SkipPast drops everything up to and including the nearest occurrence of
// pat. If pat never occurs, everything is dropped.
func SkipPast(pat []byte) Skip { return Skip{kind: skipPast, pat: pat} }

// SkipTo drops everything up to, but not including, the nearest occurrence
// of pat. If pat never occurs, everything is dropped.
func SkipTo(pat []byte) Skip { return Skip{kind: skipTo, pat: pat} }

// SkipRepeats drops consecutive exact repetitions of pat from the trimmed
// end.
func SkipRepeats(pat []byte) Skip { return Skip{kind: skipRepeats, pat: pat} }

func (s Skip) valid() bool { return s.n >= 0 }

// trim returns the subslice of content remaining after applying start at the
// front and then end against the remainder. It never copies.
func trim(content []byte, start, end Skip) []byte {
	return end.fromEnd(start.fromStart(content))
}

func (s Skip) fromStart(b []byte) []byte {
	switch s.kind {
	case skipBytes:
		if s.n >= len(b) {
			return b[len(b):]
		}
		return b[s.n:]
	case skipLines:
		for n := s.n; n > 0; n-- {
			i := bytes.IndexByte(b, '\n')
			if i < 0 {
				return b[len(b):]
			}
			b = b[i+1:]
		}
		return b
	case skipPast:
		i := bytes.Index(b, s.pat)
		if i < 0 {
			return b[len(b):]
		}
		return b[i+len(s.pat):]
	case skipTo:
		i := bytes.Index(b, s.pat)
		if i < 0 {
			return b[len(b):]
		}
		return b[i:]
	case skipRepeats:
		if len(s.pat) == 0 {
			return b
		}
		for bytes.HasPrefix(b, s.pat) {
			b = b[len(s.pat):]
		}
		return b
	default:
		return b
	}
}

func (s Skip) fromEnd(b []byte) []byte {
	switch s.kind {
	case skipBytes:
		if s.n >= len(b) {
			return b[:0]
		}
		return b[:len(b)-s.n]
	case skipLines:
		if s.n == 0 {
			return b
		}
		// A trailing newline terminates the last line rather than
		// starting a new one.
		end := len(b)
		if end > 0 && b[end-1] == '\n' {
			end--
		}
		for n := s.n; n > 0; n-- {
			i := bytes.LastIndexByte(b[:end], '\n')
			if i < 0 {
				return b[:0]
			}
			end = i
		}
		return b[:end+1]
	case skipPast:
		i := bytes.LastIndex(b, s.pat)
		if i < 0 {
			return b[:0]
		}
		return b[:i]
	case skipTo:
		i := bytes.LastIndex(b, s.pat)
		if i < 0 {
			return b[:0]
		}
		return b[:i+len(s.pat)]
	case skipRepeats:
		if len(s.pat) == 0 {
			return b
		}
		for bytes.HasSuffix(b, s.pat) {
			b = b[:len(b)-len(s.pat)]
		}
		return b
	default:
		return b
	}
}
