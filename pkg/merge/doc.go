// Package merge concatenates an ordered collection of content units into one
// byte stream.
//
// # Units
//
// A unit is one merge participant: a source (a file path or an in-memory
// buffer) together with its own trim, padding and newline settings. Units are
// processed exactly once each, strictly in the order given. The engine is
// content-agnostic: it operates purely on bytes and newline bytes, never on
// any file format.
//
// # Output layout
//
// For units 0..n-1 the output is, in order:
//
//	pad_before(0)  only if set
//	content(0)     after trimming, plus a forced newline if configured
//	boundary(0,1)
//	content(1)
//	boundary(1,2)
//	...
//	content(n-1)
//	pad_after(n-1) only if set
//
// The boundary between unit i and unit i+1 is resolved by precedence:
//
//  1. PadAfter of unit i, if set
//  2. PadBefore of unit i+1, if set
//  3. the global Separator, if set
//  4. nothing
//
// Exactly one of these is emitted per seam. A padding set to an empty (but
// non-nil) slice counts as set: it emits nothing and still suppresses the
// separator. The first unit's PadBefore and the last unit's PadAfter are
// emitted unconditionally; the separator never appears before the first or
// after the last unit.
//
// # Trimming
//
// Each unit can drop a prefix and a suffix of its content, by byte count,
// by line count, or by byte pattern. The start rule applies first; the end
// rule is evaluated against what remains. Rules that would drop more than
// exists clamp to empty content rather than failing; an empty unit still
// contributes its padding. Only '\n' terminates a line, so a "\r\n" sequence
// counts as ending in a newline with the '\r' belonging to the preceding
// line.
//
// # Newline enforcement
//
// When enforcement is on (per unit, or as the config default) and a unit's
// trimmed content is non-empty and does not already end in '\n', a newline
// is appended after the content and before any boundary bytes. A unit that
// already ends in '\n' is never double-terminated, so enforcement is
// idempotent.
//
// # Determinism
//
// A merge holds no state across calls. The output is a pure function of the
// configuration: identical configs yield byte-identical output.
package merge
