package merge

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// mergeOne runs a single-unit merge with the given skip rules.
func mergeOne(t *testing.T, content string, start, end Skip) string {
	t.Helper()
	out, err := Merge(Config{Units: []Unit{{
		Source:    Buffer([]byte(content)),
		SkipStart: start,
		SkipEnd:   end,
	}}})
	require.NoError(t, err)
	return string(out)
}

func TestSkipStartBytes(t *testing.T) {
	require.Equal(t, "foo bar baz ", mergeOne(t, "foo bar baz ", SkipBytes(0), Skip{}))
	require.Equal(t, "oo bar baz ", mergeOne(t, "foo bar baz ", SkipBytes(1), Skip{}))
	require.Equal(t, "baz ", mergeOne(t, "foo bar baz ", SkipBytes(8), Skip{}))
	require.Equal(t, "", mergeOne(t, "foo bar baz ", SkipBytes(12), Skip{}))
}

func TestSkipStartBytesClamps(t *testing.T) {
	require.Equal(t, "", mergeOne(t, "hello", SkipBytes(100), Skip{}))
}

func TestSkipEndBytes(t *testing.T) {
	require.Equal(t, "foo bar baz ", mergeOne(t, "foo bar baz ", Skip{}, SkipBytes(0)))
	require.Equal(t, "foo bar baz", mergeOne(t, "foo bar baz ", Skip{}, SkipBytes(1)))
	require.Equal(t, "foo ", mergeOne(t, "foo bar baz ", Skip{}, SkipBytes(8)))
	require.Equal(t, "", mergeOne(t, "foo bar baz ", Skip{}, SkipBytes(12)))
	require.Equal(t, "", mergeOne(t, "foo bar baz ", Skip{}, SkipBytes(100)))
}

func TestSkipStartLines(t *testing.T) {
	require.Equal(t, " 11\n 12\n 13\n", mergeOne(t, " 11\n 12\n 13\n", SkipLines(0), Skip{}))
	require.Equal(t, " 12\n 13\n", mergeOne(t, " 11\n 12\n 13\n", SkipLines(1), Skip{}))
	require.Equal(t, " 13\n", mergeOne(t, " 11\n 12\n 13\n", SkipLines(2), Skip{}))
	require.Equal(t, "", mergeOne(t, " 11\n 12\n 13\n", SkipLines(3), Skip{}))
	require.Equal(t, "", mergeOne(t, " 11\n 12\n 13\n", SkipLines(4), Skip{}))
}

func TestSkipStartLinesNoTrailingNewline(t *testing.T) {
	require.Equal(t, "l2\nl3", mergeOne(t, "l1\nl2\nl3", SkipLines(1), Skip{}))
	require.Equal(t, "l3", mergeOne(t, "l1\nl2\nl3", SkipLines(2), Skip{}))
	require.Equal(t, "", mergeOne(t, "l1\nl2\nl3", SkipLines(3), Skip{}))
	require.Equal(t, "", mergeOne(t, "no newline at all", SkipLines(1), Skip{}))
}

func TestSkipEndLines(t *testing.T) {
	require.Equal(t, "l1\nl2\nl3", mergeOne(t, "l1\nl2\nl3", Skip{}, SkipLines(0)))
	require.Equal(t, "l1\nl2\n", mergeOne(t, "l1\nl2\nl3", Skip{}, SkipLines(1)))
	require.Equal(t, "l1\n", mergeOne(t, "l1\nl2\nl3", Skip{}, SkipLines(2)))
	require.Equal(t, "", mergeOne(t, "l1\nl2\nl3", Skip{}, SkipLines(3)))
	require.Equal(t, "", mergeOne(t, "l1\nl2\nl3", Skip{}, SkipLines(4)))
}

func TestSkipEndLinesTrailingNewline(t *testing.T) {
	// The trailing '\n' terminates the last line rather than starting an
	// empty one.
	require.Equal(t, " 11\n 12\n", mergeOne(t, " 11\n 12\n 13\n", Skip{}, SkipLines(1)))
	require.Equal(t, " 11\n", mergeOne(t, " 11\n 12\n 13\n", Skip{}, SkipLines(2)))
	require.Equal(t, "", mergeOne(t, " 11\n 12\n 13\n", Skip{}, SkipLines(3)))
	require.Equal(t, "", mergeOne(t, "only line\n", Skip{}, SkipLines(1)))
}

func TestSkipEndLinesCRLF(t *testing.T) {
	// '\r' belongs to the preceding line; only '\n' terminates.
	require.Equal(t, "a\r\n", mergeOne(t, "a\r\nb\r\n", Skip{}, SkipLines(1)))
	require.Equal(t, "a\r\n", mergeOne(t, "a\r\nb", Skip{}, SkipLines(1)))
}

func TestSkipComposition(t *testing.T) {
	// End counts run against the post-start remainder.
	require.Equal(t, "b\nc\n", mergeOne(t, "a\nb\nc\nd\n", SkipLines(1), SkipLines(1)))
	require.Equal(t, "llo wo", mergeOne(t, "hello world", SkipBytes(2), SkipBytes(3)))
	require.Equal(t, "", mergeOne(t, "hello world", SkipBytes(6), SkipBytes(10)))
}

func TestSkipPast(t *testing.T) {
	require.Equal(t, " body", mergeOne(t, "header== body", SkipPast([]byte("==")), Skip{}))
	require.Equal(t, "body ", mergeOne(t, "body ==footer", Skip{}, SkipPast([]byte("=="))))
	require.Equal(t, "", mergeOne(t, "no marker here", SkipPast([]byte("==")), Skip{}))
	require.Equal(t, "", mergeOne(t, "no marker here", Skip{}, SkipPast([]byte("=="))))
}

func TestSkipTo(t *testing.T) {
	require.Equal(t, "== body", mergeOne(t, "header== body", SkipTo([]byte("==")), Skip{}))
	require.Equal(t, "body ==", mergeOne(t, "body ==footer", Skip{}, SkipTo([]byte("=="))))
	require.Equal(t, "", mergeOne(t, "no marker here", SkipTo([]byte("==")), Skip{}))
	require.Equal(t, "", mergeOne(t, "no marker here", Skip{}, SkipTo([]byte("=="))))
}

func TestSkipRepeats(t *testing.T) {
	require.Equal(t, "body", mergeOne(t, "--body", SkipRepeats([]byte("-")), Skip{}))
	require.Equal(t, "body", mergeOne(t, "body==", Skip{}, SkipRepeats([]byte("="))))
	require.Equal(t, "body--tail", mergeOne(t, "--body--tail", SkipRepeats([]byte("-")), Skip{}))
	require.Equal(t, "untouched", mergeOne(t, "untouched", SkipRepeats([]byte("-")), Skip{}))
	require.Equal(t, "", mergeOne(t, "aaaa", SkipRepeats([]byte("a")), Skip{}))
}

func TestSkipAppliesPerUnit(t *testing.T) {
	out, err := Merge(Config{Units: []Unit{
		{Source: Buffer([]byte("header\n record 1\n")), SkipStart: Skip{}},
		{Source: Buffer([]byte("header\n record 2\n")), SkipStart: SkipLines(1)},
		{Source: Buffer([]byte("header\n record 3\n")), SkipStart: SkipLines(1)},
	}})
	require.NoError(t, err)
	require.Equal(t, "header\n record 1\n record 2\n record 3\n", string(out))
}
