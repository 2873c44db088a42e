package logparse_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/texsieve/texsieve/internal/logparse"
)

func TestWrappedLinesMerge(t *testing.T) {
	t.Parallel()

	raw := strings.Join([]string{
		strings.Repeat("A", 79),
		"tail",
		"short",
	}, "\n")

	require.Equal(t, []string{
		strings.Repeat("A", 79) + "tail",
		"short",
	}, logparse.Collect(raw))
}

func TestConsecutiveWrappedLines(t *testing.T) {
	t.Parallel()

	raw := strings.Join([]string{
		strings.Repeat("x", 79),
		strings.Repeat("y", 79),
		"end",
	}, "\n")

	got := logparse.Collect(raw)
	require.Len(t, got, 1)
	require.Equal(t, strings.Repeat("x", 79)+strings.Repeat("y", 79)+"end", got[0])
}

func TestUndefinedControlSequenceContinues(t *testing.T) {
	t.Parallel()

	raw := strings.Join([]string{
		"! Undefined control sequence.",
		`l.5 \foo`,
		"done",
	}, "\n")

	require.Equal(t, []string{
		"! Undefined control sequence." + `l.5 \foo`,
		"done",
	}, logparse.Collect(raw))
}

func TestTrailingWrappedLineFlushes(t *testing.T) {
	t.Parallel()

	raw := strings.Repeat("z", 79)

	require.Equal(t, []string{strings.Repeat("z", 79)}, logparse.Collect(raw))
}

func TestSequenceIsRestartable(t *testing.T) {
	t.Parallel()

	raw := strings.Repeat("A", 79) + "\ntail\nshort"
	seq := logparse.Lines(raw)

	var first, second []string

	for line := range seq {
		first = append(first, line)
	}

	for line := range seq {
		second = append(second, line)
	}

	require.Equal(t, first, second)
	require.Len(t, first, 2)
}

func TestCarriageReturnsStripped(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"a", "b"}, logparse.Collect("a\r\nb"))
}
