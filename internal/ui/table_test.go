package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_Render(t *testing.T) {
	table := Table{
		Headers: []string{"ID", "NAME", "STATUS"},
		Rows: [][]string{
			{"1", "build", "Running"},
			{"2", "deploy", "Pending"},
		},
	}

	out := table.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4, "header, separator, two rows")
	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[2], "build")
	assert.Contains(t, lines[3], "deploy")
}

func TestTable_RenderEmpty(t *testing.T) {
	assert.Empty(t, (&Table{}).Render())
}

func TestTable_TruncatesWideCells(t *testing.T) {
	table := Table{
		Headers:  []string{"NAME"},
		Rows:     [][]string{{"a-very-long-task-name"}},
		MaxWidth: 8,
	}

	out := table.Render()
	assert.NotContains(t, out, "a-very-long-task-name")
	assert.Contains(t, out, "…")
}

func TestTable_ShortRowsPadded(t *testing.T) {
	table := Table{
		Headers: []string{"A", "B"},
		Rows:    [][]string{{"only-a"}},
	}
	// Must not panic on rows shorter than the header set.
	assert.NotEmpty(t, table.Render())
}

func TestTruncateID(t *testing.T) {
	assert.Equal(t, "short", TruncateID("short"))
	assert.Equal(t, "12345678…", TruncateID("1234567890abcdef"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 10))
	assert.Equal(t, "hell…", Truncate("hello!", 5))
	assert.Equal(t, "…", Truncate("hello", 1))
	assert.Equal(t, "hello", Truncate("hello", 0), "zero means no limit")
}
