package formatter

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/vitalis/internal/domain"
)

// ansiPattern matches ANSI escape sequences so assertions are
// terminal-independent.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestRenderTable_Alignment(t *testing.T) {
	got := stripANSI(RenderTable(
		[]string{"A", "Num"},
		[][]string{{"x", "5"}, {"yy", "10"}},
		AlignLeft, AlignRight,
	))

	assert.Equal(t, "A   Num\n──  ───\nx     5\nyy   10\n", got)
}

func TestRenderTable_StyledCellsAlign(t *testing.T) {
	got := stripANSI(RenderTable(
		[]string{"Category", "BMI"},
		[][]string{
			{CategoryStyle(domain.CategoryNormal).Render("Normal Weight"), "20.76"},
			{CategoryStyle(domain.CategoryOverweightIV).Render("Overweight Level IV"), "41.20"},
		},
	))
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, strings.Index(lines[2], "20.76"), strings.Index(lines[3], "41.20"))
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}

func TestHumanTimestampFrom(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		ts   time.Time
		want string
	}{
		{now.Add(-10 * time.Second), "Just now"},
		{now.Add(-5 * time.Minute), "5m ago"},
		{now.Add(-3 * time.Hour), "3h ago"},
		{now.Add(-48 * time.Hour), "Mar 12 12:00"},
		{now.Add(time.Hour), "Mar 14 13:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HumanTimestampFrom(tt.ts, now))
	}
}

func TestFormatNumbers(t *testing.T) {
	assert.Equal(t, "20.76", FormatBMI(20.7612))
	assert.Equal(t, "1566.09 kcal/day", FormatKcal(1566.087))
}

func TestCategoryBadge(t *testing.T) {
	for _, c := range domain.Categories() {
		assert.Equal(t, "● "+c.String(), stripANSI(CategoryBadge(c)))
	}
}
