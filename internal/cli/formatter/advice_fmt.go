package formatter

import (
	"strings"

	"github.com/alexanderramin/vitalis/internal/domain"
	"github.com/alexanderramin/vitalis/internal/engine"
)

// FormatRecommendations renders the target line and the diet, exercise and
// lifestyle lists. Caution lines are highlighted.
func FormatRecommendations(set domain.RecommendationSet) string {
	var b strings.Builder
	b.WriteString(Header("Target") + "\n")
	b.WriteString("  " + StyleGreen.Bold(true).Render(set.Target) + "\n")

	sections := []struct {
		title string
		items []string
	}{
		{"Diet", set.Diet},
		{"Exercise", set.Exercise},
		{"Lifestyle", set.Lifestyle},
	}
	for _, s := range sections {
		b.WriteString("\n" + Header(s.title) + "\n")
		b.WriteString(Bullets(highlightCautions(s.items)))
	}
	return b.String()
}

func highlightCautions(items []string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		if strings.HasPrefix(item, engine.CautionPrefix) || strings.HasPrefix(item, engine.FixPrefix) {
			out[i] = StyleYellow.Render(item)
			continue
		}
		out[i] = StyleFg.Render(item)
	}
	return out
}
