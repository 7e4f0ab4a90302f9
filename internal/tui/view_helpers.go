package tui

import (
	"strings"

	"github.com/MKhiriev/go-posts-client/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return b.String()
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

// fitText cuts v to max runes, marking the cut with "...".
func fitText(v string, max int) string {
	runes := []rune(v)
	if max <= 0 || len(runes) <= max {
		return v
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

func sortLabel(sort models.SortOptions) string {
	if !sort.IsSet() {
		return "none"
	}
	return string(sort.Field) + " " + string(sort.EffectiveDirection())
}

// nextSortField cycles through models.SortFields, wrapping back to no sorting.
func nextSortField(current models.SortField) models.SortField {
	for i, f := range models.SortFields {
		if f == current {
			return models.SortFields[(i+1)%len(models.SortFields)]
		}
	}
	return models.SortFields[0]
}

func toggleDirection(d models.SortDirection) models.SortDirection {
	if d == models.SortDesc {
		return models.SortAsc
	}
	return models.SortDesc
}
