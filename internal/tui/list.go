package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-posts-client/internal/render"
)

const maxTitleWidth = 60

// renderPosts draws the rendered items with the cursor marker. The item in
// edit mode is replaced by editForm.
func renderPosts(view render.View, cursor int, editForm string) string {
	if view.IsEmpty() {
		return view.Empty.Message()
	}

	var b strings.Builder
	for i, item := range view.Items {
		marker := "  "
		title := fitText(item.Title, maxTitleWidth)
		if i == cursor {
			marker = "> "
			title = selectedStyle.Render(title)
		}
		fmt.Fprintf(&b, "%s#%d %s\n", marker, item.ID, title)

		if item.Editing && editForm != "" {
			for _, line := range strings.Split(editForm, "\n") {
				b.WriteString("    ")
				b.WriteString(line)
				b.WriteString("\n")
			}
			continue
		}
		for _, line := range strings.Split(item.Content, "\n") {
			b.WriteString("    ")
			b.WriteString(contentStyle.Render(line))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
