package tui

// alertOverlayModel shows the pending controller alert on top of the screen
// until the user dismisses it.
type alertOverlayModel struct {
	message string
}

func (m alertOverlayModel) View() string {
	content := alertStyle.Render("Alert") + "\n\n" + m.message + "\n\n" + helpStyle.Render("enter / esc: dismiss")
	return overlayBoxStyle.Render(content)
}
