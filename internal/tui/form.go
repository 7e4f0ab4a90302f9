package tui

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	formFieldTitle = iota
	formFieldContent
)

// postForm is the title/content form shared by post creation and inline
// editing.
type postForm struct {
	title   textinput.Model
	content textarea.Model
	focus   int
}

func newPostForm(title, content string) postForm {
	t := textinput.New()
	t.Placeholder = "Title"
	t.Prompt = ""
	t.Width = 50
	t.Cursor.SetMode(cursor.CursorStatic)
	t.SetValue(title)
	t.CursorEnd()

	c := textarea.New()
	c.Placeholder = "Content"
	c.ShowLineNumbers = false
	c.SetWidth(52)
	c.SetHeight(4)
	c.Cursor.SetMode(cursor.CursorStatic)
	c.SetValue(content)

	f := postForm{title: t, content: c}
	f.title.Focus()
	return f
}

func (f postForm) values() (string, string) {
	return f.title.Value(), f.content.Value()
}

func (f postForm) nextFocus() postForm {
	if f.focus == formFieldTitle {
		f.focus = formFieldContent
		f.title.Blur()
		f.content.Focus()
		return f
	}
	f.focus = formFieldTitle
	f.content.Blur()
	f.title.Focus()
	return f
}

func (f postForm) Update(msg tea.Msg) (postForm, tea.Cmd) {
	var cmd tea.Cmd
	if f.focus == formFieldTitle {
		f.title, cmd = f.title.Update(msg)
	} else {
		f.content, cmd = f.content.Update(msg)
	}
	return f, cmd
}

func (f postForm) View() string {
	return "Title:   [" + f.title.View() + "]\n" +
		"Content:\n" + f.content.View()
}

func newPrompt(placeholder, value string) textinput.Model {
	p := textinput.New()
	p.Placeholder = placeholder
	p.Prompt = ""
	p.Width = 50
	p.Cursor.SetMode(cursor.CursorStatic)
	p.SetValue(value)
	p.CursorEnd()
	p.Focus()
	return p
}
