package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-posts-client/internal/render"
	"github.com/MKhiriev/go-posts-client/internal/service"
	"github.com/MKhiriev/go-posts-client/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screenMode int

const (
	modeList screenMode = iota
	modeBaseURL
	modeSearch
	modeCreate
	modeEdit
)

const (
	statusCopied        = "Content copied to clipboard"
	statusBaseURLNeeded = "Set the API base URL first"
)

// postsModel is the single screen of the terminal client. It never holds
// posts of its own: every change goes through the controller and the screen
// re-reads the controller snapshot when an operation returns.
type postsModel struct {
	ctx        context.Context
	controller service.PostsController
	buildInfo  models.AppBuildInfo

	copyToClipboard func(string) error

	state  service.State
	cursor int
	mode   screenMode

	prompt textinput.Model
	form   postForm
	// submitted is the create form content sent with the last ctrl+s.
	submitted models.PostInput

	pending int
	spinner spinner.Model
	status  string

	showBuildInfo bool
}

func newPostsModel(ctx context.Context, controller service.PostsController, buildInfo models.AppBuildInfo) postsModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return postsModel{
		ctx:             ctx,
		controller:      controller,
		buildInfo:       buildInfo,
		copyToClipboard: clipboard.WriteAll,
		spinner:         s,
		pending:         1,
	}
}

func (m postsModel) Init() tea.Cmd {
	ctx, controller := m.ctx, m.controller
	return tea.Batch(
		func() tea.Msg {
			cfg, ok := controller.Initialize(ctx)
			return initDoneMsg{cfg: cfg, ok: ok}
		},
		m.spinner.Tick,
	)
}

func (m postsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case initDoneMsg:
		m.pending--
		m.refresh()
		if !msg.ok {
			m.openPrompt(modeBaseURL, "Base URL", "")
		}
		return m, nil
	case actionDoneMsg:
		m.pending--
		m.refresh()
		m.syncInputs()
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Copy failed: %v", msg.err)
		} else {
			m.status = statusCopied
		}
		return m, nil
	case spinner.TickMsg:
		if m.pending <= 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m postsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.forceQuit) {
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	if m.state.Alert != "" {
		if key.Matches(msg, keys.enter, keys.esc) {
			m.controller.DismissAlert()
			m.refresh()
		}
		return m, nil
	}

	switch m.mode {
	case modeBaseURL, modeSearch:
		return m.handlePromptKey(msg)
	case modeCreate, modeEdit:
		return m.handleFormKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

func (m postsModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.cursor < len(m.view().Items)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
	case key.Matches(msg, keys.baseURL):
		m.openPrompt(modeBaseURL, "Base URL", m.state.Config.APIBaseURL)
	case key.Matches(msg, keys.search):
		if m.requireBaseURL() {
			m.openPrompt(modeSearch, "Search", m.state.View.SearchTerm)
		}
	case key.Matches(msg, keys.newPost):
		if m.requireBaseURL() {
			draft := m.state.View.CreateDraft
			m.form = newPostForm(draft.Title, draft.Content)
			m.mode = modeCreate
		}
	case key.Matches(msg, keys.reload):
		return m.list(m.state.View.Sort)
	case key.Matches(msg, keys.sortField):
		sort := m.state.View.Sort
		sort.Field = nextSortField(sort.Field)
		return m.list(sort)
	case key.Matches(msg, keys.sortDirection):
		sort := m.state.View.Sort
		sort.Direction = toggleDirection(sort.EffectiveDirection())
		return m.list(sort)
	case key.Matches(msg, keys.edit):
		if item, ok := m.selected(); ok {
			m.controller.EnterEditMode(item.ID, item.Title, item.Content)
			m.refresh()
			if editing := m.state.View.Editing; editing != nil {
				m.form = newPostForm(editing.Title, editing.Content)
				m.mode = modeEdit
			}
		}
	case key.Matches(msg, keys.delete):
		if item, ok := m.selected(); ok {
			controller, cfg := m.controller, m.state.Config
			return m, m.startAction(func(ctx context.Context) {
				controller.Delete(ctx, cfg, item.ID)
			})
		}
	case key.Matches(msg, keys.copy):
		if item, ok := m.selected(); ok {
			copyFn, content := m.copyToClipboard, item.Content
			return m, func() tea.Msg {
				return copiedMsg{err: copyFn(content)}
			}
		}
	}
	return m, nil
}

func (m postsModel) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.closeInput()
		return m, nil
	case key.Matches(msg, keys.enter):
		value, mode := m.prompt.Value(), m.mode
		m.closeInput()

		controller := m.controller
		if mode == modeBaseURL {
			cfg := models.ClientConfig{APIBaseURL: strings.TrimSpace(value)}
			sort := m.state.View.Sort
			m.state.Config = cfg
			return m, m.startAction(func(ctx context.Context) {
				controller.List(ctx, cfg, sort)
			})
		}

		cfg := m.state.Config
		return m, m.startAction(func(ctx context.Context) {
			controller.Search(ctx, cfg, value)
		})
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m postsModel) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	controller, cfg := m.controller, m.state.Config

	switch {
	case key.Matches(msg, keys.esc):
		if m.mode == modeEdit {
			// the form closes once the reload resets edit mode
			return m, m.startAction(func(ctx context.Context) {
				controller.CancelEdit(ctx, cfg)
			})
		}
		m.closeInput()
		return m, nil
	case key.Matches(msg, keys.tab):
		m.form = m.form.nextFocus()
		return m, nil
	case key.Matches(msg, keys.save):
		title, content := m.form.values()
		if m.mode == modeCreate {
			m.submitted = models.PostInput{Title: title, Content: content}
			return m, m.startAction(func(ctx context.Context) {
				controller.Create(ctx, cfg, title, content)
			})
		}
		editing := m.state.View.Editing
		if editing == nil {
			m.closeInput()
			return m, nil
		}
		id := editing.ID
		return m, m.startAction(func(ctx context.Context) {
			controller.Update(ctx, cfg, id, title, content)
		})
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m postsModel) list(sort models.SortOptions) (tea.Model, tea.Cmd) {
	if !m.requireBaseURL() {
		return m, nil
	}
	controller, cfg := m.controller, m.state.Config
	return m, m.startAction(func(ctx context.Context) {
		controller.List(ctx, cfg, sort)
	})
}

// startAction runs fn off the update loop and reports completion with
// actionDoneMsg. The spinner only starts ticking for the first pending action.
func (m *postsModel) startAction(fn func(ctx context.Context)) tea.Cmd {
	ctx := m.ctx
	action := func() tea.Msg {
		fn(ctx)
		return actionDoneMsg{}
	}

	m.pending++
	if m.pending == 1 {
		return tea.Batch(action, m.spinner.Tick)
	}
	return action
}

func (m *postsModel) requireBaseURL() bool {
	if !m.state.Config.IsEmpty() {
		return true
	}
	m.status = statusBaseURLNeeded
	m.openPrompt(modeBaseURL, "Base URL", "")
	return false
}

func (m *postsModel) openPrompt(mode screenMode, placeholder, value string) {
	m.prompt = newPrompt(placeholder, value)
	m.mode = mode
}

func (m *postsModel) closeInput() {
	m.mode = modeList
	m.submitted = models.PostInput{}
}

func (m *postsModel) refresh() {
	m.state = m.controller.Snapshot()

	n := len(m.view().Items)
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// syncInputs closes forms whose operation finished: the edit form once edit
// mode was left, the create form once a non-empty draft was sent and cleared.
func (m *postsModel) syncInputs() {
	switch m.mode {
	case modeEdit:
		if m.state.View.Editing == nil {
			m.closeInput()
		}
	case modeCreate:
		if m.submitted != (models.PostInput{}) && m.state.View.CreateDraft == (models.PostInput{}) {
			m.closeInput()
		}
	}
}

func (m postsModel) view() render.View {
	if !m.state.Loaded {
		return render.View{}
	}
	return render.Render(m.state.Posts, m.state.View)
}

func (m postsModel) selected() (render.Item, bool) {
	items := m.view().Items
	if m.cursor < 0 || m.cursor >= len(items) {
		return render.Item{}, false
	}
	return items[m.cursor], true
}

func (m postsModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}
	if m.state.Alert != "" {
		return appStyle.Render(alertOverlayModel{message: m.state.Alert}.View())
	}
	return appStyle.Render(renderPage(m.header(), m.body(), m.hotKeys()))
}

func (m postsModel) header() string {
	header := titleStyle.Render(appName)
	if m.pending > 0 {
		header += "  " + m.spinner.View()
	}
	return header
}

func (m postsModel) body() string {
	var b strings.Builder

	fmt.Fprintf(&b, "API: %s\n", valueOrDash(m.state.Config.APIBaseURL))
	fmt.Fprintf(&b, "Sort: %s   Search: %s\n\n", sortLabel(m.state.View.Sort), valueOrDash(m.state.View.SearchTerm))

	switch m.mode {
	case modeBaseURL:
		b.WriteString("Base URL: [" + m.prompt.View() + "]\n\n")
	case modeSearch:
		b.WriteString("Search:   [" + m.prompt.View() + "]\n\n")
	case modeCreate:
		b.WriteString(titleStyle.Render("New post") + "\n")
		b.WriteString(m.form.View() + "\n\n")
	}

	switch {
	case m.state.Loaded:
		editForm := ""
		if m.mode == modeEdit {
			editForm = m.form.View()
		}
		b.WriteString(renderPosts(m.view(), m.cursor, editForm))
	case m.state.Config.IsEmpty():
		b.WriteString("No API base URL configured.")
	case m.pending > 0:
		b.WriteString("Loading...")
	default:
		b.WriteString("No posts loaded. Press r to reload.")
	}

	if m.status != "" {
		b.WriteString("\n\n" + m.status)
	}
	return b.String()
}

func (m postsModel) hotKeys() string {
	switch m.mode {
	case modeBaseURL, modeSearch:
		return "enter: apply  esc: cancel"
	case modeCreate:
		return "tab: next field  ctrl+s: add post  esc: close"
	case modeEdit:
		return "tab: next field  ctrl+s: save  esc: cancel"
	default:
		return "n: new  e: edit  d: delete  c: copy  /: search  o/O: sort  r: reload  b: base url  v: about  q: quit"
	}
}
