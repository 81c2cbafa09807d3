package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"daylist/internal/engine"
	"daylist/internal/ui"
)

type keyMap struct {
	Quit, Edit, Reload, Up, Down         key.Binding
	All, Pending, Completed              key.Binding
	Toggle, Delete, Clear, Submit, Leave key.Binding
}

var keys = keyMap{
	Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	Edit:      key.NewBinding(key.WithKeys("i", "/", "tab"), key.WithHelp("i", "add")),
	Reload:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("j/k", "move")),
	Down:      key.NewBinding(key.WithKeys("down", "j")),
	All:       key.NewBinding(key.WithKeys("1", "a"), key.WithHelp("1/2/3", "filter")),
	Pending:   key.NewBinding(key.WithKeys("2", "p")),
	Completed: key.NewBinding(key.WithKeys("3", "c")),
	Toggle:    key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
	Delete:    key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
	Clear:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear done")),
	Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
	Leave:     key.NewBinding(key.WithKeys("esc", "tab", "down"), key.WithHelp("esc", "list")),
}

type boardModel struct {
	ctx context.Context
	svc *engine.Service
	ttl time.Duration

	width  int
	height int

	view     engine.View
	input    textinput.Model
	editing  bool
	selected int

	confirm *pendingConfirm

	notice    *engine.Notice
	noticeSeq int
}

type pendingConfirm struct {
	icon   string
	prompt string
	run    func() tea.Cmd
}

// opDoneMsg reports a finished service call together with the notices that
// call emitted. text is the submitted input for adds.
type opDoneMsg struct {
	op      string
	text    string
	notices []engine.Notice
	err     error
}

type noticeExpiredMsg struct {
	seq int
}

func newBoardModel(ctx context.Context, svc *engine.Service, ttl time.Duration) boardModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = 280
	ti.Width = 60
	ti.Cursor.SetMode(cursor.CursorStatic)

	m := boardModel{
		ctx:   ctx,
		svc:   svc,
		ttl:   ttl,
		view:  svc.Render(),
		input: ti,
	}
	m.setEditing(true)
	return m
}

func (m boardModel) Init() tea.Cmd {
	return tea.SetWindowTitle(m.view.Title)
}

// opCmd runs fn off the update loop, collecting only the notices fn's own
// service call emits.
func (m boardModel) opCmd(op, text string, fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		var notices []engine.Notice
		ctx := engine.WithNotifier(m.ctx, engine.NotifyFunc(func(n engine.Notice) {
			notices = append(notices, n)
		}))
		err := fn(ctx)
		return opDoneMsg{op: op, text: text, notices: notices, err: err}
	}
}

func (m boardModel) addCmd(text string) tea.Cmd {
	return m.opCmd("add", text, func(ctx context.Context) error {
		_, err := m.svc.AddTask(ctx, text)
		return err
	})
}

func (m boardModel) toggleCmd(id int64) tea.Cmd {
	return m.opCmd("toggle", "", func(ctx context.Context) error {
		_, err := m.svc.ToggleTask(ctx, id)
		return err
	})
}

func (m boardModel) deleteCmd(id int64) tea.Cmd {
	return m.opCmd("delete", "", func(ctx context.Context) error {
		_, err := m.svc.DeleteTask(ctx, id, engine.Confirmed)
		return err
	})
}

func (m boardModel) clearCmd(c engine.Confirmer) tea.Cmd {
	return m.opCmd("clear", "", func(ctx context.Context) error {
		_, err := m.svc.ClearCompleted(ctx, c)
		return err
	})
}

func (m boardModel) reloadCmd() tea.Cmd {
	return m.opCmd("reload", "", func(ctx context.Context) error {
		return m.svc.Load(ctx)
	})
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case opDoneMsg:
		return m.handleOpDone(msg)
	case noticeExpiredMsg:
		if msg.seq == m.noticeSeq {
			m.notice = nil
		}
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.confirm != nil {
			return m.updateConfirm(msg)
		}
		if m.editing {
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m boardModel) handleOpDone(msg opDoneMsg) (tea.Model, tea.Cmd) {
	m.refresh()
	var cmds []tea.Cmd
	cmds = append(cmds, tea.SetWindowTitle(m.view.Title))

	// Rejected text goes back into an input the user has not touched since.
	if msg.op == "add" && errors.Is(msg.err, engine.ErrEmptyText) && m.input.Value() == "" {
		m.input.SetValue(msg.text)
	}
	if len(msg.notices) > 0 {
		cmds = append(cmds, m.show(msg.notices[len(msg.notices)-1]))
	}
	// Blank input already produced its own notice.
	if msg.err != nil && !errors.Is(msg.err, engine.ErrEmptyText) {
		cmds = append(cmds, m.show(engine.Notice{Kind: engine.NoticeError, Message: msg.err.Error()}))
	}
	return m, tea.Batch(cmds...)
}

func (m boardModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		run := m.confirm.run
		m.confirm = nil
		return m, run()
	case "n", "N", "esc", "q":
		m.confirm = nil
		return m, nil
	}
	return m, nil
}

func (m boardModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Submit):
		text := m.input.Value()
		m.input.Reset()
		return m, m.addCmd(text)
	case key.Matches(msg, keys.Leave):
		return m, m.setEditing(false)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m boardModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Edit):
		return m, m.setEditing(true)
	case key.Matches(msg, keys.Reload):
		return m, m.reloadCmd()
	case key.Matches(msg, keys.Up):
		if m.selected > 0 {
			m.selected--
			return m, nil
		}
		return m, m.setEditing(true)
	case key.Matches(msg, keys.Down):
		if m.selected < len(m.view.Rows)-1 {
			m.selected++
		}
		return m, nil
	case key.Matches(msg, keys.All):
		return m.setFilter(engine.FilterAll)
	case key.Matches(msg, keys.Pending):
		return m.setFilter(engine.FilterPending)
	case key.Matches(msg, keys.Completed):
		return m.setFilter(engine.FilterCompleted)
	case key.Matches(msg, keys.Toggle):
		t, ok := m.current()
		if !ok {
			return m, nil
		}
		return m, m.toggleCmd(t.ID)
	case key.Matches(msg, keys.Delete):
		t, ok := m.current()
		if !ok {
			return m, nil
		}
		m.confirm = &pendingConfirm{
			icon:   ui.IconTrash,
			prompt: fmt.Sprintf("Delete %q?", t.Text),
			run:    func() tea.Cmd { return m.deleteCmd(t.ID) },
		}
		return m, nil
	case key.Matches(msg, keys.Clear):
		n := m.view.Stats.Completed
		if n == 0 {
			// The service reports the empty case itself.
			return m, m.clearCmd(engine.Declined)
		}
		m.confirm = &pendingConfirm{
			icon:   ui.IconBroom,
			prompt: engine.ClearCompletedPrompt(n),
			run:    func() tea.Cmd { return m.clearCmd(engine.Confirmed) },
		}
		return m, nil
	}
	return m, nil
}

func (m *boardModel) setEditing(on bool) tea.Cmd {
	m.editing = on
	if !on {
		m.input.PromptStyle = ui.Muted
		m.input.Blur()
		return nil
	}
	m.input.PromptStyle = ui.Key
	return m.input.Focus()
}

func (m boardModel) setFilter(f engine.Filter) (tea.Model, tea.Cmd) {
	if err := m.svc.SetFilter(f); err != nil {
		cmd := m.show(engine.Notice{Kind: engine.NoticeError, Message: err.Error()})
		return m, cmd
	}
	m.refresh()
	m.selected = 0
	return m, nil
}

func (m *boardModel) refresh() {
	m.view = m.svc.Render()
	if m.selected >= len(m.view.Rows) {
		m.selected = len(m.view.Rows) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m boardModel) current() (engine.Task, bool) {
	if m.selected < 0 || m.selected >= len(m.view.Rows) {
		return engine.Task{}, false
	}
	return m.view.Rows[m.selected], true
}

// show displays n and schedules its removal after the notice ttl.
func (m *boardModel) show(n engine.Notice) tea.Cmd {
	m.noticeSeq++
	m.notice = &n
	seq := m.noticeSeq
	return tea.Tick(m.ttl, func(time.Time) tea.Msg { return noticeExpiredMsg{seq: seq} })
}

func (m boardModel) View() string {
	var b strings.Builder
	b.WriteString(ui.Heading(ui.IconList, m.view.Title))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	b.WriteString(ui.FilterTabs(m.view.Filter))
	b.WriteString("\n\n")

	if len(m.view.Rows) == 0 {
		b.WriteString(ui.Muted.Render(m.view.Placeholder))
		b.WriteString("\n")
	}
	for i, t := range m.view.Rows {
		mark := "  "
		if !m.editing && i == m.selected {
			mark = ui.SelectedRow.Render("> ")
		}
		stamp := ui.Muted.Render(t.CreatedAt + " " + t.CreatedAtTime)
		fmt.Fprintf(&b, "%s%s %s  %s\n", mark, ui.Checkbox(t.Completed), ui.TaskText(t), stamp)
	}
	b.WriteString("\n")
	b.WriteString(ui.Counters(m.view.Stats))
	b.WriteString("\n\n")

	switch {
	case m.confirm != nil:
		b.WriteString(ui.Warn.Render(m.confirm.icon+" "+m.confirm.prompt) + ui.Muted.Render(" [y/N]"))
	case m.notice != nil:
		b.WriteString(ui.Notice(*m.notice))
	}
	b.WriteString("\n")
	b.WriteString(ui.Muted.Render(m.helpLine()))
	b.WriteString("\n")
	return b.String()
}

func (m boardModel) helpLine() string {
	var bindings []key.Binding
	if m.editing {
		bindings = []key.Binding{keys.Submit, keys.Leave}
	} else {
		bindings = []key.Binding{keys.Up, keys.Toggle, keys.Delete, keys.Clear, keys.All, keys.Edit, keys.Reload, keys.Quit}
	}
	parts := make([]string, 0, len(bindings)+1)
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}
	parts = append(parts, "ctrl+c: quit")
	return strings.Join(parts, " • ")
}
