// Package tui is the interactive list editor. Every accepted change goes
// through app.State, so the persisted list is current even if the program
// is killed.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/tracalorie/internal/app"
	"github.com/idilsaglam/tracalorie/internal/config"
	"github.com/idilsaglam/tracalorie/internal/model"
	"github.com/idilsaglam/tracalorie/internal/ui"
)

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeEdit
	modeConfirmClear
)

const (
	fieldName = iota
	fieldCalories
)

type keyMap struct {
	add, edit, del, undo, clear, copy key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		add:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		edit:  key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		del:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		undo:  key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
		clear: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear all")),
		copy:  key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy summary")),
	}
}

func (k keyMap) bindings() []key.Binding {
	return []key.Binding{k.add, k.edit, k.del, k.undo, k.clear, k.copy}
}

// Model is the bubbletea model for `tracalorie tui`.
type Model struct {
	ctx   context.Context
	state *app.State
	goal  int
	st    styles
	keys  keyMap

	list   list.Model
	mode   mode
	inputs []textinput.Model
	focus  int
	status string
	err    string

	// single-level undo of the last delete
	undo *model.Item

	copyText func(string) error
	width    int
	height   int
}

// New builds the model over an opened state.
func New(ctx context.Context, state *app.State, cfg config.Config) Model {
	st := newStyles(ui.ThemeByName(cfg.Theme))
	keys := newKeyMap()

	l := list.New(toListItems(state.Items()), itemDelegate{st: st}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = st.title
	l.Styles.HelpStyle = st.help
	l.Styles.PaginationStyle = st.help
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")
	l.AdditionalShortHelpKeys = keys.bindings
	l.AdditionalFullHelpKeys = keys.bindings

	name := textinput.New()
	name.Prompt = "name     > "
	name.Placeholder = "Pizza"
	name.CharLimit = 120
	cal := textinput.New()
	cal.Prompt = "calories > "
	cal.Placeholder = "600"
	cal.CharLimit = 7

	m := Model{
		ctx:      ctx,
		state:    state,
		goal:     cfg.DailyGoal,
		st:       st,
		keys:     keys,
		list:     l,
		inputs:   []textinput.Model{name, cal},
		copyText: clipboard.WriteAll,
		width:    80,
		height:   24,
	}
	m.list.Title = m.header()
	return m
}

// Run starts the program and blocks until the user quits.
func Run(ctx context.Context, state *app.State, cfg config.Config) error {
	p := tea.NewProgram(New(ctx, state, cfg), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m Model) header() string {
	total := m.state.Total()
	h := fmt.Sprintf("%s   %s %d  %s %s",
		m.st.title.Render("Calories"),
		m.st.accent.Render("Items"), len(m.state.Items()),
		m.st.accent.Render("Total"), ui.Kcal(total),
	)
	if m.goal > 0 {
		if total > m.goal {
			h += "  " + m.st.over.Render(fmt.Sprintf("%s over goal", ui.Kcal(total-m.goal)))
		} else {
			h += "  " + m.st.success.Render(fmt.Sprintf("%s left", ui.Kcal(m.goal-total)))
		}
	}
	return h
}

// refresh reloads the list from state after a mutation.
func (m *Model) refresh() tea.Cmd {
	cmd := m.list.SetItems(toListItems(m.state.Items()))
	m.list.Title = m.header()
	return cmd
}

func (m Model) current() (model.Item, bool) {
	li, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return model.Item{}, false
	}
	return li.item, true
}

func (m *Model) openForm(md mode, name, calories string) tea.Cmd {
	m.mode = md
	m.err = ""
	m.inputs[fieldName].SetValue(name)
	m.inputs[fieldName].CursorEnd()
	m.inputs[fieldCalories].SetValue(calories)
	m.inputs[fieldCalories].CursorEnd()
	return m.focusField(fieldName)
}

func (m *Model) focusField(i int) tea.Cmd {
	m.focus = i
	for j := range m.inputs {
		m.inputs[j].Blur()
	}
	return m.inputs[i].Focus()
}

func (m *Model) closeForm() {
	if m.mode == modeEdit {
		m.state.ClearSelection()
	}
	m.mode = modeBrowse
	m.err = ""
	for j := range m.inputs {
		m.inputs[j].SetValue("")
		m.inputs[j].Blur()
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.list.SetSize(m.width-4, m.listHeight())
		return m, nil
	}
	switch m.mode {
	case modeAdd, modeEdit:
		return m.updateForm(msg)
	case modeConfirmClear:
		return m.updateConfirm(msg)
	}
	return m.updateBrowse(msg)
}

func (m Model) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	switch {
	case km.String() == "q" || km.String() == "esc" && m.list.FilterState() == list.Unfiltered:
		return m, tea.Quit
	case key.Matches(km, m.keys.add):
		return m, m.openForm(modeAdd, "", "")
	case key.Matches(km, m.keys.edit):
		it, ok := m.current()
		if !ok {
			return m, nil
		}
		if _, err := m.state.Select(it.ID); err != nil {
			m.err = err.Error()
			return m, nil
		}
		return m, m.openForm(modeEdit, it.Name, fmt.Sprint(it.Calories))
	case key.Matches(km, m.keys.del):
		it, ok := m.current()
		if !ok {
			return m, nil
		}
		if err := m.state.Delete(m.ctx, it.ID); err != nil {
			m.err = err.Error()
			return m, nil
		}
		m.undo = &it
		m.status, m.err = fmt.Sprintf("deleted %s (u to undo)", it.Name), ""
		return m, m.refresh()
	case key.Matches(km, m.keys.undo):
		if m.undo == nil {
			return m, nil
		}
		it, err := m.state.Add(m.ctx, m.undo.Name, fmt.Sprint(m.undo.Calories))
		if err != nil {
			m.err = err.Error()
			return m, nil
		}
		m.undo = nil
		m.status, m.err = fmt.Sprintf("restored %s as #%d", it.Name, it.ID), ""
		return m, m.refresh()
	case key.Matches(km, m.keys.clear):
		if len(m.state.Items()) == 0 {
			return m, nil
		}
		m.mode = modeConfirmClear
		return m, nil
	case key.Matches(km, m.keys.copy):
		if err := m.copyText(Summary(m.state.Items(), m.state.Total())); err != nil {
			m.err = "copy: " + err.Error()
			return m, nil
		}
		m.status, m.err = "summary copied", ""
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "esc":
			m.closeForm()
			return m, nil
		case "tab", "shift+tab", "up", "down":
			return m, m.focusField(1 - m.focus)
		case "enter":
			if m.focus == fieldName {
				return m, m.focusField(fieldCalories)
			}
			return m.submit()
		}
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	name := m.inputs[fieldName].Value()
	cal := m.inputs[fieldCalories].Value()
	var (
		it  model.Item
		err error
	)
	verb := "added"
	if m.mode == modeEdit {
		verb = "updated"
		it, err = m.state.UpdateSelected(m.ctx, name, cal)
	} else {
		it, err = m.state.Add(m.ctx, name, cal)
	}
	if err != nil {
		m.err = err.Error()
		return m, nil
	}
	m.closeForm()
	m.status = fmt.Sprintf("%s %s (%s)", verb, it.Name, ui.Kcal(it.Calories))
	return m, m.refresh()
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.mode = modeBrowse
	if km.String() != "y" {
		m.status = "clear cancelled"
		return m, nil
	}
	if err := m.state.Clear(m.ctx); err != nil {
		m.err = err.Error()
		return m, nil
	}
	m.undo = nil
	m.status, m.err = "all items cleared", ""
	return m, m.refresh()
}

func (m Model) listHeight() int {
	h := m.height - 4
	if m.mode == modeAdd || m.mode == modeEdit {
		h -= 4
	}
	if h < 3 {
		h = 3
	}
	return h
}

func (m Model) View() string {
	m.list.SetSize(m.width-4, m.listHeight())
	parts := []string{m.list.View()}

	switch m.mode {
	case modeAdd, modeEdit:
		title := "Add item"
		if m.mode == modeEdit {
			title = "Edit item"
			if sel, ok := m.state.Selection(); ok {
				title = fmt.Sprintf("Edit #%d", sel.ID)
			}
		}
		form := []string{m.st.title.Render(title)}
		for _, in := range m.inputs {
			form = append(form, in.View())
		}
		parts = append(parts, m.st.form.Render(strings.Join(form, "\n")))
	case modeConfirmClear:
		parts = append(parts, m.st.err.Render(fmt.Sprintf("Clear all %d items? (y/N)", len(m.state.Items()))))
	}
	switch {
	case m.err != "":
		parts = append(parts, m.st.err.Render("✖ "+m.err))
	case m.status != "":
		parts = append(parts, m.st.muted.Render(m.status))
	}
	return m.st.frame.Render(strings.Join(parts, "\n"))
}

// Summary is the plain-text list copied to the clipboard.
func Summary(items []model.Item, total int) string {
	var b strings.Builder
	for _, it := range items {
		fmt.Fprintf(&b, "%s: %s\n", it.Name, ui.Kcal(it.Calories))
	}
	fmt.Fprintf(&b, "Total: %s\n", ui.Kcal(total))
	return b.String()
}
