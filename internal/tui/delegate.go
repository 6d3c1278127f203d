package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/tracalorie/internal/model"
	"github.com/idilsaglam/tracalorie/internal/ui"
)

// listItem adapts model.Item to bubbles/list.Item.
type listItem struct {
	item model.Item
}

func (i listItem) Title() string       { return i.item.Name }
func (i listItem) Description() string { return ui.Kcal(i.item.Calories) }
func (i listItem) FilterValue() string { return i.item.Name }

func toListItems(items []model.Item) []list.Item {
	out := make([]list.Item, 0, len(items))
	for _, it := range items {
		out = append(out, listItem{item: it})
	}
	return out
}

// itemDelegate renders one item per line: "> Pizza  600 kcal".
type itemDelegate struct {
	st styles
}

func (d itemDelegate) Height() int                             { return 1 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	line := fmt.Sprintf("%s %s  %s",
		d.st.muted.Render(fmt.Sprintf("%2d.", it.item.ID)),
		it.item.Name,
		d.st.accent.Render(ui.Kcal(it.item.Calories)),
	)
	prefix := "  "
	if index == m.Index() {
		prefix = d.st.selected.Render(">") + " "
	}
	fmt.Fprint(w, prefix+line)
}
