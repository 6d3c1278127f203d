package tui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/tracalorie/internal/app"
	"github.com/idilsaglam/tracalorie/internal/config"
	"github.com/idilsaglam/tracalorie/internal/mirror"
	"github.com/idilsaglam/tracalorie/internal/model"
	"github.com/idilsaglam/tracalorie/internal/store"
)

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyBack  = tea.KeyMsg{Type: tea.KeyBackspace}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

type fixture struct {
	t     *testing.T
	slots *store.Memory
	state *app.State
	m     Model
}

func newFixture(t *testing.T, seed ...[2]string) *fixture {
	t.Helper()
	ctx := context.Background()
	slots := store.NewMemory()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	st, err := app.Open(ctx, slots, log)
	require.NoError(t, err)
	for _, s := range seed {
		_, err := st.Add(ctx, s[0], s[1])
		require.NoError(t, err)
	}
	m := New(ctx, st, config.Config{Theme: "mono", DailyGoal: 2000})
	f := &fixture{t: t, slots: slots, state: st, m: m}
	f.send(tea.WindowSizeMsg{Width: 80, Height: 24})
	return f
}

func (f *fixture) send(msgs ...tea.Msg) {
	f.t.Helper()
	for _, msg := range msgs {
		next, _ := f.m.Update(msg)
		m, ok := next.(Model)
		require.True(f.t, ok)
		f.m = m
	}
}

func (f *fixture) persisted() []model.Item {
	f.t.Helper()
	items, err := mirror.New(f.slots, nil).Load(context.Background())
	require.NoError(f.t, err)
	return items
}

func TestAdd_ThroughForm(t *testing.T) {
	f := newFixture(t)

	f.send(runes("a"), runes("Pizza"), keyEnter, runes("600"), keyEnter)

	assert.Equal(t, modeBrowse, f.m.mode)
	assert.Equal(t, []model.Item{{ID: 0, Name: "Pizza", Calories: 600}}, f.persisted())
	assert.Equal(t, "added Pizza (600 kcal)", f.m.status)
	assert.Len(t, f.m.list.Items(), 1)
	assert.Contains(t, f.m.list.Title, "600 kcal")
}

func TestAdd_InvalidCaloriesKeepsForm(t *testing.T) {
	f := newFixture(t)

	f.send(runes("a"), runes("Pizza"), keyTab, runes("lots"), keyEnter)

	assert.Equal(t, modeAdd, f.m.mode)
	assert.Contains(t, f.m.err, "invalid input")
	assert.Empty(t, f.persisted())
	assert.Contains(t, f.m.View(), "invalid input")
}

func TestAdd_EscCancels(t *testing.T) {
	f := newFixture(t)

	f.send(runes("a"), runes("Pizza"), keyEsc)

	assert.Equal(t, modeBrowse, f.m.mode)
	assert.Empty(t, f.persisted())
}

func TestEdit_UpdatesSelectedItem(t *testing.T) {
	f := newFixture(t, [2]string{"Pizza", "600"}, [2]string{"Salad", "250"})

	f.send(runes("e"))
	require.Equal(t, modeEdit, f.m.mode)
	sel, ok := f.state.Selection()
	require.True(t, ok)
	assert.Equal(t, 0, sel.ID)
	assert.Equal(t, "Pizza", f.m.inputs[fieldName].Value())

	// replace the name, then the calories
	for range "Pizza" {
		f.send(keyBack)
	}
	f.send(runes("Cake"), keyEnter)
	for range "600" {
		f.send(keyBack)
	}
	f.send(runes("700"), keyEnter)

	assert.Equal(t, modeBrowse, f.m.mode)
	assert.Equal(t, []model.Item{
		{ID: 0, Name: "Cake", Calories: 700},
		{ID: 1, Name: "Salad", Calories: 250},
	}, f.persisted())
	_, ok = f.state.Selection()
	assert.False(t, ok, "closing the form leaves edit mode")
}

func TestDeleteAndUndo(t *testing.T) {
	f := newFixture(t, [2]string{"Pizza", "600"}, [2]string{"Salad", "250"})

	f.send(runes("d"))
	assert.Equal(t, []model.Item{{ID: 1, Name: "Salad", Calories: 250}}, f.persisted())
	assert.Equal(t, 250, f.state.Total())

	f.send(runes("u"))
	assert.Equal(t, []model.Item{
		{ID: 1, Name: "Salad", Calories: 250},
		{ID: 2, Name: "Pizza", Calories: 600},
	}, f.persisted(), "undo re-adds under a fresh id")

	f.send(runes("u"))
	assert.Len(t, f.persisted(), 2, "undo is single-level")
}

func TestClear_RequiresConfirmation(t *testing.T) {
	f := newFixture(t, [2]string{"Pizza", "600"})

	f.send(runes("c"), runes("n"))
	assert.Len(t, f.persisted(), 1)
	assert.Equal(t, "clear cancelled", f.m.status)

	f.send(runes("c"))
	assert.Contains(t, f.m.View(), "Clear all 1 items?")
	f.send(runes("y"))

	assert.Empty(t, f.persisted())
	_, err := f.slots.Get(context.Background(), mirror.ItemsKey)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Empty(t, f.m.list.Items())
}

func TestCopySummary(t *testing.T) {
	f := newFixture(t, [2]string{"Pizza", "600"}, [2]string{"Ham Burger", "1200"})
	var copied string
	f.m.copyText = func(s string) error { copied = s; return nil }

	f.send(runes("y"))

	assert.Equal(t, "Pizza: 600 kcal\nHam Burger: 1,200 kcal\nTotal: 1,800 kcal\n", copied)
	assert.Equal(t, "summary copied", f.m.status)

	f.m.copyText = func(string) error { return errors.New("no clipboard") }
	f.send(runes("y"))
	assert.Equal(t, "copy: no clipboard", f.m.err)
}

func TestQuit(t *testing.T) {
	f := newFixture(t)

	_, cmd := f.m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestHeader_ShowsGoal(t *testing.T) {
	f := newFixture(t, [2]string{"Pizza", "600"})
	assert.Contains(t, f.m.list.Title, "1,400 kcal left")

	f.send(runes("a"), runes("Burger"), keyEnter, runes("1500"), keyEnter)
	assert.Contains(t, f.m.list.Title, "100 kcal over goal")
}
