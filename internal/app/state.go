// Package app is the controller layer: it applies each user action to the
// repository and then mirrors the same change to persistence.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/idilsaglam/tracalorie/internal/mirror"
	"github.com/idilsaglam/tracalorie/internal/model"
	"github.com/idilsaglam/tracalorie/internal/store"
	"github.com/idilsaglam/tracalorie/internal/tracker"
)

// State is the explicit application state shared by the CLI and the TUI.
type State struct {
	repo   *tracker.Repository
	mirror *mirror.Mirror
	log    *slog.Logger
}

// Open loads the persisted list once and seeds the repository from it.
func Open(ctx context.Context, slots store.Slots, log *slog.Logger) (*State, error) {
	if log == nil {
		log = slog.Default()
	}
	m := mirror.New(slots, log)
	items, err := m.Load(ctx)
	if err != nil {
		return nil, err
	}
	next, err := m.LoadNextID(ctx)
	if err != nil {
		return nil, err
	}
	log.Debug("state loaded", "items", len(items), "next_id", next)
	return &State{repo: tracker.New(items, next), mirror: m, log: log}, nil
}

// Items returns the current list.
func (s *State) Items() []model.Item { return s.repo.ListItems() }

// Total returns the recomputed calorie total.
func (s *State) Total() int { return s.repo.TotalCalories() }

// Filter returns items matching an expr-lang expression.
func (s *State) Filter(where string) ([]model.Item, error) { return s.repo.Filter(where) }

// Selection returns the item currently being edited.
func (s *State) Selection() (model.Item, bool) {
	it, ok := s.repo.Selection()
	if !ok {
		return model.Item{}, false
	}
	return *it, true
}

func requireInput(name, caloriesText string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(caloriesText) == "" {
		return fmt.Errorf("%w: name and calories are required", tracker.ErrInvalidInput)
	}
	return nil
}

// Add creates an item and appends it to the mirror.
func (s *State) Add(ctx context.Context, name, caloriesText string) (model.Item, error) {
	if err := requireInput(name, caloriesText); err != nil {
		return model.Item{}, err
	}
	it, err := s.repo.AddItem(name, caloriesText)
	if err != nil {
		return model.Item{}, err
	}
	if err := s.mirror.Append(ctx, it); err != nil {
		return it, err
	}
	if err := s.mirror.SaveNextID(ctx, s.repo.NextID()); err != nil {
		return it, err
	}
	s.log.Info("item added", "id", it.ID, "name", it.Name, "calories", it.Calories)
	return it, nil
}

// Select marks the item with id as the edit target.
func (s *State) Select(id int) (model.Item, error) {
	it, err := s.repo.FindByID(id)
	if err != nil {
		return model.Item{}, err
	}
	s.repo.SetSelection(it)
	return *it, nil
}

// ClearSelection leaves edit mode without changing any item.
func (s *State) ClearSelection() { s.repo.ClearSelection() }

// UpdateSelected rewrites the selected item and replaces it in the mirror.
func (s *State) UpdateSelected(ctx context.Context, name, caloriesText string) (model.Item, error) {
	if err := requireInput(name, caloriesText); err != nil {
		return model.Item{}, err
	}
	it, err := s.repo.UpdateSelected(name, caloriesText)
	if err != nil {
		return model.Item{}, err
	}
	if err := s.mirror.Replace(ctx, it); err != nil {
		return it, err
	}
	s.log.Info("item updated", "id", it.ID, "name", it.Name, "calories", it.Calories)
	return it, nil
}

// Edit selects id and updates it in one step.
func (s *State) Edit(ctx context.Context, id int, name, caloriesText string) (model.Item, error) {
	if _, err := s.Select(id); err != nil {
		return model.Item{}, err
	}
	return s.UpdateSelected(ctx, name, caloriesText)
}

// Delete removes id from the list and the mirror.
func (s *State) Delete(ctx context.Context, id int) error {
	if err := s.repo.DeleteItem(id); err != nil {
		return err
	}
	if err := s.mirror.Remove(ctx, id); err != nil {
		return err
	}
	s.log.Info("item deleted", "id", id)
	return nil
}

// DeleteSelected removes the selected item and leaves edit mode.
func (s *State) DeleteSelected(ctx context.Context) error {
	it, ok := s.repo.Selection()
	if !ok {
		return tracker.ErrNoSelection
	}
	if err := s.Delete(ctx, it.ID); err != nil {
		return err
	}
	s.repo.ClearSelection()
	return nil
}

// Clear empties the list and deletes the persisted items slot.
func (s *State) Clear(ctx context.Context) error {
	n := s.repo.Len()
	s.repo.ClearAll()
	if err := s.mirror.Clear(ctx); err != nil {
		return err
	}
	s.log.Info("items cleared", "count", n)
	return nil
}
