// Package tracker owns the authoritative in-memory calorie list.
//
// A Repository is not safe for concurrent use; the CLI and TUI drive it from
// a single goroutine.
package tracker

import (
	"fmt"

	"github.com/idilsaglam/tracalorie/internal/model"
)

// Repository holds the ordered item list, the current selection and the
// id counter.
type Repository struct {
	items    []*model.Item
	selected *model.Item
	nextID   int
}

// New seeds a repository from persisted items. The counter never goes below
// one past the largest seeded id.
func New(items []model.Item, nextID int) *Repository {
	r := &Repository{nextID: nextID}
	for _, it := range items {
		r.items = append(r.items, &it)
		if it.ID >= r.nextID {
			r.nextID = it.ID + 1
		}
	}
	return r
}

// ListItems returns a copy of the list in insertion order.
func (r *Repository) ListItems() []model.Item {
	out := make([]model.Item, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, *it)
	}
	return out
}

// Len reports the number of items.
func (r *Repository) Len() int { return len(r.items) }

// NextID is the id the next added item will receive.
func (r *Repository) NextID() int { return r.nextID }

// AddItem validates input, assigns the next id and appends the item.
func (r *Repository) AddItem(name, caloriesText string) (model.Item, error) {
	n, c, err := parseInput(name, caloriesText)
	if err != nil {
		return model.Item{}, err
	}
	it := &model.Item{ID: r.nextID, Name: n, Calories: c}
	r.nextID++
	r.items = append(r.items, it)
	return *it, nil
}

// FindByID returns the stored record with id.
func (r *Repository) FindByID(id int) (*model.Item, error) {
	for _, it := range r.items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
}

// SetSelection records item as the one being edited. The pointer is kept,
// so later in-place updates are visible through it.
func (r *Repository) SetSelection(item *model.Item) { r.selected = item }

// Selection returns the selected item, if any.
func (r *Repository) Selection() (*model.Item, bool) {
	return r.selected, r.selected != nil
}

func (r *Repository) ClearSelection() { r.selected = nil }

// UpdateSelected overwrites name and calories of the list element whose id
// matches the selection. The id is never changed.
func (r *Repository) UpdateSelected(name, caloriesText string) (model.Item, error) {
	if r.selected == nil {
		return model.Item{}, ErrNoSelection
	}
	it, err := r.FindByID(r.selected.ID)
	if err != nil {
		return model.Item{}, err
	}
	n, c, err := parseInput(name, caloriesText)
	if err != nil {
		return model.Item{}, err
	}
	it.Name, it.Calories = n, c
	return *it, nil
}

// DeleteItem removes the item with id. The list is left untouched when the
// id is absent.
func (r *Repository) DeleteItem(id int) error {
	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: id %d", ErrNotFound, id)
}

// ClearAll empties the list and drops the selection. The id counter keeps
// counting so cleared ids are not handed out again.
func (r *Repository) ClearAll() {
	r.items = nil
	r.selected = nil
}

// TotalCalories sums calories across the current list.
func (r *Repository) TotalCalories() int {
	total := 0
	for _, it := range r.items {
		total += it.Calories
	}
	return total
}
