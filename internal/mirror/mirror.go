// Package mirror keeps a persisted copy of the item list in a key-value slot.
//
// Every mutator is a full-list read-modify-write. There is no transaction:
// a failure between the read and the write loses that update.
package mirror

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/idilsaglam/tracalorie/internal/model"
	"github.com/idilsaglam/tracalorie/internal/store"
)

const (
	ItemsKey  = "items"
	NextIDKey = "next_id"
)

// Mirror mirrors the item list into slots under ItemsKey.
type Mirror struct {
	slots store.Slots
	log   *slog.Logger
}

func New(slots store.Slots, log *slog.Logger) *Mirror {
	if log == nil {
		log = slog.Default()
	}
	return &Mirror{slots: slots, log: log}
}

// Load returns the persisted list. An absent or unparsable slot reads as
// an empty list; only backend failures are returned as errors.
func (m *Mirror) Load(ctx context.Context) ([]model.Item, error) {
	b, err := m.slots.Get(ctx, ItemsKey)
	if errors.Is(err, store.ErrNotFound) {
		return []model.Item{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}
	var items []model.Item
	if err := json.Unmarshal(b, &items); err != nil {
		m.log.Warn("persisted items unreadable, starting empty", "error", err)
		return []model.Item{}, nil
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

func (m *Mirror) save(ctx context.Context, items []model.Item) error {
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := m.slots.Put(ctx, ItemsKey, b); err != nil {
		return fmt.Errorf("save items: %w", err)
	}
	return nil
}

// Append adds item at the end of the persisted list.
func (m *Mirror) Append(ctx context.Context, item model.Item) error {
	items, err := m.Load(ctx)
	if err != nil {
		return err
	}
	return m.save(ctx, append(items, item))
}

// Replace overwrites the persisted element with item's id. No-op if absent.
func (m *Mirror) Replace(ctx context.Context, item model.Item) error {
	items, err := m.Load(ctx)
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = item
			return m.save(ctx, items)
		}
	}
	m.log.Debug("replace: id not in mirror", "id", item.ID)
	return nil
}

// Remove drops the persisted element with id. No-op if absent.
func (m *Mirror) Remove(ctx context.Context, id int) error {
	items, err := m.Load(ctx)
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == id {
			return m.save(ctx, append(items[:i], items[i+1:]...))
		}
	}
	m.log.Debug("remove: id not in mirror", "id", id)
	return nil
}

// Clear deletes the items slot entirely.
func (m *Mirror) Clear(ctx context.Context) error {
	if err := m.slots.Delete(ctx, ItemsKey); err != nil {
		return fmt.Errorf("clear items: %w", err)
	}
	return nil
}

// LoadNextID returns the persisted id counter, or 0 if none is stored.
func (m *Mirror) LoadNextID(ctx context.Context) (int, error) {
	b, err := m.slots.Get(ctx, NextIDKey)
	if errors.Is(err, store.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("load next id: %w", err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(b)))
	if err != nil || n < 0 {
		m.log.Warn("persisted id counter unreadable, deriving from items", "value", string(b))
		return 0, nil
	}
	return n, nil
}

// SaveNextID persists the id counter.
func (m *Mirror) SaveNextID(ctx context.Context, n int) error {
	if err := m.slots.Put(ctx, NextIDKey, []byte(strconv.Itoa(n))); err != nil {
		return fmt.Errorf("save next id: %w", err)
	}
	return nil
}
