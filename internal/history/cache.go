package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/i474232898/weather-orbit/internal/kvstore"
)

// Keys in the key-value store.
const (
	HistoryKey   = "weatherHistory"
	LastPlaceKey = "lastCity"
)

// Cache is a write-through view of the history list stored in a kvstore.Store.
type Cache struct {
	mu sync.RWMutex

	store   kvstore.Store
	max     int
	entries []Entry
}

// NewCache creates a cache bounded to max entries. Call Load once at startup.
func NewCache(store kvstore.Store, max int) *Cache {
	if max <= 0 {
		max = MaxEntries
	}
	return &Cache{
		store: store,
		max:   max,
	}
}

// Max returns the history bound.
func (c *Cache) Max() int {
	return c.max
}

// Load reads the persisted list. Missing or malformed data yields an empty
// history; it never fails.
func (c *Cache) Load() []Entry {
	raw, err := c.store.Get(HistoryKey)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			log.Printf("history: load failed: %v", err)
		}
		return c.replace(nil)
	}

	entries, err := decode(raw)
	if err != nil {
		log.Printf("history: ignoring malformed persisted history: %v", err)
		return c.replace(nil)
	}

	// Re-apply the invariants in case the stored list predates them.
	var clean []Entry
	for i := len(entries) - 1; i >= 0; i-- {
		clean = Upsert(clean, entries[i], c.max)
	}
	return c.replace(clean)
}

// decode accepts the current object format and the older plain string list.
func decode(raw string) ([]Entry, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err == nil {
		return entries, nil
	}

	var labels []string
	if err := json.Unmarshal([]byte(raw), &labels); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	entries = make([]Entry, 0, len(labels))
	for _, l := range labels {
		entries = append(entries, Entry{PlaceLabel: l})
	}
	return entries, nil
}

// Entries returns a copy of the in-memory list.
func (c *Cache) Entries() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Replace swaps the list for entries (already upserted by the caller) and persists it.
func (c *Cache) Replace(entries []Entry) error {
	c.replace(entries)
	return c.Save()
}

func (c *Cache) replace(entries []Entry) []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(entries) > c.max {
		entries = entries[:c.max]
	}
	c.entries = make([]Entry, len(entries))
	copy(c.entries, entries)

	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Save writes the in-memory list to the store.
func (c *Cache) Save() error {
	entries := c.Entries()

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := c.store.Set(HistoryKey, string(data)); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}

// Clear empties the list and removes the persisted copy.
func (c *Cache) Clear() error {
	c.replace(nil)
	if err := c.store.Delete(HistoryKey); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

// LastPlace returns the last queried place, or "" when none is stored.
func (c *Cache) LastPlace() string {
	v, err := c.store.Get(LastPlaceKey)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			log.Printf("history: read last place failed: %v", err)
		}
		return ""
	}
	return strings.TrimSpace(v)
}

// SetLastPlace persists the last queried place.
func (c *Cache) SetLastPlace(place string) error {
	if err := c.store.Set(LastPlaceKey, place); err != nil {
		return fmt.Errorf("save last place: %w", err)
	}
	return nil
}
