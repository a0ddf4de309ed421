package binding

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrRegistryFrozen   = errors.New("registry is frozen")
	ErrDuplicateGame    = errors.New("duplicate game id")
	ErrInvalidGameEntry = errors.New("invalid game entry")
)

// Entry ties a menu button to the factory that builds the game's pane.
type Entry struct {
	ID      string
	Title   string
	NewPane func() GamePane
}

// Registry is the ordered list of games offered on the menu. The position of
// an entry is the index of its menu button.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
	frozen  bool
}

// NewRegistry registers entries in order.
func NewRegistry(entries ...Entry) (*Registry, error) {
	r := &Registry{}
	for _, e := range entries {
		if err := r.Register(e); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register appends an entry. It fails once the registry is frozen.
func (r *Registry) Register(e Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return fmt.Errorf("%w: cannot register %q", ErrRegistryFrozen, e.ID)
	}
	if e.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidGameEntry)
	}
	if e.NewPane == nil {
		return fmt.Errorf("%w: nil factory for %q", ErrInvalidGameEntry, e.ID)
	}
	for _, existing := range r.entries {
		if existing.ID == e.ID {
			return fmt.Errorf("%w: %q", ErrDuplicateGame, e.ID)
		}
	}
	r.entries = append(r.entries, e)
	return nil
}

// Freeze makes the registry read-only.
func (r *Registry) Freeze() {
	r.mu.Lock()
	r.frozen = true
	r.mu.Unlock()
}

// Lookup returns the entry at a menu position.
func (r *Registry) Lookup(index int) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if index < 0 || index >= len(r.entries) {
		return Entry{}, false
	}
	return r.entries[index], true
}

// Entries returns a copy of all entries in menu order.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}
