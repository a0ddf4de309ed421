// Package display keeps the state the browser renders: the visible pane, the
// cell texts and the status line. It implements binding.Board and
// binding.Container and notifies subscribers after every change.
package display

import (
	"sync"

	"ctchen222/BoardGameKit/internal/binding"
	"ctchen222/BoardGameKit/internal/game"

	"github.com/google/uuid"
)

const subscriberBuffer = 8

// Snapshot is a copy of the display state.
type Snapshot struct {
	Pane   string
	Cells  [game.BoardSize]string
	Status string
}

// Screen is safe for concurrent use. Writes come from the dispatcher goroutine,
// reads from HTTP handlers.
type Screen struct {
	mu          sync.RWMutex
	state       Snapshot
	subscribers map[string]chan Snapshot
}

func NewScreen() *Screen {
	return &Screen{
		state:       Snapshot{Pane: binding.MenuPaneName},
		subscribers: make(map[string]chan Snapshot),
	}
}

// SetCellText implements binding.Board.
func (s *Screen) SetCellText(index int, text string) {
	if index < 0 || index >= game.BoardSize {
		return
	}
	s.update(func(st *Snapshot) { st.Cells[index] = text })
}

// SetStatusText implements binding.Board.
func (s *Screen) SetStatusText(text string) {
	s.update(func(st *Snapshot) { st.Status = text })
}

// Show implements binding.Container. The previous pane's texts are cleared.
func (s *Screen) Show(p binding.Pane) {
	s.update(func(st *Snapshot) {
		*st = Snapshot{Pane: p.Name()}
	})
}

func (s *Screen) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe returns a channel that receives the state after every change.
// Slow subscribers miss intermediate states, never the latest one.
func (s *Screen) Subscribe() (string, <-chan Snapshot, func()) {
	id := uuid.New().String()
	ch := make(chan Snapshot, subscriberBuffer)

	s.mu.Lock()
	s.subscribers[id] = ch
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if c, ok := s.subscribers[id]; ok {
			delete(s.subscribers, id)
			close(c)
		}
	}
	return id, ch, cancel
}

func (s *Screen) SubscriberCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subscribers)
}

func (s *Screen) update(fn func(st *Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(&s.state)
	for _, ch := range s.subscribers {
		publish(ch, s.state)
	}
}

// publish never blocks: when the buffer is full the oldest state is dropped.
func publish(ch chan Snapshot, st Snapshot) {
	for {
		select {
		case ch <- st:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
