package style

import (
	"sort"
	"sync"

	"github.com/slickdexic/layers"
)

// Listener receives the new style after every effective change.
type Listener func(Style)

// Subscription is the handle returned by Store.Subscribe. Unsubscribe
// through it; the token avoids comparing function values.
type Subscription struct {
	store *Store
	id    uint64
}

// Unsubscribe removes the listener. Safe to call more than once and
// after the store is destroyed.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.store == nil {
		return
	}
	s.store.unsubscribe(s.id)
	s.store = nil
}

// Store holds the live drawing style and its subscribers.
//
// All interaction happens on the editor thread, but the store is
// internally locked so that a host embedding the library from multiple
// goroutines does not corrupt the listener table.
type Store struct {
	mu        sync.Mutex
	current   Style
	listeners map[uint64]Listener
	nextID    uint64
	destroyed bool
}

// NewStore creates a store seeded from DefaultStyle.
func NewStore() *Store {
	return &Store{
		current:   DefaultStyle,
		listeners: make(map[uint64]Listener),
	}
}

// Get returns a copy of the current style. Mutating the result does not
// affect the store.
func (s *Store) Get() Style {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Update merges the non-nil fields of p into the current style, clamping
// to the enforced minimums. Listeners fire once if and only if a field
// actually changed value.
func (s *Store) Update(p Partial) {
	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		return
	}
	if !s.current.merge(p) {
		s.mu.Unlock()
		return
	}
	snapshot := s.current
	targets := s.snapshotListeners()
	s.mu.Unlock()

	notify(snapshot, targets)
}

// SetColor updates the stroke color.
func (s *Store) SetColor(c string) { s.Update(Partial{Color: &c}) }

// SetFill updates the fill color.
func (s *Store) SetFill(f string) { s.Update(Partial{Fill: &f}) }

// SetStrokeWidth updates the stroke width, clamped to MinStrokeWidth.
func (s *Store) SetStrokeWidth(w float64) { s.Update(Partial{StrokeWidth: &w}) }

// SetFontSize updates the font size, clamped to MinFontSize.
func (s *Store) SetFontSize(size float64) { s.Update(Partial{FontSize: &size}) }

// SetFontFamily updates the font family.
func (s *Store) SetFontFamily(f string) { s.Update(Partial{FontFamily: &f}) }

// SetArrowStyle updates the arrowhead style for new arrow layers.
func (s *Store) SetArrowStyle(a string) { s.Update(Partial{ArrowStyle: &a}) }

// SetShadow merges a sparse shadow update. Blur is clamped to zero.
func (s *Store) SetShadow(p ShadowPartial) {
	s.Update(Partial{
		ShadowEnabled: p.Enabled,
		ShadowColor:   p.Color,
		ShadowBlur:    p.Blur,
		ShadowOffsetX: p.OffsetX,
		ShadowOffsetY: p.OffsetY,
	})
}

// Subscribe registers a listener for style changes and returns its
// handle. A nil listener returns a handle that unsubscribes nothing.
func (s *Store) Subscribe(l Listener) *Subscription {
	if l == nil {
		return &Subscription{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.destroyed {
		return &Subscription{}
	}
	s.nextID++
	id := s.nextID
	s.listeners[id] = l
	return &Subscription{store: s, id: id}
}

func (s *Store) unsubscribe(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.listeners, id)
}

// Reset restores DefaultStyle and notifies listeners.
func (s *Store) Reset() {
	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		return
	}
	s.current = DefaultStyle
	snapshot := s.current
	targets := s.snapshotListeners()
	s.mu.Unlock()

	notify(snapshot, targets)
}

// Destroy drops all listeners and makes further updates no-ops.
func (s *Store) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.destroyed = true
	s.listeners = nil
}

// snapshotListeners returns the listeners in registration order.
// Caller must hold s.mu.
func (s *Store) snapshotListeners() []Listener {
	if len(s.listeners) == 0 {
		return nil
	}
	ids := make([]uint64, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	// Registration order is the id order.
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]Listener, len(ids))
	for i, id := range ids {
		out[i] = s.listeners[id]
	}
	return out
}

// notify calls each listener outside the store lock. A panicking
// listener is logged and does not stop the others.
func notify(snapshot Style, targets []Listener) {
	for _, l := range targets {
		func() {
			defer func() {
				if r := recover(); r != nil {
					layers.Logger().Warn("style listener panicked", "panic", r)
				}
			}()
			l(snapshot)
		}()
	}
}
