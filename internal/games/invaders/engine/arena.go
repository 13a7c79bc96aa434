package engine

// ID is a stable entity handle. IDs are never reused within an arena
// until Reset.
type ID uint32

type slot[T any] struct {
	id    ID
	alive bool
	val   T
}

// Arena stores entities densely in insertion order. Removal only marks a
// slot dead so that iteration in progress stays valid; Compact drops dead
// slots without reordering the survivors.
type Arena[T any] struct {
	slots []slot[T]
	index map[ID]int
	next  ID
	live  int
}

// NewArena creates an empty arena with room for capacity entities.
func NewArena[T any](capacity int) *Arena[T] {
	return &Arena[T]{
		slots: make([]slot[T], 0, capacity),
		index: make(map[ID]int, capacity),
	}
}

// Insert appends a value and returns its ID.
func (a *Arena[T]) Insert(v T) ID {
	a.next++
	id := a.next
	a.index[id] = len(a.slots)
	a.slots = append(a.slots, slot[T]{id: id, alive: true, val: v})
	a.live++
	return id
}

// Get returns a pointer to a live value. The pointer is valid until the
// next Insert or Compact.
func (a *Arena[T]) Get(id ID) (*T, bool) {
	i, ok := a.index[id]
	if !ok || !a.slots[i].alive {
		return nil, false
	}
	return &a.slots[i].val, true
}

// Alive reports whether id refers to a live value.
func (a *Arena[T]) Alive(id ID) bool {
	i, ok := a.index[id]
	return ok && a.slots[i].alive
}

// Remove marks the value dead. Returns false if it was already gone.
func (a *Arena[T]) Remove(id ID) bool {
	i, ok := a.index[id]
	if !ok || !a.slots[i].alive {
		return false
	}
	a.slots[i].alive = false
	a.live--
	return true
}

// Each calls fn for every live value in insertion order until fn returns
// false. Values removed during iteration are skipped; values inserted
// during iteration are not visited.
func (a *Arena[T]) Each(fn func(id ID, v *T) bool) {
	n := len(a.slots)
	for i := 0; i < n; i++ {
		s := &a.slots[i]
		if !s.alive {
			continue
		}
		if !fn(s.id, &s.val) {
			return
		}
	}
}

// Nth returns the n-th live value in insertion order.
func (a *Arena[T]) Nth(n int) (ID, *T, bool) {
	if n < 0 || n >= a.live {
		return 0, nil, false
	}
	for i := range a.slots {
		s := &a.slots[i]
		if !s.alive {
			continue
		}
		if n == 0 {
			return s.id, &s.val, true
		}
		n--
	}
	return 0, nil, false
}

// Compact removes dead slots, preserving the order of live ones.
func (a *Arena[T]) Compact() {
	if a.live == len(a.slots) {
		return
	}
	w := 0
	for _, s := range a.slots {
		if !s.alive {
			delete(a.index, s.id)
			continue
		}
		a.slots[w] = s
		a.index[s.id] = w
		w++
	}
	// Release references held by the truncated tail
	clear(a.slots[w:])
	a.slots = a.slots[:w]
}

// Len returns the number of live values.
func (a *Arena[T]) Len() int {
	return a.live
}

// Reset removes every value and restarts ID allocation, keeping capacity.
func (a *Arena[T]) Reset() {
	clear(a.slots)
	a.slots = a.slots[:0]
	clear(a.index)
	a.next = 0
	a.live = 0
}
