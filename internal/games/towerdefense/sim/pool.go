package sim

// Pool is an ordered, capacity-bounded collection. Live entries occupy
// indices [0, Len()); removal shifts later entries down one slot so
// insertion order is preserved.
type Pool[T any] struct {
	items    []T
	capacity int
}

// EnemyPool holds the active enemies.
type EnemyPool = Pool[Enemy]

// TowerPool holds the placed towers.
type TowerPool = Pool[Tower]

// NewPool creates an empty pool that holds at most capacity entries.
func NewPool[T any](capacity int) *Pool[T] {
	return &Pool[T]{
		items:    make([]T, 0, capacity),
		capacity: capacity,
	}
}

// NewEnemyPool creates an empty pool sized for MaxEnemies.
func NewEnemyPool() *EnemyPool {
	return NewPool[Enemy](MaxEnemies)
}

// NewTowerPool creates an empty pool sized for MaxTowers.
func NewTowerPool() *TowerPool {
	return NewPool[Tower](MaxTowers)
}

// Len returns the live count.
func (p *Pool[T]) Len() int {
	return len(p.items)
}

// Cap returns the capacity.
func (p *Pool[T]) Cap() int {
	return p.capacity
}

// Full reports whether the pool is at capacity.
func (p *Pool[T]) Full() bool {
	return len(p.items) >= p.capacity
}

// Empty reports whether the pool has no live entries.
func (p *Pool[T]) Empty() bool {
	return len(p.items) == 0
}

// Add appends v at the live count index.
func (p *Pool[T]) Add(v T) error {
	if p.Full() {
		return ErrPoolFull
	}
	p.items = append(p.items, v)
	return nil
}

// At returns a pointer to entry i, valid until the next removal.
func (p *Pool[T]) At(i int) *T {
	return &p.items[i]
}

// Remove deletes entry i, shifting later entries down. Out-of-range
// indices are ignored. It returns whether an entry was removed.
func (p *Pool[T]) Remove(i int) bool {
	if i < 0 || i >= len(p.items) {
		return false
	}
	copy(p.items[i:], p.items[i+1:])
	var zero T
	p.items[len(p.items)-1] = zero
	p.items = p.items[:len(p.items)-1]
	return true
}

// Sweep removes every entry for which keep returns false in a single
// compaction pass and returns how many were removed.
func (p *Pool[T]) Sweep(keep func(*T) bool) int {
	n := 0
	for i := range p.items {
		if keep(&p.items[i]) {
			p.items[n] = p.items[i]
			n++
		}
	}
	removed := len(p.items) - n
	var zero T
	for i := n; i < len(p.items); i++ {
		p.items[i] = zero
	}
	p.items = p.items[:n]
	return removed
}

// Clear removes all entries.
func (p *Pool[T]) Clear() {
	clear(p.items)
	p.items = p.items[:0]
}

// All returns a copy of the live entries in order.
func (p *Pool[T]) All() []T {
	out := make([]T, len(p.items))
	copy(out, p.items)
	return out
}
