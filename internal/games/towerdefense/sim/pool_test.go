package sim

import (
	"errors"
	"testing"
)

func TestPoolAddUntilFull(t *testing.T) {
	p := NewPool[int](3)

	for i := 0; i < 3; i++ {
		if err := p.Add(i); err != nil {
			t.Fatalf("Add(%d) failed: %v", i, err)
		}
	}
	if !p.Full() {
		t.Error("pool should be full")
	}
	if err := p.Add(99); !errors.Is(err, ErrPoolFull) {
		t.Errorf("Add() on full pool error = %v, expected ErrPoolFull", err)
	}
	if p.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", p.Len())
	}
}

func TestPoolRemovePreservesOrder(t *testing.T) {
	tests := []struct {
		name     string
		index    int
		removed  bool
		expected []int
	}{
		{"first", 0, true, []int{1, 2, 3, 4}},
		{"middle", 2, true, []int{0, 1, 3, 4}},
		{"last", 4, true, []int{0, 1, 2, 3}},
		{"negative", -1, false, []int{0, 1, 2, 3, 4}},
		{"past live count", 5, false, []int{0, 1, 2, 3, 4}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPool[int](8)
			for i := 0; i < 5; i++ {
				p.Add(i)
			}

			if got := p.Remove(tc.index); got != tc.removed {
				t.Errorf("Remove(%d) = %v, expected %v", tc.index, got, tc.removed)
			}

			got := p.All()
			if len(got) != len(tc.expected) {
				t.Fatalf("All() = %v, expected %v", got, tc.expected)
			}
			for i := range got {
				if got[i] != tc.expected[i] {
					t.Errorf("All() = %v, expected %v", got, tc.expected)
					break
				}
			}
		})
	}
}

func TestPoolRemoveLastSlotAtCapacity(t *testing.T) {
	p := NewPool[int](4)
	for i := 0; i < 4; i++ {
		p.Add(i)
	}

	if !p.Remove(3) {
		t.Fatal("Remove(3) should succeed")
	}
	if p.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", p.Len())
	}
	if err := p.Add(7); err != nil {
		t.Errorf("Add() after removal failed: %v", err)
	}
	if *p.At(3) != 7 {
		t.Errorf("At(3) = %d, expected 7", *p.At(3))
	}
}

func TestPoolSweep(t *testing.T) {
	p := NewPool[int](10)
	for i := 0; i < 10; i++ {
		p.Add(i)
	}

	removed := p.Sweep(func(v *int) bool { return *v%3 != 0 })
	if removed != 4 {
		t.Errorf("Sweep() removed %d, expected 4", removed)
	}

	expected := []int{1, 2, 4, 5, 7, 8}
	got := p.All()
	if len(got) != len(expected) {
		t.Fatalf("All() = %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("All() = %v, expected %v", got, expected)
			break
		}
	}
}

func TestPoolSweepAdjacentDead(t *testing.T) {
	p := NewEnemyPool()
	course := DefaultCourse()
	for i := 0; i < 5; i++ {
		e := NewEnemy(course, i, 0)
		if i == 1 || i == 2 || i == 4 {
			e.Kill()
		}
		p.Add(e)
	}

	p.Sweep(func(e *Enemy) bool { return e.Alive() })

	if p.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", p.Len())
	}
	if p.At(0).X != 0 || p.At(1).X != 3 {
		t.Errorf("survivors at x=%d, x=%d, expected 0 and 3", p.At(0).X, p.At(1).X)
	}
}

func TestPoolClear(t *testing.T) {
	p := NewTowerPool()
	p.Add(NewTower(1, 1))
	p.Add(NewTower(2, 2))
	p.Clear()

	if !p.Empty() {
		t.Errorf("Len() = %d after Clear, expected 0", p.Len())
	}
	if p.Cap() != MaxTowers {
		t.Errorf("Cap() = %d, expected %d", p.Cap(), MaxTowers)
	}
}
