package sim

import "fmt"

// Course is the ordered list of checkpoints enemies walk from spawn to base.
// It is built once and shared read-only by every enemy.
type Course struct {
	checkpoints []Checkpoint
}

// NewCourse builds a course from checkpoints in traversal order.
func NewCourse(points ...Checkpoint) (*Course, error) {
	if len(points) == 0 {
		return nil, ErrEmptyCourse
	}
	if len(points) > MaxCheckpoints {
		return nil, fmt.Errorf("%w: %d > %d", ErrCourseFull, len(points), MaxCheckpoints)
	}
	for i, p := range points {
		if !InBounds(p.X, p.Y) {
			return nil, fmt.Errorf("%w: checkpoint %d at (%d, %d)", ErrOutOfBounds, i, p.X, p.Y)
		}
	}

	cps := make([]Checkpoint, len(points), MaxCheckpoints)
	copy(cps, points)
	return &Course{checkpoints: cps}, nil
}

// DefaultCourse returns the hardcoded course.
func DefaultCourse() *Course {
	c, err := NewCourse(
		Checkpoint{X: 3, Y: 7},
		Checkpoint{X: 8, Y: 5},
		Checkpoint{X: 0, Y: 0},
		Checkpoint{X: 1, Y: 9},
	)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of checkpoints.
func (c *Course) Len() int {
	return len(c.checkpoints)
}

// At returns checkpoint i.
func (c *Course) At(i int) Checkpoint {
	return c.checkpoints[i]
}

// Start returns the spawn checkpoint.
func (c *Course) Start() Checkpoint {
	return c.checkpoints[0]
}

// End returns the final checkpoint (the base).
func (c *Course) End() Checkpoint {
	return c.checkpoints[len(c.checkpoints)-1]
}

// Checkpoints returns a copy of the checkpoint list.
func (c *Course) Checkpoints() []Checkpoint {
	out := make([]Checkpoint, len(c.checkpoints))
	copy(out, c.checkpoints)
	return out
}

// Trace returns every tile an enemy occupies while walking the course,
// using the same per-axis stepping as Enemy.Advance. Tiles are unique and
// listed in first-visit order.
func (c *Course) Trace() []Checkpoint {
	seen := make(map[Checkpoint]bool)
	var out []Checkpoint
	visit := func(p Checkpoint) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	pos := c.Start()
	visit(pos)
	for _, cp := range c.checkpoints[1:] {
		for pos != cp {
			pos = Checkpoint{X: stepToward(pos.X, cp.X), Y: stepToward(pos.Y, cp.Y)}
			visit(pos)
		}
	}
	return out
}
