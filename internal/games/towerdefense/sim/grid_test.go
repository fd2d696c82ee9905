package sim

import (
	"strings"
	"testing"
)

func TestGridRecomputeLayers(t *testing.T) {
	course := DefaultCourse()
	g := NewGrid()
	g.DrawTrack(course)

	towers := NewTowerPool()
	towers.Add(NewTower(4, 5))
	towers.Add(NewTower(10, 10))

	enemies := NewEnemyPool()
	enemies.Add(NewEnemy(course, 3, 7))
	enemies.Add(NewEnemy(course, 10, 10)) // shares a tile with a tower
	dead := NewEnemy(course, 12, 12)
	dead.Kill()
	enemies.Add(dead)

	g.Recompute(towers, enemies)

	tests := []struct {
		x, y int
		want Tile
	}{
		{3, 7, TileEnemy},
		{4, 5, TileTower},
		{10, 10, TileTower},
		{12, 12, TileEmpty},
		{8, 5, TileTrack},
		{0, 0, TileTrack},
		{15, 15, TileEmpty},
	}
	for _, tc := range tests {
		if got := g.At(tc.x, tc.y); got != tc.want {
			t.Errorf("At(%d, %d) = %q, expected %q", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestGridRecomputeIdempotent(t *testing.T) {
	w := NewWorld(0)
	w.Enemies.Add(NewEnemy(w.Course, 6, 5))

	w.Recompute()
	first := w.Player.Grid.Tiles()
	w.Recompute()
	second := w.Player.Grid.Tiles()

	if first != second {
		t.Error("Recompute() is not idempotent")
	}
}

func TestGridRecomputeHasNoMemory(t *testing.T) {
	course := DefaultCourse()
	g := NewGrid()
	towers := NewTowerPool()
	enemies := NewEnemyPool()
	enemies.Add(NewEnemy(course, 14, 14))

	g.Recompute(towers, enemies)
	if g.At(14, 14) != TileEnemy {
		t.Fatal("enemy not stamped")
	}

	enemies.Clear()
	g.Recompute(towers, enemies)
	if g.At(14, 14) != TileEmpty {
		t.Errorf("stale enemy tile %q left after recompute", g.At(14, 14))
	}
	if g.Background(14, 14) != TileEmpty {
		t.Error("recompute must not touch the background")
	}
}

func TestGridRows(t *testing.T) {
	g := NewGrid()
	g.DrawBackground(2, 1, TileTrack)
	g.DrawBackground(-1, 99, TileTrack) // ignored
	g.Recompute(NewTowerPool(), NewEnemyPool())

	rows := g.Rows()
	if len(rows) != GridRows {
		t.Fatalf("len(Rows()) = %d, expected %d", len(rows), GridRows)
	}
	if rows[1] != ".."+"#"+strings.Repeat(".", GridCols-3) {
		t.Errorf("Rows()[1] = %q", rows[1])
	}
	if g.At(-1, 0) != TileEmpty {
		t.Error("out-of-bounds At should be empty")
	}
}
