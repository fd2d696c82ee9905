package sim

// Grid holds the static background and the foreground derived from it.
// Both are indexed [x][y].
type Grid struct {
	background [GridCols][GridRows]Tile
	foreground [GridCols][GridRows]Tile
}

// NewGrid returns a grid with an empty background and foreground.
func NewGrid() *Grid {
	g := &Grid{}
	g.ClearBackground()
	g.foreground = g.background
	return g
}

// ClearBackground resets every background tile to TileEmpty.
func (g *Grid) ClearBackground() {
	for x := 0; x < GridCols; x++ {
		for y := 0; y < GridRows; y++ {
			g.background[x][y] = TileEmpty
		}
	}
}

// DrawBackground sets a background tile. Out-of-bounds writes are ignored.
func (g *Grid) DrawBackground(x, y int, t Tile) {
	if !InBounds(x, y) {
		return
	}
	g.background[x][y] = t
}

// DrawTrack stamps the full route of course onto the background.
func (g *Grid) DrawTrack(course *Course) {
	for _, p := range course.Trace() {
		g.DrawBackground(p.X, p.Y, TileTrack)
	}
}

// Background returns the background tile at (x, y), or TileEmpty out of bounds.
func (g *Grid) Background(x, y int) Tile {
	if !InBounds(x, y) {
		return TileEmpty
	}
	return g.background[x][y]
}

// At returns the foreground tile at (x, y), or TileEmpty out of bounds.
func (g *Grid) At(x, y int) Tile {
	if !InBounds(x, y) {
		return TileEmpty
	}
	return g.foreground[x][y]
}

// Recompute rebuilds the foreground from the background, live enemies and
// towers, in that order, so a tower sharing a tile with an enemy shows as
// the tower.
func (g *Grid) Recompute(towers *TowerPool, enemies *EnemyPool) {
	g.foreground = g.background

	for i, n := 0, enemies.Len(); i < n; i++ {
		e := enemies.At(i)
		if e.Alive() && InBounds(e.X, e.Y) {
			g.foreground[e.X][e.Y] = TileEnemy
		}
	}

	for i, n := 0, towers.Len(); i < n; i++ {
		t := towers.At(i)
		if InBounds(t.X, t.Y) {
			g.foreground[t.X][t.Y] = TileTower
		}
	}
}

// Tiles returns a copy of the foreground.
func (g *Grid) Tiles() [GridCols][GridRows]Tile {
	return g.foreground
}

// Rows renders the foreground as one string per row, top to bottom.
func (g *Grid) Rows() []string {
	rows := make([]string, GridRows)
	buf := make([]byte, GridCols)
	for y := 0; y < GridRows; y++ {
		for x := 0; x < GridCols; x++ {
			buf[x] = byte(g.foreground[x][y])
		}
		rows[y] = string(buf)
	}
	return rows
}
