package window

import (
	"fmt"
	"image/color"
	_ "image/png" // PNG sprite files

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/tui-towerdefense/internal/core"
	"github.com/vovakirdan/tui-towerdefense/internal/games/towerdefense"
	"github.com/vovakirdan/tui-towerdefense/internal/games/towerdefense/sim"
)

// drawnTiles are the tiles the renderer knows how to draw.
var drawnTiles = []sim.Tile{sim.TileEmpty, sim.TileTrack, sim.TileTower, sim.TileEnemy}

// Sprites maps tiles to images. It is built once before the window opens
// and only read afterwards.
type Sprites struct {
	images map[sim.Tile]*ebiten.Image
	cellW  int
	cellH  int
}

// LoadSprites loads a file sprite for every tile in paths and a solid
// square in the theme color for the rest. Any unreadable file fails the load.
func LoadSprites(paths map[sim.Tile]string, theme towerdefense.Theme, cellW, cellH int) (*Sprites, error) {
	s := &Sprites{
		images: make(map[sim.Tile]*ebiten.Image, len(drawnTiles)),
		cellW:  cellW,
		cellH:  cellH,
	}

	for _, t := range drawnTiles {
		if p, ok := paths[t]; ok {
			img, _, err := ebitenutil.NewImageFromFile(p)
			if err != nil {
				return nil, fmt.Errorf("window: load sprite %q for tile %s: %w", p, t, err)
			}
			s.images[t] = img
			continue
		}

		img := ebiten.NewImage(cellW, cellH)
		img.Fill(tileColor(theme.Cell(t).Color))
		s.images[t] = img
	}

	return s, nil
}

// Image returns the image for t. Unknown tiles draw as empty.
func (s *Sprites) Image(t sim.Tile) *ebiten.Image {
	if img, ok := s.images[t]; ok {
		return img
	}
	return s.images[sim.TileEmpty]
}

// DrawTile draws t scaled into the cell at grid position (x, y).
func (s *Sprites) DrawTile(dst *ebiten.Image, t sim.Tile, x, y int) {
	img := s.Image(t)
	if img == nil {
		return
	}

	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(s.cellW)/float64(b.Dx()), float64(s.cellH)/float64(b.Dy()))
	op.GeoM.Translate(float64(x*s.cellW), float64(y*s.cellH))
	dst.DrawImage(img, op)
}

func tileColor(c core.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
