package systems

import (
	"fmt"
	"math/rand"

	"github.com/pthm-cable/ecosystem/components"
)

// GrassField is a fixed-size boolean resource grid: true means edible grass
// is present. Access outside the grid is a programming error and panics;
// callers clamp coordinates first.
type GrassField struct {
	W, H  int
	cells []bool
}

// NewGrassField creates a w x h field where each cell independently starts
// with grass with probability density.
func NewGrassField(w, h int, density float64, rng *rand.Rand) *GrassField {
	gf := &GrassField{W: w, H: h, cells: make([]bool, w*h)}
	for i := range gf.cells {
		gf.cells[i] = rng.Float64() < density
	}
	return gf
}

func (gf *GrassField) index(p components.Position) int {
	if !p.In(gf.W, gf.H) {
		panic(fmt.Sprintf("grass: position %v outside %dx%d field", p, gf.W, gf.H))
	}
	return p.Y*gf.W + p.X
}

// Has reports whether grass is present at p.
func (gf *GrassField) Has(p components.Position) bool {
	return gf.cells[gf.index(p)]
}

// Set writes the grass flag at p.
func (gf *GrassField) Set(p components.Position, present bool) {
	gf.cells[gf.index(p)] = present
}

// Consume removes grass at p and reports whether there was any to eat.
func (gf *GrassField) Consume(p components.Position) bool {
	i := gf.index(p)
	if !gf.cells[i] {
		return false
	}
	gf.cells[i] = false
	return true
}

// Regrow runs one regrowth attempt: with probability chance, one uniformly
// random cell is set to present. Setting an already-grown cell is a no-op.
// Returns the chosen cell and whether an attempt happened.
func (gf *GrassField) Regrow(chance float64, rng *rand.Rand) (components.Position, bool) {
	if rng.Float64() >= chance {
		return components.Position{}, false
	}
	p := components.Position{X: rng.Intn(gf.W), Y: rng.Intn(gf.H)}
	gf.Set(p, true)
	return p, true
}

// Coverage returns the number of cells with grass.
func (gf *GrassField) Coverage() int {
	n := 0
	for _, c := range gf.cells {
		if c {
			n++
		}
	}
	return n
}

// Snapshot returns a read-only copy of the field.
func (gf *GrassField) Snapshot() GrassView {
	cells := make([]bool, len(gf.cells))
	copy(cells, gf.cells)
	return GrassView{w: gf.W, h: gf.H, cells: cells}
}

// GrassView is a point-in-time copy of a GrassField for renderers and stats.
type GrassView struct {
	w, h  int
	cells []bool
}

func (v GrassView) Width() int  { return v.w }
func (v GrassView) Height() int { return v.h }

// At reports grass at (x, y); out-of-range coordinates read as false.
func (v GrassView) At(x, y int) bool {
	if x < 0 || x >= v.w || y < 0 || y >= v.h {
		return false
	}
	return v.cells[y*v.w+x]
}
