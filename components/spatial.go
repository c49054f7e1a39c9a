package components

// Position is a grid cell coordinate. Treated as an immutable value:
// moving an animal replaces its Position rather than editing it.
type Position struct {
	X, Y int
}

// Offset returns the position shifted by (dx, dy), clamped to [0,w) x [0,h).
func (p Position) Offset(dx, dy, w, h int) Position {
	return Position{
		X: min(w-1, max(0, p.X+dx)),
		Y: min(h-1, max(0, p.Y+dy)),
	}
}

// In reports whether the position lies inside a w x h grid.
func (p Position) In(w, h int) bool {
	return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
}

// Box is a rectangular sub-region of the grid: X <= x < X+W, Y <= y < Y+H.
type Box struct {
	X, Y int
	W, H int
}

// FullBox returns the box covering a whole w x h grid.
func FullBox(w, h int) Box {
	return Box{W: w, H: h}
}

// Contains reports whether p lies inside the box.
func (b Box) Contains(p Position) bool {
	return p.X >= b.X && p.X < b.X+b.W && p.Y >= b.Y && p.Y < b.Y+b.H
}

// Clip returns the part of the box inside a w x h grid. The result is at least 1x1
// so that spawning into it always has a cell to pick.
func (b Box) Clip(w, h int) Box {
	x0 := min(w-1, max(0, b.X))
	y0 := min(h-1, max(0, b.Y))
	x1 := min(w, b.X+b.W)
	y1 := min(h, b.Y+b.H)
	return Box{X: x0, Y: y0, W: max(1, x1-x0), H: max(1, y1-y0)}
}
