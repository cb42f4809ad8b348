package vmath

// Rect is an axis-aligned box anchored at its top-left corner
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectAt builds a Rect from a position and a size
func RectAt(pos Vec2, width, height float64) Rect {
	return Rect{X: pos.X, Y: pos.Y, Width: width, Height: height}
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Intersects reports whether r and o overlap
// Touching edges do not count as overlap, matching half-open cell ranges
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Grow expands r by d on every side; negative d shrinks it
func (r Rect) Grow(d float64) Rect {
	return Rect{
		X:      r.X - d,
		Y:      r.Y - d,
		Width:  r.Width + 2*d,
		Height: r.Height + 2*d,
	}
}
