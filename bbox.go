package quadtree

import "math"

// Rect is an axis-aligned rectangle given by its top-left corner and its size.
type Rect struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	W float64 `json:"w" yaml:"w"`
	H float64 `json:"h" yaml:"h"`
}

// Item is anything that occupies a rectangular region of the plane. The tree
// stores items as given and only ever looks at their bounds.
type Item interface {
	Bounds() Rect
}

// Bounds returns r, so that a plain Rect can be stored in a Tree.
func (r Rect) Bounds() Rect {
	return r
}

// MaxX is the right edge of r.
func (r Rect) MaxX() float64 {
	return r.X + r.W
}

// MaxY is the bottom edge of r.
func (r Rect) MaxY() float64 {
	return r.Y + r.H
}

// Overlaps reports whether r and o share any point, edges included.
func (r Rect) Overlaps(o Rect) bool {
	return true &&
		(r.X <= o.MaxX()) && (r.MaxX() >= o.X) &&
		(r.Y <= o.MaxY()) && (r.MaxY() >= o.Y)
}

// Contains reports whether o lies entirely inside r.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.MaxX() <= r.MaxX() &&
		o.Y >= r.Y && o.MaxY() <= r.MaxY()
}

// mid gives the vertical and horizontal split lines of r.
func (r Rect) mid() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// quadrants splits r into four equal parts, ordered top-left, top-right,
// bottom-left, bottom-right.
func (r Rect) quadrants() [4]Rect {
	w, h := r.W/2, r.H/2
	return [4]Rect{
		{X: r.X, Y: r.Y, W: w, H: h},
		{X: r.X + w, Y: r.Y, W: w, H: h},
		{X: r.X, Y: r.Y + h, W: w, H: h},
		{X: r.X + w, Y: r.Y + h, W: w, H: h},
	}
}

// checkRect returns a short reason if r cannot take part in placement, or the
// empty string if it can.
func checkRect(r Rect) string {
	for _, v := range [...]float64{r.X, r.Y, r.W, r.H} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return "coordinates must be finite"
		}
	}
	if r.W < 0 || r.H < 0 {
		return "width and height must not be negative"
	}
	return ""
}
