package widget

type Point struct {
	X, Y float64
}

func (that Point) Add(other Point) Point {
	return Point{X: that.X + other.X, Y: that.Y + other.Y}
}

type Size struct {
	Width, Height float64
}

type Rect struct {
	X, Y, Width, Height float64
}

func (that Rect) Origin() Point {
	return Point{X: that.X, Y: that.Y}
}

// Contains - half-open on the far edges, so adjacent rects never share a point.
func (that Rect) Contains(p Point) bool {
	return p.X >= that.X && p.X < that.X+that.Width && p.Y >= that.Y && p.Y < that.Y+that.Height
}

func (that Rect) Offset(by Point) Rect {
	return Rect{X: that.X + by.X, Y: that.Y + by.Y, Width: that.Width, Height: that.Height}
}

// Segment - straight line between two points.
type Segment struct {
	From, To Point
}

// Constraints - size range a widget may choose from during layout.
type Constraints struct {
	Min, Max Size
}

// ConstrainAspectRatio - size closest to the requested width whose
// height/width equals ratio, fitted into the constraints. Height wins when
// both cannot be satisfied.
func (that Constraints) ConstrainAspectRatio(ratio, width float64) Size {
	width = min(max(width, that.Min.Width), that.Max.Width)
	height := width * ratio

	switch {
	case height > that.Max.Height:
		height = that.Max.Height
		width = height / ratio
	case height < that.Min.Height:
		height = that.Min.Height
		width = height / ratio
	}

	return Size{
		Width:  min(max(width, that.Min.Width), that.Max.Width),
		Height: height,
	}
}

// Color - straight (non-premultiplied) RGBA, components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// Grey - opaque grey from an 8-bit level.
func Grey(level uint8) Color {
	v := float64(level) / 255

	return Color{R: v, G: v, B: v, A: 1}
}

func (that Color) WithAlpha(alpha float64) Color {
	that.A = min(max(alpha, 0), 1)

	return that
}
