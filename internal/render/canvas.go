// Package render rasterizes widget paint calls into an image.
package render

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/widget"
)

// Canvas - widget.Canvas backed by the gg software rasterizer.
//
// Drawing calls do not return errors: the first rasterizer failure is kept
// and reported by Err until the next Clear.
type Canvas struct {
	dc  *gg.Context
	err error
}

func NewCanvas(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", apperror.ErrEmptyCanvas, width, height)
	}

	dc := gg.NewContext(width, height)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)

	return &Canvas{dc: dc}, nil
}

func (that *Canvas) Width() int {
	return that.dc.Width()
}

func (that *Canvas) Height() int {
	return that.dc.Height()
}

// Resize - changes the pixel size, the content is lost.
func (that *Canvas) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", apperror.ErrEmptyCanvas, width, height)
	}

	if err := that.dc.Resize(width, height); err != nil {
		return fmt.Errorf("failed to resize canvas: %w", err)
	}

	return nil
}

// Clear - fills the canvas with color, resets the transform and the error.
func (that *Canvas) Clear(color widget.Color) {
	that.dc.ClearWithColor(toRGBA(color))
	that.dc.Identity()
	that.err = nil
}

func (that *Canvas) Err() error {
	return that.err
}

func (that *Canvas) Push() {
	that.dc.Push()
}

func (that *Canvas) Pop() {
	that.dc.Pop()
}

func (that *Canvas) Translate(dx, dy float64) {
	that.dc.Translate(dx, dy)
}

// FillRoundedRect - gg adds rounded rectangles to the path untransformed, so
// the origin is mapped here. Widgets only translate, the size is unchanged.
func (that *Canvas) FillRoundedRect(rect widget.Rect, radius float64, color widget.Color) {
	x, y := that.dc.TransformPoint(rect.X, rect.Y)

	that.setColor(color)
	that.dc.DrawRoundedRectangle(x, y, rect.Width, rect.Height, radius)
	that.keep(that.dc.Fill())
}

func (that *Canvas) StrokeLine(segment widget.Segment, color widget.Color, width float64) {
	that.setColor(color)
	that.dc.SetLineWidth(width)
	that.dc.DrawLine(segment.From.X, segment.From.Y, segment.To.X, segment.To.Y)
	that.keep(that.dc.Stroke())
}

func (that *Canvas) StrokeArc(center widget.Point, radius, start, sweep float64, color widget.Color, width float64) {
	if sweep <= 0 || radius <= 0 {
		return
	}

	that.setColor(color)
	that.dc.SetLineWidth(width)
	that.dc.DrawArc(center.X, center.Y, radius, start, start+sweep)
	that.keep(that.dc.Stroke())
}

func (that *Canvas) Image() image.Image {
	return that.dc.Image()
}

func (that *Canvas) SavePNG(path string) error {
	if err := that.dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save png %s: %w", path, err)
	}

	return nil
}

func (that *Canvas) Close() error {
	if err := that.dc.Close(); err != nil {
		return fmt.Errorf("failed to close canvas: %w", err)
	}

	return nil
}

func (that *Canvas) setColor(color widget.Color) {
	that.dc.SetRGBA(color.R, color.G, color.B, color.A)
}

func (that *Canvas) keep(err error) {
	if err != nil && that.err == nil {
		that.err = fmt.Errorf("rasterize: %w", err)
	}
}

func toRGBA(color widget.Color) gg.RGBA {
	return gg.RGBA{R: color.R, G: color.G, B: color.B, A: color.A}
}
