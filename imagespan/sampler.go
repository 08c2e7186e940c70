// Package imagespan produces rows of colors for the pixels of a span by
// sampling through a span.Interpolator: image samplers for transformed
// image fills and a linear gradient.
//
// Generators receive destination pixel coordinates; the interpolator's
// transformer must map destination space to source space (usually the
// inverse of the image or gradient matrix).
package imagespan

import (
	"errors"
	"image"
	"image/color"

	"github.com/gogpu/outline/span"
)

// ErrEmptyImage is returned when a sampler is created over an image with
// empty bounds.
var ErrEmptyImage = errors.New("imagespan: source image has empty bounds")

// Generator fills dst with the colors of len(dst) pixels starting at
// destination pixel (x, y).
type Generator interface {
	Generate(dst []color.RGBA, x, y int)
}

// EdgeMode selects what samplers return outside the source image.
type EdgeMode int

const (
	// EdgeClamp repeats the nearest edge pixel.
	EdgeClamp EdgeMode = iota
	// EdgeTransparent returns transparent black.
	EdgeTransparent
)

// source wraps an image for fast premultiplied pixel reads.
type source struct {
	img    image.Image
	rgba   *image.RGBA // non-nil fast path
	bounds image.Rectangle
	edge   EdgeMode
}

func newSource(img image.Image, edge EdgeMode) (source, error) {
	b := img.Bounds()
	if b.Empty() {
		return source{}, ErrEmptyImage
	}
	s := source{img: img, bounds: b, edge: edge}
	if rgba, ok := img.(*image.RGBA); ok {
		s.rgba = rgba
	}
	return s, nil
}

// at returns the premultiplied pixel at (x, y) relative to the image origin.
func (s *source) at(x, y int) color.RGBA {
	x += s.bounds.Min.X
	y += s.bounds.Min.Y
	if x < s.bounds.Min.X || y < s.bounds.Min.Y || x >= s.bounds.Max.X || y >= s.bounds.Max.Y {
		if s.edge == EdgeTransparent {
			return color.RGBA{}
		}
		x = clamp(x, s.bounds.Min.X, s.bounds.Max.X-1)
		y = clamp(y, s.bounds.Min.Y, s.bounds.Max.Y-1)
	}
	if s.rgba != nil {
		i := s.rgba.PixOffset(x, y)
		p := s.rgba.Pix[i : i+4 : i+4]
		return color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
	}
	return color.RGBAModel.Convert(s.img.At(x, y)).(color.RGBA)
}

// Nearest samples the source image with nearest-neighbor filtering.
type Nearest struct {
	src source
	it  span.Interpolator
}

var _ Generator = (*Nearest)(nil)

// NewNearest creates a nearest-neighbor sampler of img driven by it.
func NewNearest(img image.Image, it span.Interpolator, edge EdgeMode) (*Nearest, error) {
	src, err := newSource(img, edge)
	if err != nil {
		return nil, err
	}
	return &Nearest{src: src, it: it}, nil
}

// Generate samples len(dst) pixel centers starting at (x, y).
func (g *Nearest) Generate(dst []color.RGBA, x, y int) {
	if len(dst) == 0 {
		return
	}
	g.it.Begin(float64(x)+0.5, float64(y)+0.5, len(dst))
	shift := g.it.SubpixelShift()
	for i := range dst {
		sx, sy := g.it.Coordinates()
		dst[i] = g.src.at(sx>>shift, sy>>shift)
		g.it.Advance()
	}
}

// Bilinear samples the source image with bilinear filtering using the
// interpolator's subpixel bits as weights.
type Bilinear struct {
	src source
	it  span.Interpolator
}

var _ Generator = (*Bilinear)(nil)

// NewBilinear creates a bilinear sampler of img driven by it.
func NewBilinear(img image.Image, it span.Interpolator, edge EdgeMode) (*Bilinear, error) {
	src, err := newSource(img, edge)
	if err != nil {
		return nil, err
	}
	return &Bilinear{src: src, it: it}, nil
}

// Generate samples len(dst) pixel centers starting at (x, y).
func (g *Bilinear) Generate(dst []color.RGBA, x, y int) {
	if len(dst) == 0 {
		return
	}
	g.it.Begin(float64(x)+0.5, float64(y)+0.5, len(dst))
	shift := g.it.SubpixelShift()
	scale := 1 << shift
	mask := scale - 1
	half := scale >> 1
	round := (scale * scale) >> 1

	for i := range dst {
		sx, sy := g.it.Coordinates()
		sx -= half
		sy -= half
		xl, yl := sx>>shift, sy>>shift
		fx, fy := sx&mask, sy&mask

		w00 := (scale - fx) * (scale - fy)
		w10 := fx * (scale - fy)
		w01 := (scale - fx) * fy
		w11 := fx * fy

		p00 := g.src.at(xl, yl)
		p10 := g.src.at(xl+1, yl)
		p01 := g.src.at(xl, yl+1)
		p11 := g.src.at(xl+1, yl+1)

		dst[i] = color.RGBA{
			R: uint8((int(p00.R)*w00 + int(p10.R)*w10 + int(p01.R)*w01 + int(p11.R)*w11 + round) >> (2 * shift)),
			G: uint8((int(p00.G)*w00 + int(p10.G)*w10 + int(p01.G)*w01 + int(p11.G)*w11 + round) >> (2 * shift)),
			B: uint8((int(p00.B)*w00 + int(p10.B)*w10 + int(p01.B)*w01 + int(p11.B)*w11 + round) >> (2 * shift)),
			A: uint8((int(p00.A)*w00 + int(p10.A)*w10 + int(p01.A)*w01 + int(p11.A)*w11 + round) >> (2 * shift)),
		}
		g.it.Advance()
	}
}

func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}
