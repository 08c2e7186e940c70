// Command outlinedemo renders contour outlines, strokes and transformed
// image spans to a PNG file.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/outline"
	"github.com/gogpu/outline/contour"
	"github.com/gogpu/outline/imagespan"
	"github.com/gogpu/outline/path"
	"github.com/gogpu/outline/raster"
	"github.com/gogpu/outline/span"
	"github.com/gogpu/outline/stroke"
	"golang.org/x/image/draw"
	"honnef.co/go/curve"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		output  = flag.String("output", "outline.png", "output file")
		offset  = flag.Float64("offset", 12, "contour width")
		join    = flag.String("join", "miter", "contour join: miter, miter-revert, miter-round, round, bevel")
		subdiv  = flag.Uint("subdiv", span.DefaultSubdivShift, "span subdivision shift")
		workers = flag.Int("workers", 0, "span fill workers (0 = GOMAXPROCS)")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	outline.SetLogger(logger)

	lj, err := parseJoin(*join)
	if err != nil {
		logger.Error("invalid flag", "err", err)
		os.Exit(2)
	}

	img := image.NewRGBA(image.Rect(0, 0, *width, *height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	drawContourDemo(img, *offset, lj)
	drawStrokeDemo(img)
	if err := drawImageDemo(img, *subdiv, *workers); err != nil {
		logger.Error("image demo failed", "err", err)
		os.Exit(1)
	}

	if err := savePNG(img, *output); err != nil {
		logger.Error("save failed", "err", err)
		os.Exit(1)
	}
	logger.Info("demo saved", "path", *output, "width", *width, "height", *height)
}

func parseJoin(s string) (stroke.LineJoin, error) {
	switch s {
	case "miter":
		return stroke.LineJoinMiter, nil
	case "miter-revert":
		return stroke.LineJoinMiterRevert, nil
	case "miter-round":
		return stroke.LineJoinMiterRound, nil
	case "round":
		return stroke.LineJoinRound, nil
	case "bevel":
		return stroke.LineJoinBevel, nil
	default:
		return 0, fmt.Errorf("unknown join %q", s)
	}
}

// star adds a closed star polygon to ps.
func star(ps *path.Storage, cx, cy, outerR, innerR float64, points int) {
	for i := 0; i < points*2; i++ {
		angle := float64(i)*math.Pi/float64(points) - math.Pi/2
		r := outerR
		if i%2 == 1 {
			r = innerR
		}
		x := cx + r*math.Cos(angle)
		y := cy + r*math.Sin(angle)
		if i == 0 {
			ps.MoveTo(x, y)
		} else {
			ps.LineTo(x, y)
		}
	}
	ps.ClosePolygon()
}

func drawContourDemo(img *image.RGBA, offset float64, lj stroke.LineJoin) {
	var ps path.Storage
	star(&ps, 150, 150, 100, 45, 5)

	gen := contour.NewGenerator(
		contour.WithWidth(offset),
		contour.WithLineJoin(lj),
		contour.WithAutoDetectOrientation(true),
	)
	raster.FillVector(img, contour.NewConv(&ps, gen), 0, color.RGBA{R: 40, G: 90, B: 200, A: 255})
	raster.FillVector(img, &ps, 0, color.RGBA{R: 230, G: 60, B: 50, A: 255})
}

func drawStrokeDemo(img *image.RGBA) {
	// The wave is stroked in local units and placed with mtx afterwards, so
	// round caps and joins are tessellated for the scaled size.
	var bp curve.BezPath
	bp.MoveTo(curve.Point{X: 0, Y: 0})
	bp.CubicTo(curve.Point{X: 30, Y: -50}, curve.Point{X: 70, Y: 50}, curve.Point{X: 100, Y: 0})
	bp.CubicTo(curve.Point{X: 120, Y: -30}, curve.Point{X: 150, Y: 30}, curve.Point{X: 190, Y: 0})

	var ps path.Storage
	path.AppendBezPath(&ps, bp, 0.05)

	mtx := outline.Translate(320, 120).Multiply(outline.Scale(2, 2))
	st := contour.NewStroker(
		contour.WithWidth(5),
		contour.WithLineCap(stroke.LineCapRound),
		contour.WithLineJoin(stroke.LineJoinRound),
		contour.WithApproximationScale(mtx.Scaling()),
	)
	placed := path.NewTransformed(contour.NewConv(&ps, st), &mtx)
	raster.FillRasterx(img, placed, 0, color.RGBA{R: 240, G: 150, B: 0, A: 255})
}

func checkerboard(size, cell int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := color.RGBA{R: 30, G: 30, B: 30, A: 255}
			if (x/cell+y/cell)%2 == 0 {
				c = color.RGBA{R: 220, G: 220, B: 120, A: 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func drawImageDemo(img *image.RGBA, subdiv uint, workers int) error {
	src := checkerboard(64, 8)

	// Image placement: scale 3, rotate, move into the lower left area.
	mtx := outline.Translate(200, 420).
		Multiply(outline.Rotate(math.Pi / 7)).
		Multiply(outline.Scale(3, 3)).
		Multiply(outline.Translate(-32, -32))
	inv := mtx.Invert()

	it := span.NewSubdiv(&inv, span.WithSubdivShift(subdiv))
	sampler, err := imagespan.NewBilinear(src, it, imagespan.EdgeTransparent)
	if err != nil {
		return fmt.Errorf("create sampler: %w", err)
	}

	var frame path.Storage
	corners := []outline.Point{{X: 0, Y: 0}, {X: 64, Y: 0}, {X: 64, Y: 64}, {X: 0, Y: 64}}
	for i, c := range corners {
		p := mtx.TransformPoint(c)
		if i == 0 {
			frame.MoveTo(p.X, p.Y)
		} else {
			frame.LineTo(p.X, p.Y)
		}
	}
	frame.ClosePolygon()
	raster.FillSpans(img, &frame, 0, sampler)

	// Reference thumbnail through x/image/draw with the same kind of placement.
	thumb := outline.Translate(750, 260).
		Multiply(outline.Rotate(math.Pi / 7)).
		Multiply(outline.Translate(-32, -32))
	draw.BiLinear.Transform(img, thumb.Aff3(), src, src.Bounds(), draw.Over, nil)

	// Gradient band through a rounded contour of a rectangle.
	var band path.Storage
	band.MoveTo(450, 330)
	band.LineTo(750, 330)
	band.LineTo(750, 530)
	band.LineTo(450, 530)
	band.ClosePolygon()

	gradMtx := outline.Translate(450, 0).Multiply(outline.Scale(300, 1))
	gradInv := gradMtx.Invert()
	newGrad := func() imagespan.Generator {
		return imagespan.NewLinearGradient(span.NewLinear(&gradInv), 0, 1,
			color.RGBA{R: 20, G: 160, B: 90, A: 255}, color.RGBA{R: 20, G: 40, B: 160, A: 255})
	}

	rounded := contour.NewConv(&band, contour.NewGenerator(
		contour.WithWidth(40),
		contour.WithLineJoin(stroke.LineJoinRound),
		contour.WithAutoDetectOrientation(true),
	))
	filler := raster.NewSpanFiller(workers)
	defer filler.Close()
	filler.Fill(img, rounded, 0, newGrad)
	return nil
}

func savePNG(img image.Image, name string) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return f.Close()
}
