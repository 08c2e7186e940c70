package raster

import (
	"image"

	"github.com/gogpu/outline"
	"github.com/gogpu/outline/imagespan"
	"github.com/gogpu/outline/internal/parallel"
	"github.com/gogpu/outline/path"
	"golang.org/x/image/draw"
)

// bandsPerWorker is the number of row bands queued per worker, so that
// workers finishing early can steal the rest.
const bandsPerWorker = 4

// SpanFiller is FillSpans spread over a worker pool. Coverage is computed
// once; the rows are split into bands and every band gets a generator of
// its own, since interpolators keep per-span state.
type SpanFiller struct {
	pool *parallel.Pool
}

// NewSpanFiller starts a filler with the given number of workers
// (GOMAXPROCS when workers is not positive). Call Close when done.
func NewSpanFiller(workers int) *SpanFiller {
	return &SpanFiller{pool: parallel.NewPool(workers)}
}

// Workers returns the number of worker goroutines.
func (f *SpanFiller) Workers() int { return f.pool.Workers() }

// Close stops the workers. Fill keeps working afterwards on the calling
// goroutine.
func (f *SpanFiller) Close() { f.pool.Close() }

// Fill fills the path at pathID on dst. newGen is called once per band
// and may be called concurrently; the generators it returns must not
// share mutable state.
func (f *SpanFiller) Fill(dst draw.Image, src path.VertexSource, pathID int, newGen func() imagespan.Generator) {
	b, ok := spanBounds(dst, src, pathID)
	if !ok {
		return
	}
	mask := Mask(src, pathID, b)
	colors := image.NewRGBA(b)

	bands := min(f.pool.Workers()*bandsPerWorker, b.Dy())
	h := (b.Dy() + bands - 1) / bands
	bands = (b.Dy() + h - 1) / h

	if outline.DebugEnabled() {
		outline.Logger().Debug("raster: parallel span fill",
			"bands", bands, "rows", b.Dy(), "workers", f.pool.Workers())
	}

	f.pool.ForEach(bands, func(i int) {
		y0 := b.Min.Y + i*h
		y1 := min(y0+h, b.Max.Y)
		generateRows(colors, mask, y0, y1, newGen())
	})
	draw.DrawMask(dst, b, colors, b.Min, mask, b.Min, draw.Over)
}
