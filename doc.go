// Package outline provides the geometry core of a scanline 2D renderer:
// offset outlines of closed polygons and per-span coordinate interpolation
// for transformed image and gradient sampling.
//
// # Overview
//
// The module is split into small packages that compose through two
// protocols:
//
//   - [path.VertexSource]: a pull interface (Rewind, then Vertex until
//     CmdStop) implemented by path storage and by the generators in
//     package contour. Generators can consume other generators without
//     intermediate buffers.
//   - [span.Interpolator]: given a source-space horizontal span, yields
//     fixed-point target coordinates one pixel at a time.
//
// # Quick Start
//
//	var ps path.Storage
//	ps.MoveTo(0, 0)
//	ps.LineTo(10, 0)
//	ps.LineTo(10, 10)
//	ps.LineTo(0, 10)
//	ps.ClosePolygon()
//
//	gen := contour.NewGenerator(contour.WithWidth(2), contour.WithAutoDetectOrientation(true))
//	conv := contour.NewConv(&ps, gen)
//	raster.FillVector(img, conv, 0, color.Black)
//
// # Architecture
//
// The module is organized into:
//   - Public API: Matrix, Point, logger
//   - path: commands, vertex sequences, path storage
//   - stroke: cap and join math
//   - contour: contour and stroke generators, pipeline adaptor
//   - dda: fixed-point line interpolation
//   - span: linear and subdivided span interpolators
//   - imagespan, raster: reference consumers built on x/image and rasterx
//
// # Coordinate System
//
// Coordinates are real-valued with Y growing in the direction of the
// target raster. Polygon orientation is defined by the sign of the
// shoelace area: positive is counter-clockwise, negative is clockwise.
//
// # Concurrency
//
// Generators and interpolators are single-goroutine values. A Matrix may be
// shared by several interpolators as long as it is not modified during an
// interpolation pass. SetLogger is safe for concurrent use.
package outline

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
