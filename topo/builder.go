// Package topo turns loose road lines into a node/link graph, either by
// inferring shared endpoints from geometry or by matching lines against an
// explicit set of node features.
package topo

import (
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/xyxYang/geometry-calculator/geo"
)

// Logger receives diagnostics, log.Printf style.
type Logger func(format string, args ...interface{})

type Option func(*Builder)

type Builder struct {
	measure  *geo.Measure
	key      KeyFunc
	newNode  func(orb.Point) Feature
	logf     Logger
	progress func(done, total int)
}

func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		measure: geo.DefaultMeasure(),
		key:     CoordinateKey,
		newNode: NewPointFeature,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func WithMeasure(m *geo.Measure) Option {
	return func(b *Builder) {
		if m != nil {
			b.measure = m
		}
	}
}

// WithKeyFunc sets how node coordinates are keyed by MatchNodes.
func WithKeyFunc(fn KeyFunc) Option {
	return func(b *Builder) {
		if fn != nil {
			b.key = fn
		}
	}
}

// WithNodeFactory sets how InferNodes creates the feature of a new node.
func WithNodeFactory(fn func(orb.Point) Feature) Option {
	return func(b *Builder) {
		if fn != nil {
			b.newNode = fn
		}
	}
}

func WithLogger(fn Logger) Option {
	return func(b *Builder) {
		b.logf = fn
	}
}

// WithProgress is called after every scanned link.
func WithProgress(fn func(done, total int)) Option {
	return func(b *Builder) {
		b.progress = fn
	}
}

func (b *Builder) Measure() *geo.Measure {
	return b.measure
}

func (b *Builder) log(format string, args ...interface{}) {
	if b.logf != nil {
		b.logf(format, args...)
	}
}

func (b *Builder) tick(done, total int) {
	if b.progress != nil {
		b.progress(done, total)
	}
}

// addLinks wraps every usable line feature in a link. Bad records are
// reported and skipped.
func (b *Builder) addLinks(g *Graph, lines []Feature) {
	for i, f := range lines {
		line, err := lineOf(f)
		if err != nil {
			rec := g.Report.skip("line", i, err)
			b.log("Skipping %s", rec)
			continue
		}

		g.Links = append(g.Links, &Link{
			ID:      len(g.Links),
			Feature: f,
			Line:    line,
			Start:   NoNode,
			End:     NoNode,
		})
	}
}

func lineOf(f Feature) (orb.LineString, error) {
	if f == nil {
		return nil, errors.Wrap(ErrInvalidGeometry, "missing feature")
	}

	switch geom := f.Geometry().(type) {
	case orb.LineString:
		if len(geom) == 0 {
			return nil, errors.Wrap(ErrInvalidGeometry, "empty line")
		}
		return geom, nil
	case nil:
		return nil, errors.Wrap(ErrInvalidGeometry, "missing geometry")
	default:
		return nil, errors.Wrapf(ErrInvalidGeometry, "expected LineString, got %s", geom.GeoJSONType())
	}
}

func pointOf(f Feature) (orb.Point, error) {
	if f == nil {
		return orb.Point{}, errors.Wrap(ErrInvalidGeometry, "missing feature")
	}

	switch geom := f.Geometry().(type) {
	case orb.Point:
		return geom, nil
	case nil:
		return orb.Point{}, errors.Wrap(ErrInvalidGeometry, "missing geometry")
	default:
		return orb.Point{}, errors.Wrapf(ErrInvalidGeometry, "expected Point, got %s", geom.GeoJSONType())
	}
}
