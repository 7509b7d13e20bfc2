package flatgeom

import (
	"math"

	"github.com/paulmach/go.geojson"
)

// Feature pairs a flattened geometry with the identity of the feature it
// came from, plus its bounding box in projected coordinates.
type Feature struct {
	ID         interface{}
	Type       geojson.GeometryType
	Geometry   *Geometry
	Properties map[string]interface{}

	MinX, MinY float64
	MaxX, MaxY float64
}

// NewFeature builds an output feature and computes its bounding box.
func NewFeature(id interface{}, geometryType geojson.GeometryType, geom *Geometry, properties map[string]interface{}) *Feature {
	f := &Feature{
		ID:         id,
		Type:       geometryType,
		Geometry:   geom,
		Properties: properties,
		MinX:       math.Inf(1),
		MinY:       math.Inf(1),
		MaxX:       math.Inf(-1),
		MaxY:       math.Inf(-1),
	}

	switch geometryType {
	case geojson.GeometryPoint, geojson.GeometryMultiPoint:
		f.expand(geom.Points)
	case geojson.GeometryLineString:
		f.expand(geom.Line.Coords)
	case geojson.GeometryMultiLineString, geojson.GeometryPolygon:
		for _, r := range geom.Rings {
			f.expand(r.Coords)
		}
	case geojson.GeometryMultiPolygon:
		for _, p := range geom.Polygons {
			for _, r := range p {
				f.expand(r.Coords)
			}
		}
	}

	// Degenerate geometries are valid but leave the box untouched. Settle
	// on zeros, ±Inf cannot be encoded as JSON.
	if f.MinX > f.MaxX {
		f.MinX, f.MinY, f.MaxX, f.MaxY = 0, 0, 0, 0
	}

	return f
}

// expand grows the bounding box over a run of (x, y, weight) triples.
func (f *Feature) expand(coords []float64) {
	for i := 0; i+1 < len(coords); i += 3 {
		f.MinX = math.Min(f.MinX, coords[i])
		f.MinY = math.Min(f.MinY, coords[i+1])
		f.MaxX = math.Max(f.MaxX, coords[i])
		f.MaxY = math.Max(f.MaxY, coords[i+1])
	}
}
