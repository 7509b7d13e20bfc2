package flatgeom

import (
	"errors"

	"github.com/paulmach/go.geojson"
)

// ErrInvalidGeometry is returned when the input contains a geometry this
// pipeline cannot handle: an unknown type tag or a malformed coordinate
// pair.
var ErrInvalidGeometry = errors.New("invalid geometry")

// Ring is one flattened line or polygon ring: projected coordinates stored
// as a flat run of (x, y, weight) triples. A weight of 1 marks points that
// must survive simplification, 0 marks points not yet classified, anything
// in between was assigned by the point reducer.
type Ring struct {
	Coords []float64 `json:"coords"`

	// Size is the absolute ring area for polygon rings, the cumulative
	// Euclidean length for lines, both in projected units.
	Size  float64 `json:"size"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Geometry is the projected form of a single GeoJSON geometry. Which field
// is set depends on Type.
type Geometry struct {
	Type geojson.GeometryType

	Points   []float64 // Point and MultiPoint, one triple per point
	Line     *Ring     // LineString
	Rings    []*Ring   // MultiLineString and Polygon
	Polygons [][]*Ring // MultiPolygon, one ring set per member polygon
}
