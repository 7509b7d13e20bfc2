package flatgeom

import (
	"encoding/json"

	"github.com/paulmach/go.geojson"
)

// MarshalJSON converts the feature into JSON with a stable field order.
func (f *Feature) MarshalJSON() ([]byte, error) {
	// defining a struct here lets us define the order of the JSON elements.
	type feature struct {
		ID         interface{}            `json:"id,omitempty"`
		Type       geojson.GeometryType   `json:"type"`
		Geometry   *Geometry              `json:"geometry"`
		Properties map[string]interface{} `json:"properties"`
		BBox       []float64              `json:"bbox"`
	}

	return json.Marshal(&feature{
		ID:         f.ID,
		Type:       f.Type,
		Geometry:   f.Geometry,
		Properties: f.Properties,
		BBox:       []float64{f.MinX, f.MinY, f.MaxX, f.MaxY},
	})
}

// MarshalJSON writes whichever representation matches the geometry type.
// This fulfills the json.Marshaler interface.
func (g *Geometry) MarshalJSON() ([]byte, error) {
	type geometry struct {
		Type     geojson.GeometryType `json:"type"`
		Points   []float64            `json:"points,omitempty"`
		Line     *Ring                `json:"line,omitempty"`
		Rings    []*Ring              `json:"rings,omitempty"`
		Polygons [][]*Ring            `json:"polygons,omitempty"`
	}

	geo := &geometry{Type: g.Type}

	switch g.Type {
	case geojson.GeometryPoint, geojson.GeometryMultiPoint:
		geo.Points = g.Points
	case geojson.GeometryLineString:
		geo.Line = g.Line
	case geojson.GeometryMultiLineString, geojson.GeometryPolygon:
		geo.Rings = g.Rings
	case geojson.GeometryMultiPolygon:
		geo.Polygons = g.Polygons
	}

	return json.Marshal(geo)
}
