package flatgeom

import (
	"fmt"

	shp "github.com/jonas-p/go-shp"
	"github.com/paulmach/go.geojson"
)

// ShapeReader iterates an ESRI shapefile and produces GeoJSON features that
// can be fed through Convert. Attribute columns become feature properties.
type ShapeReader struct {
	reader *shp.Reader
	fields []shp.Field
}

func OpenShapefile(path string) (*ShapeReader, error) {
	reader, err := shp.Open(path)
	if err != nil {
		return nil, err
	}

	return &ShapeReader{
		reader: reader,
		fields: reader.Fields(),
	}, nil
}

func (s *ShapeReader) Close() error {
	return s.reader.Close()
}

// Count returns the number of records in the attribute table.
func (s *ShapeReader) Count() int {
	return s.reader.AttributeCount()
}

// Next returns the next feature, or nil once the file is exhausted.
func (s *ShapeReader) Next() (*geojson.Feature, error) {
	if !s.reader.Next() {
		return nil, nil
	}

	n, p := s.reader.Shape()

	geom, err := shapeGeometry(p)
	if err != nil {
		return nil, err
	}

	f := geojson.NewFeature(geom)
	for i, field := range s.fields {
		f.Properties[field.String()] = s.reader.ReadAttribute(n, i)
	}
	return f, nil
}

// ReadShapefile loads a whole shapefile into a feature collection.
func ReadShapefile(path string) (*geojson.FeatureCollection, error) {
	s, err := OpenShapefile(path)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	fc := geojson.NewFeatureCollection()
	for {
		f, err := s.Next()
		if err != nil {
			return nil, err
		}
		if f == nil {
			break
		}
		fc.AddFeature(f)
	}
	return fc, nil
}

func shapeGeometry(p shp.Shape) (*geojson.Geometry, error) {
	switch shape := p.(type) {
	case *shp.Point:
		return geojson.NewPointGeometry([]float64{shape.X, shape.Y}), nil
	case *shp.MultiPoint:
		coords := make([][]float64, len(shape.Points))
		for i, pt := range shape.Points {
			coords[i] = []float64{pt.X, pt.Y}
		}
		return geojson.NewMultiPointGeometry(coords...), nil
	case *shp.PolyLine:
		return geojson.NewMultiLineStringGeometry(shapeParts(shape.Parts, shape.Points)...), nil
	case *shp.Polygon:
		return geojson.NewPolygonGeometry(shapeParts(shape.Parts, shape.Points)), nil
	default:
		return nil, fmt.Errorf("%w: unsupported shape %T", ErrInvalidGeometry, p)
	}
}

// shapeParts slices the flat point list into its parts, the way shapefiles
// store multi-part geometries.
func shapeParts(parts []int32, points []shp.Point) [][][]float64 {
	out := make([][][]float64, 0, len(parts))
	for i, first := range parts {
		last := len(points)
		if i < len(parts)-1 {
			last = int(parts[i+1])
		}

		part := make([][]float64, 0, last-int(first))
		for _, pt := range points[first:last] {
			part = append(part, []float64{pt.X, pt.Y})
		}
		out = append(out, part)
	}
	return out
}
