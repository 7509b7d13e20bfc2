package flatgeom

import (
	"encoding/json"
	"fmt"

	"github.com/paulmach/go.geojson"
	"golang.org/x/sync/errgroup"
)

// Convert parses raw GeoJSON and flattens it into projected features. The
// input may be a FeatureCollection, a single Feature or a bare geometry,
// including a GeometryCollection.
func Convert(data []byte, opts *Options) ([]*Feature, error) {
	var peek struct {
		Type string `json:"type"`
	}
	err := json.Unmarshal(data, &peek)
	if err != nil {
		return nil, err
	}

	switch peek.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, err
		}
		return ConvertCollection(fc, opts)
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, err
		}
		return ConvertFeature(f, opts)
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, err
		}
		return ConvertGeometry(g, opts)
	}
}

// ConvertCollection flattens every feature of a collection. Output order
// matches input order, also when Options.Workers enables the concurrent
// path.
func ConvertCollection(fc *geojson.FeatureCollection, opts *Options) ([]*Feature, error) {
	sqTolerance := opts.sqTolerance()

	if opts.Workers > 1 {
		return convertParallel(fc.Features, opts, sqTolerance)
	}

	out := make([]*Feature, 0, len(fc.Features))
	for i, f := range fc.Features {
		var err error
		out, err = convertFeature(out, f, opts, sqTolerance, i)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ConvertFeature flattens a single feature outside of any collection
// context. With GenerateID set its id becomes 0.
func ConvertFeature(f *geojson.Feature, opts *Options) ([]*Feature, error) {
	return convertFeature(nil, f, opts, opts.sqTolerance(), 0)
}

// ConvertGeometry flattens a bare geometry, wrapped as a feature without id
// or properties.
func ConvertGeometry(g *geojson.Geometry, opts *Options) ([]*Feature, error) {
	return ConvertFeature(geojson.NewFeature(g), opts)
}

// convertParallel fans the per-feature work out over a bounded group.
// Results are slotted by input index, features remain independent so no
// other coordination is needed.
func convertParallel(features []*geojson.Feature, opts *Options, sqTolerance float64) ([]*Feature, error) {
	results := make([][]*Feature, len(features))

	var g errgroup.Group
	g.SetLimit(opts.Workers)

	for i, f := range features {
		i, f := i, f
		g.Go(func() error {
			converted, err := convertFeature(nil, f, opts, sqTolerance, i)
			if err != nil {
				return err
			}
			results[i] = converted
			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		return nil, err
	}

	out := make([]*Feature, 0, len(features))
	for _, r := range results {
		out = append(out, r...)
	}
	return out, nil
}

func convertFeature(out []*Feature, f *geojson.Feature, opts *Options, sqTolerance float64, index int) ([]*Feature, error) {
	if f.Geometry == nil {
		// GeoJSON allows features without geometry, skip them.
		return out, nil
	}

	id := f.ID
	if opts.PromoteID != "" {
		id = f.Properties[opts.PromoteID]
	} else if opts.GenerateID {
		id = index
	}

	return convertGeometry(out, id, f.Geometry, f.Properties, opts, sqTolerance)
}

func convertGeometry(out []*Feature, id interface{}, g *geojson.Geometry, properties map[string]interface{}, opts *Options, sqTolerance float64) ([]*Feature, error) {
	geom := &Geometry{Type: g.Type}

	switch g.Type {
	case geojson.GeometryPoint:
		points, err := flattenPoint(g.Point, nil)
		if err != nil {
			return nil, err
		}
		geom.Points = points

	case geojson.GeometryMultiPoint:
		points := make([]float64, 0, len(g.MultiPoint)*3)
		for _, p := range g.MultiPoint {
			var err error
			points, err = flattenPoint(p, points)
			if err != nil {
				return nil, err
			}
		}
		geom.Points = points

	case geojson.GeometryLineString:
		line, err := flattenLine(g.LineString, sqTolerance, false)
		if err != nil {
			return nil, err
		}
		geom.Line = line

	case geojson.GeometryMultiLineString:
		if opts.LineMetrics {
			// Explode into one feature per line, so every length metric
			// stays independently addressable downstream.
			for _, l := range g.MultiLineString {
				line, err := flattenLine(l, sqTolerance, false)
				if err != nil {
					return nil, err
				}
				out = append(out, NewFeature(id, geojson.GeometryLineString, &Geometry{
					Type: geojson.GeometryLineString,
					Line: line,
				}, properties))
			}
			return out, nil
		}

		rings, err := flattenLines(g.MultiLineString, sqTolerance, false)
		if err != nil {
			return nil, err
		}
		geom.Rings = rings

	case geojson.GeometryPolygon:
		rings, err := flattenLines(g.Polygon, sqTolerance, true)
		if err != nil {
			return nil, err
		}
		geom.Rings = rings

	case geojson.GeometryMultiPolygon:
		polygons := make([][]*Ring, len(g.MultiPolygon))
		for i, p := range g.MultiPolygon {
			rings, err := flattenLines(p, sqTolerance, true)
			if err != nil {
				return nil, err
			}
			polygons[i] = rings
		}
		geom.Polygons = polygons

	case geojson.GeometryCollection:
		// Every member becomes its own feature, sharing the parent's id and
		// properties. The collection itself produces no feature.
		for _, member := range g.Geometries {
			var err error
			out, err = convertGeometry(out, id, member, properties, opts, sqTolerance)
			if err != nil {
				return nil, err
			}
		}
		return out, nil

	default:
		return nil, fmt.Errorf("%w: unsupported type %q", ErrInvalidGeometry, g.Type)
	}

	return append(out, NewFeature(id, g.Type, geom, properties)), nil
}
