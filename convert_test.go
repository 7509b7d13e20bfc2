package flatgeom

import (
	"errors"
	"reflect"
	"testing"

	"github.com/cheekybits/is"
	"github.com/paulmach/go.geojson"
)

func TestConvertCollectionCount(t *testing.T) {
	is := is.New(t)

	fc := geojson.NewFeatureCollection()
	fc.AddFeature(geojson.NewFeature(geojson.NewPointGeometry([]float64{1, 2})))
	fc.AddFeature(geojson.NewFeature(geojson.NewLineStringGeometry([][]float64{
		{0, 0}, {1, 1},
	})))
	fc.AddFeature(geojson.NewFeature(geojson.NewPolygonGeometry([][][]float64{
		{{0, 0}, {1, 0}, {1, 1}, {0, 0}},
	})))

	out, err := ConvertCollection(fc, DefaultOptions())
	is.NoErr(err)
	is.Equal(len(out), 3)
	is.Equal(out[0].Type, geojson.GeometryPoint)
	is.Equal(out[1].Type, geojson.GeometryLineString)
	is.Equal(out[2].Type, geojson.GeometryPolygon)
}

func TestConvertSkipsNullGeometry(t *testing.T) {
	is := is.New(t)

	fc := geojson.NewFeatureCollection()
	fc.AddFeature(geojson.NewFeature(geojson.NewPointGeometry([]float64{1, 2})))
	fc.AddFeature(&geojson.Feature{Properties: map[string]interface{}{"empty": true}})

	out, err := ConvertCollection(fc, DefaultOptions())
	is.NoErr(err)
	is.Equal(len(out), 1)
}

func TestConvertPromoteID(t *testing.T) {
	is := is.New(t)

	f := geojson.NewFeature(geojson.NewPointGeometry([]float64{1, 2}))
	f.ID = 5
	f.Properties["code"] = "X1"

	opts := DefaultOptions()
	opts.PromoteID = "code"

	out, err := ConvertFeature(f, opts)
	is.NoErr(err)
	is.Equal(len(out), 1)
	is.Equal(out[0].ID, "X1")
}

func TestConvertGenerateID(t *testing.T) {
	is := is.New(t)

	fc := geojson.NewFeatureCollection()
	for i := 0; i < 4; i++ {
		fc.AddFeature(geojson.NewFeature(geojson.NewPointGeometry([]float64{float64(i), 0})))
	}

	opts := DefaultOptions()
	opts.GenerateID = true

	out, err := ConvertCollection(fc, opts)
	is.NoErr(err)
	for i, f := range out {
		is.Equal(f.ID, i)
	}

	// A lone feature has no collection index, it gets 0.
	lone, err := ConvertFeature(geojson.NewFeature(geojson.NewPointGeometry([]float64{1, 2})), opts)
	is.NoErr(err)
	is.Equal(lone[0].ID, 0)
}

func TestConvertVerbatimID(t *testing.T) {
	is := is.New(t)

	f := geojson.NewFeature(geojson.NewPointGeometry([]float64{1, 2}))
	f.ID = "abc"

	out, err := ConvertFeature(f, DefaultOptions())
	is.NoErr(err)
	is.Equal(out[0].ID, "abc")

	unset, err := ConvertFeature(geojson.NewFeature(geojson.NewPointGeometry([]float64{1, 2})), DefaultOptions())
	is.NoErr(err)
	is.Nil(unset[0].ID)
}

func TestConvertMultiPoint(t *testing.T) {
	is := is.New(t)

	out, err := ConvertGeometry(geojson.NewMultiPointGeometry(
		[]float64{0, 0}, []float64{1, 1}, []float64{2, 2},
	), DefaultOptions())
	is.NoErr(err)
	is.Equal(len(out), 1)
	is.Equal(len(out[0].Geometry.Points), 9)

	// Single points are never simplification-critical.
	for i := 2; i < 9; i += 3 {
		is.Equal(out[0].Geometry.Points[i], 0.0)
	}
}

func TestConvertMultiLineString(t *testing.T) {
	is := is.New(t)

	g := geojson.NewMultiLineStringGeometry(
		[][]float64{{0, 0}, {1, 0}},
		[][]float64{{0, 1}, {2, 1}},
		[][]float64{{0, 2}, {3, 2}},
	)

	out, err := ConvertGeometry(g, DefaultOptions())
	is.NoErr(err)
	is.Equal(len(out), 1)
	is.Equal(len(out[0].Geometry.Rings), 3)
}

func TestConvertLineMetricsExplodes(t *testing.T) {
	is := is.New(t)

	f := geojson.NewFeature(geojson.NewMultiLineStringGeometry(
		[][]float64{{0, 0}, {1, 0}},
		[][]float64{{0, 1}, {2, 1}},
		[][]float64{{0, 2}, {3, 2}},
	))
	f.ID = "roads"

	opts := DefaultOptions()
	opts.LineMetrics = true

	out, err := ConvertFeature(f, opts)
	is.NoErr(err)
	is.Equal(len(out), 3)

	// Original line order is preserved, every line carries its own metrics
	// and the parent's id.
	prev := 0.0
	for _, lf := range out {
		is.Equal(lf.Type, geojson.GeometryLineString)
		is.Equal(lf.ID, "roads")
		is.True(lf.Geometry.Line.Size > prev)
		is.Equal(lf.Geometry.Line.End, lf.Geometry.Line.Size)
		prev = lf.Geometry.Line.Size
	}
}

func TestConvertMultiPolygon(t *testing.T) {
	is := is.New(t)

	g := geojson.NewMultiPolygonGeometry(
		[][][]float64{{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}},
		[][][]float64{{{20, 20}, {22, 20}, {22, 22}, {20, 22}, {20, 20}}},
	)

	out, err := ConvertGeometry(g, DefaultOptions())
	is.NoErr(err)
	is.Equal(len(out), 1)
	is.Equal(len(out[0].Geometry.Polygons), 2)
	is.Equal(len(out[0].Geometry.Polygons[0]), 1)
	is.True(out[0].Geometry.Polygons[0][0].Size > 0)
}

func TestConvertGeometryCollection(t *testing.T) {
	is := is.New(t)

	f := geojson.NewFeature(geojson.NewCollectionGeometry(
		geojson.NewPointGeometry([]float64{1, 2}),
		geojson.NewLineStringGeometry([][]float64{{0, 0}, {1, 1}}),
	))
	f.ID = "parent"
	f.Properties["name"] = "both"

	out, err := ConvertFeature(f, DefaultOptions())
	is.NoErr(err)
	is.Equal(len(out), 2)

	for _, cf := range out {
		is.Equal(cf.ID, "parent")
		is.Equal(cf.Properties["name"], "both")
	}
	is.Equal(out[0].Type, geojson.GeometryPoint)
	is.Equal(out[1].Type, geojson.GeometryLineString)
}

func TestConvertUnsupportedType(t *testing.T) {
	is := is.New(t)

	out, err := ConvertGeometry(&geojson.Geometry{Type: "Circle"}, DefaultOptions())
	is.Err(err)
	is.True(errors.Is(err, ErrInvalidGeometry))
	is.Nil(out)

	// A bad member aborts the whole collection, no partial output.
	fc := geojson.NewFeatureCollection()
	fc.AddFeature(geojson.NewFeature(geojson.NewPointGeometry([]float64{1, 2})))
	fc.AddFeature(geojson.NewFeature(&geojson.Geometry{Type: "Circle"}))

	out, err = ConvertCollection(fc, DefaultOptions())
	is.Err(err)
	is.Nil(out)
}

func TestConvertRawJSON(t *testing.T) {
	is := is.New(t)

	collection := []byte(`{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature", "id": 7, "geometry": {"type": "Point", "coordinates": [1, 2]}, "properties": {}}
		]
	}`)

	out, err := Convert(collection, DefaultOptions())
	is.NoErr(err)
	is.Equal(len(out), 1)
	is.Equal(out[0].ID, float64(7))

	feature := []byte(`{"type": "Feature", "geometry": {"type": "LineString", "coordinates": [[0, 0], [1, 1]]}, "properties": {}}`)
	out, err = Convert(feature, DefaultOptions())
	is.NoErr(err)
	is.Equal(len(out), 1)
	is.Equal(out[0].Type, geojson.GeometryLineString)

	bare := []byte(`{"type": "MultiPoint", "coordinates": [[0, 0], [1, 1]]}`)
	out, err = Convert(bare, DefaultOptions())
	is.NoErr(err)
	is.Equal(len(out), 1)
	is.Equal(out[0].Type, geojson.GeometryMultiPoint)
}

func TestConvertParallelMatchesSequential(t *testing.T) {
	is := is.New(t)

	fc := geojson.NewFeatureCollection()
	for i := 0; i < 64; i++ {
		lon := float64(i % 90)
		fc.AddFeature(geojson.NewFeature(geojson.NewLineStringGeometry([][]float64{
			{lon, 0}, {lon + 1, 1}, {lon + 2, 0},
		})))
	}

	opts := DefaultOptions()
	opts.GenerateID = true

	sequential, err := ConvertCollection(fc, opts)
	is.NoErr(err)

	opts.Workers = 8
	parallel, err := ConvertCollection(fc, opts)
	is.NoErr(err)

	is.Equal(len(parallel), len(sequential))
	is.True(reflect.DeepEqual(parallel, sequential))
}

func TestFeatureBBox(t *testing.T) {
	is := is.New(t)

	out, err := ConvertGeometry(geojson.NewLineStringGeometry([][]float64{
		{0, 0}, {10, 10},
	}), DefaultOptions())
	is.NoErr(err)

	f := out[0]
	is.Equal(f.MinX, projectX(0))
	is.Equal(f.MaxX, projectX(10))
	is.Equal(f.MinY, projectY(10))
	is.Equal(f.MaxY, projectY(0))
}
