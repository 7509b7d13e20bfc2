package flatgeom

import (
	"io"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// Options control a conversion run. Use DefaultOptions as a starting point,
// the zero value disables simplification entirely.
type Options struct {
	// Tolerance is the simplification tolerance in pixels.
	Tolerance float64 `yaml:"tolerance"`

	// MaxZoom is the maximum zoom level detail is preserved for. Negative
	// values are treated as 0.
	MaxZoom int `yaml:"max_zoom"`

	// Extent is the size of the tile coordinate space.
	Extent float64 `yaml:"extent"`

	// LineMetrics splits every MultiLineString into one output feature per
	// member line, so each line's length metrics stay addressable.
	LineMetrics bool `yaml:"line_metrics"`

	// PromoteID names a property whose value overrides the feature id.
	PromoteID string `yaml:"promote_id"`

	// GenerateID numbers features by their position in the input. Ignored
	// when PromoteID is set.
	GenerateID bool `yaml:"generate_id"`

	// Workers caps the number of features converted concurrently. Values
	// below 2 keep the conversion sequential. Output order matches input
	// order either way.
	Workers int `yaml:"workers"`
}

func DefaultOptions() *Options {
	return &Options{
		Tolerance: 3,
		MaxZoom:   14,
		Extent:    4096,
	}
}

// sqTolerance converts the pixel tolerance into the squared distance
// threshold the point reducer compares against. Squared, because the
// reducer works on squared distances to avoid a square root per candidate.
func (o *Options) sqTolerance() float64 {
	zoom := o.MaxZoom
	if zoom < 0 {
		zoom = 0
	}
	t := o.Tolerance / (float64(uint64(1)<<uint(zoom)) * o.Extent)
	return t * t
}

// LoadOptions reads conversion options from a YAML file.
func LoadOptions(path string) (*Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseOptions(f)
}

// ParseOptions reads conversion options from a YAML stream. Omitted fields
// keep their defaults.
func ParseOptions(r io.Reader) (*Options, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	opts := DefaultOptions()
	err = yaml.Unmarshal(data, opts)
	if err != nil {
		return nil, err
	}

	return opts, nil
}
