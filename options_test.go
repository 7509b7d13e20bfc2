package flatgeom

import (
	"strings"
	"testing"

	"github.com/cheekybits/is"
)

func TestDefaultOptions(t *testing.T) {
	is := is.New(t)

	opts := DefaultOptions()
	is.Equal(opts.Tolerance, 3.0)
	is.Equal(opts.MaxZoom, 14)
	is.Equal(opts.Extent, 4096.0)
	is.Equal(opts.LineMetrics, false)
	is.Equal(opts.Workers, 0)
}

func TestParseOptions(t *testing.T) {
	is := is.New(t)

	in := `
tolerance: 5
line_metrics: true
promote_id: code
workers: 4
`

	opts, err := ParseOptions(strings.NewReader(in))
	is.NoErr(err)
	is.Equal(opts.Tolerance, 5.0)
	is.Equal(opts.LineMetrics, true)
	is.Equal(opts.PromoteID, "code")
	is.Equal(opts.Workers, 4)

	// Omitted fields keep their defaults.
	is.Equal(opts.MaxZoom, 14)
	is.Equal(opts.Extent, 4096.0)
}

func TestParseOptionsInvalid(t *testing.T) {
	is := is.New(t)

	_, err := ParseOptions(strings.NewReader("tolerance: [nope"))
	is.Err(err)
}
