package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/cheggaaa/pb"
	"github.com/paulmach/go.geojson"
	"github.com/tilecut/flatgeom"
)

type CmdShape struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("shape",
		"Flatten a shapefile",
		"Convert an ESRI shapefile and flatten it for tiling",
		&CmdShape{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdShape) Usage() string {
	return "input.shp output.json"
}

func (cmd CmdShape) Execute(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("Input or output path not specified, Usage: %s", cmd.Usage())
	}

	opts, err := cmd.global.LoadOptions()
	if err != nil {
		return err
	}

	reader, err := flatgeom.OpenShapefile(args[0])
	if err != nil {
		return err
	}
	defer reader.Close()

	bar := pb.New(reader.Count()).Format("[=> ]")
	bar.Start()

	fc := geojson.NewFeatureCollection()
	for {
		f, err := reader.Next()
		if err != nil {
			return err
		}
		if f == nil {
			break
		}
		fc.AddFeature(f)
		bar.Increment()
	}
	bar.Finish()

	features, err := flatgeom.ConvertCollection(fc, opts)
	if err != nil {
		return fmt.Errorf("Failed to convert: %s\n", err.Error())
	}
	log.Printf("Flattened %d features", len(features))

	out, err := json.Marshal(features)
	if err != nil {
		return err
	}

	return os.WriteFile(args[1], out, 0644)
}
