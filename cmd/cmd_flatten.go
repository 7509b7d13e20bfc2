package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/tilecut/flatgeom"
)

type CmdFlatten struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("flatten",
		"Flatten GeoJSON",
		"Project and flatten a GeoJSON file for tiling",
		&CmdFlatten{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdFlatten) Usage() string {
	return "input.geojson output.json"
}

func (cmd CmdFlatten) Execute(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("Input or output path not specified, Usage: %s", cmd.Usage())
	}

	opts, err := cmd.global.LoadOptions()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	features, err := flatgeom.Convert(data, opts)
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
