package cmd

import (
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/tilecut/flatgeom"
)

type GlobalOptions struct {
	Config string `short:"c" long:"config" description:"Conversion options file (YAML)"`
}

var globalOpts = GlobalOptions{}
var parser = flags.NewParser(&globalOpts, flags.HelpFlag|flags.PassDoubleDash)

func Run() error {
	_, err := parser.Parse()
	if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
		parser.WriteHelp(os.Stdout)
		return nil
	}
	return err
}

func (g *GlobalOptions) LoadOptions() (*flatgeom.Options, error) {
	if g.Config == "" {
		return flatgeom.DefaultOptions(), nil
	}
	return flatgeom.LoadOptions(g.Config)
}
