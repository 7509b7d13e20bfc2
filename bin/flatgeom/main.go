package main

import (
	"log"

	"github.com/tilecut/flatgeom/cmd"
)

func main() {
	err := cmd.Run()
	if err != nil {
		log.Fatal(err.Error())
	}
}
