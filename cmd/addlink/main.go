package main

import (
	"log"
	"os"

	"github.com/itsjohncs/addlink/internal/cli"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("addlink: ")
	if err := cli.Execute(); err != nil {
		log.Fatal(cli.FormatError(os.Stderr, err))
	}
}
