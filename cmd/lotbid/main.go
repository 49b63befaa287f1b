package main

import (
	"os"

	"github.com/rustyeddy/lotbid/cmd/lotbid/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
