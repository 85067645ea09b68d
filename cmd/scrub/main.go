package main

import (
	"os"

	"github.com/dshills/scrub/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
