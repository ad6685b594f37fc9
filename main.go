package main

import (
	"os"

	"github.com/wallacegibbon/skillkit/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
