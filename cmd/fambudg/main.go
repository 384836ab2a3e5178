package main

import (
	"os"

	"github.com/asilingas/fambudg/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
