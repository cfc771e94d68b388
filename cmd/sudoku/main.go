package main

import (
	"os"

	"github.com/playgrid/sudoku/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
