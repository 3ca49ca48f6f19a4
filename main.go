package main

import (
	"os"

	"github.com/thenoetrevino/fitcal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
