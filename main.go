package main

import (
	"os"

	"github.com/minte-atnafu/Developer-Activity-Dashboard/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
