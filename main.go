package main

import (
	"os"

	"github.com/cardgen-ai/cardgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
