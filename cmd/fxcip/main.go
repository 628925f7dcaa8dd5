package main

import (
	"os"

	"github.com/wonny/fxcip/cmd/fxcip/commands"
)

// main is the entry point for the fxcip CLI
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
