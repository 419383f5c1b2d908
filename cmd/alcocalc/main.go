package main

import (
	"os"

	"alcocalc/cmd/alcocalc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
