package main

import (
	"os"

	"vnat/cmd/vnat/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
