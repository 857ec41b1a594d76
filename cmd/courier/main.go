package main

import (
	"os"

	"swiftdrop/cmd/courier/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
