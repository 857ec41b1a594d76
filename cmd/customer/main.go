package main

import (
	"os"

	"swiftdrop/cmd/customer/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
