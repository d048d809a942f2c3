package main

import (
	"os"

	"github.com/msto63/truffle/cmd/truffle/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
