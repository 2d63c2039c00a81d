package main

import (
	"os"

	"github.com/scarybot/monotony/cmd/monotony/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
