package main

import (
	"os"

	"github.com/SoarGroup/soarcli/cmd/soarcli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
