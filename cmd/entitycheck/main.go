package main

import (
	"fmt"
	"os"

	"github.com/dmitrymomot/entityvalidator/cmd/entitycheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "entitycheck: %v\n", err)
		os.Exit(1)
	}
}
