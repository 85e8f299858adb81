package main

import (
	"fmt"
	"os"

	"tinyblog/service"
)

// exit is swapped out by tests.
var exit = os.Exit

func main() {
	RealMain()
}

// RealMain runs the command line and exits non-zero on failure.
func RealMain() {
	if err := service.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
}
