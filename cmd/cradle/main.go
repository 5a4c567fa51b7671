package main

import (
	"fmt"
	"os"

	"github.com/terraincognita07/cradle/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "cradle: %v\n", err)
		os.Exit(1)
	}
}
