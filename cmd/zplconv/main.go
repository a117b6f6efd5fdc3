// Package main is the entry point for the zplconv image to ZPL converter.
package main

import (
	"fmt"
	"os"

	"github.com/AlexStarov/zpl-GoLang-lib/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
