// Package main is the entry point for the wltrace SPI transaction analyzer.
package main

import (
	"fmt"
	"os"

	"github.com/subghz/wltrace/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
