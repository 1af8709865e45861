// Package main is the entry point for the mudra gesture control service.
//
// Usage:
//
//	mudra [flags] <command>
//
// Commands:
//
//	serve    - Run the gesture control service (default)
//	version  - Show version information
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
