// Package main provides the entry point for the guidemap CLI tool.
package main

import (
	"github.com/guidemap/guidemap/cmd/guidemap/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
