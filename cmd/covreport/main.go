// Package main is the entry point for the covreport CLI tool.
package main

import (
	"github.com/tsmarsh/covreport/internal/cmd"
)

func main() {
	cmd.Execute()
}
