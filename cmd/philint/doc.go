// Package philint provides the command-line interface for the philint tool.
// It configures subcommands (scan, rules, ci, completion), parses flags, and
// executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/philint/philint/cmd/philint"
//	func main() { philint.Execute() }
package philint
