// Package hgx provides the command-line interface for the hgx tool. It
// configures subcommands, parses flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/hgx-scm/hgx/cmd/hgx"
//	func main() { hgx.Execute() }
package hgx
