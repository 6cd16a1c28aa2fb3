// Package main is the entry point for the playrefine CLI application.
//
// This file bootstraps the application by invoking the command execution
// logic defined in the cmd package. playrefine filters a Pick-5 play list
// down to the straights that box-match a winners list.
package main

import "github.com/ajxudir/playrefine/cmd"

// main initializes and runs the playrefine CLI application.
//
// It delegates all command parsing and execution to the cmd package,
// which handles subcommands like refine, box, config, and version.
func main() {
	cmd.Execute()
}
