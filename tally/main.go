package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/tally/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// exits when invoked by the shell for completion.
	cmd.Completion(flag.CommandLine).Complete("tally")

	flag.Parse()

	// unknown subcommands are looked up as tally-<name> executables.
	if name := flag.Arg(0); name != "" && !cmd.IsCommand(name) && !isBuiltin(name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

func isBuiltin(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	return false
}
