package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/paydown/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	// API keys and Gemini credentials can live in a local .env file.
	_ = godotenv.Load()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
