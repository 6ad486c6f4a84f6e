package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/takeokunn/sqlindent/cli"
)

// CLI represents the command-line interface
var CLI struct {
	Config  string        `help:"Configuration file path" default:"sqlindent.yaml"`
	Verbose bool          `help:"Enable verbose output" short:"v"`
	Quiet   bool          `help:"Suppress output" short:"q"`
	Fmt     cli.FormatCmd `cmd:"" default:"withargs" help:"Format SQL files or stdin"`
	Version VersionCmd    `cmd:"" help:"Show version information"`
}

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run(_ *cli.Context) error {
	fmt.Println("sqlindent v0.1.0")
	return nil
}

func main() {
	ctx := kong.Parse(&CLI)

	config, err := cli.LoadConfig(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	appCtx := &cli.Context{
		Options: config.Options(),
		Verbose: CLI.Verbose,
		Quiet:   CLI.Quiet,
	}

	err = ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
