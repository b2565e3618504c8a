// Package command provides CLI command definitions for forge-cli.
//
// It uses urfave/cli/v2 for command parsing.
package command

import (
	"github.com/urfave/cli/v2"

	"github.com/twistedsoul/forge-go/internal/cli/connection"
	"github.com/twistedsoul/forge-go/internal/infra/buildinfo"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "forge-cli",
		Usage:   "Soul Forge command-line client",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			MintCommand(),
			StatusCommand(),
			OperationsCommand(),
			ConvertCommand(),
			HealthCommand(),
		},
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "server",
			Aliases: []string{"s"},
			Usage:   "forge-server address (e.g., localhost:5080)",
			EnvVars: []string{"FORGE_SERVER"},
			Value:   "localhost:5080",
		},
		&cli.BoolFlag{
			Name:    "json",
			Aliases: []string{"j"},
			Usage:   "Emit raw JSON instead of formatted output",
		},
	}
}

// clientFor builds an HTTP client from the global flags.
func clientFor(c *cli.Context) *connection.HTTPClient {
	return connection.NewHTTPClient(c.String("server"))
}
