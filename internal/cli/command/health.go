// Package command provides CLI command definitions for forge-cli.
package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/twistedsoul/forge-go/internal/cli/connection"
)

// HealthCommand creates the health command.
func HealthCommand() *cli.Command {
	return &cli.Command{
		Name:   "health",
		Usage:  "Check forge-server health",
		Action: runHealth,
	}
}

func runHealth(c *cli.Context) error {
	client := clientFor(c)

	httpResp, err := client.Get(c.Context, "/health")
	if err != nil {
		return cli.Exit(fmt.Sprintf("server unreachable: %v", err), 1)
	}

	var body struct {
		Status  string `json:"status"`
		Version string `json:"version"`
	}
	if err := connection.ParseResponse(httpResp, &body); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	fmt.Fprintf(c.App.Writer, "%s: %s (server %s)\n", client.BaseURL(), body.Status, body.Version)
	return nil
}
