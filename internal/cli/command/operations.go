// Package command provides CLI command definitions for forge-cli.
package command

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/twistedsoul/forge-go/internal/cli/connection"
)

// listOperationsResponse mirrors GET /api/operations.
type listOperationsResponse struct {
	OK         bool                `json:"ok"`
	Operations []operationResponse `json:"operations"`
}

// OperationsCommand creates the operations command.
func OperationsCommand() *cli.Command {
	return &cli.Command{
		Name:  "operations",
		Usage: "List recent mint operations",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Usage:   "Maximum number of operations to show",
				Value:   20,
			},
		},
		Action: runOperations,
	}
}

func runOperations(c *cli.Context) error {
	client := clientFor(c)
	path := fmt.Sprintf("/api/operations?limit=%d", c.Int("limit"))

	httpResp, err := client.Get(c.Context, path)
	if err != nil {
		return cli.Exit(fmt.Sprintf("request failed: %v", err), 1)
	}

	var resp listOperationsResponse
	if err := connection.ParseResponse(httpResp, &resp); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if c.Bool("json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(resp)
		return nil
	}

	if len(resp.Operations) == 0 {
		fmt.Fprintln(c.App.Writer, "no operations")
		return nil
	}

	for _, op := range resp.Operations {
		line := fmt.Sprintf("%s  %-8s %-20s", op.OperationID, op.State, op.Phase)
		if op.MintAddress != "" {
			line += "  " + op.MintAddress
		}
		if op.ErrorCode != "" {
			line += "  " + op.ErrorCode
		}
		fmt.Fprintln(c.App.Writer, line)
	}
	return nil
}
