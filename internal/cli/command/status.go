// Package command provides CLI command definitions for forge-cli.
package command

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/twistedsoul/forge-go/internal/cli/connection"
)

// operationResponse mirrors GET /api/operations/{id}.
type operationResponse struct {
	OK             bool   `json:"ok"`
	OperationID    string `json:"operationId"`
	State          string `json:"state"`
	Phase          string `json:"phase"`
	Message        string `json:"message"`
	MintAddress    string `json:"mintAddress"`
	HoldingAddress string `json:"holdingAddress"`
	Signature      string `json:"signature"`
	ErrorCode      string `json:"errorCode"`
	CreatedAt      int64  `json:"createdAt"`
	UpdatedAt      int64  `json:"updatedAt"`
}

// StatusCommand creates the status command.
func StatusCommand() *cli.Command {
	return &cli.Command{
		Name:      "status",
		Usage:     "Show the state of a mint operation",
		ArgsUsage: "<operation-id>",
		Action:    runStatus,
	}
}

func runStatus(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: forge-cli status <operation-id>", 2)
	}
	id := c.Args().First()

	client := clientFor(c)
	httpResp, err := client.Get(c.Context, "/api/operations/"+id)
	if err != nil {
		return cli.Exit(fmt.Sprintf("request failed: %v", err), 1)
	}

	var resp operationResponse
	if err := connection.ParseResponse(httpResp, &resp); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if c.Bool("json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(resp)
		return nil
	}

	fmt.Fprintf(c.App.Writer, "operation: %s\n", resp.OperationID)
	fmt.Fprintf(c.App.Writer, "state:     %s\n", resp.State)
	fmt.Fprintf(c.App.Writer, "phase:     %s\n", resp.Phase)
	if resp.Message != "" {
		fmt.Fprintf(c.App.Writer, "message:   %s\n", resp.Message)
	}
	if resp.MintAddress != "" {
		fmt.Fprintf(c.App.Writer, "mint:      %s\n", resp.MintAddress)
	}
	if resp.HoldingAddress != "" {
		fmt.Fprintf(c.App.Writer, "holding:   %s\n", resp.HoldingAddress)
	}
	if resp.Signature != "" {
		fmt.Fprintf(c.App.Writer, "tx:        %s\n", resp.Signature)
	}
	if resp.ErrorCode != "" {
		fmt.Fprintf(c.App.Writer, "error:     %s\n", resp.ErrorCode)
	}
	fmt.Fprintf(c.App.Writer, "updated:   %s\n",
		time.UnixMilli(resp.UpdatedAt).UTC().Format(time.RFC3339))
	return nil
}
