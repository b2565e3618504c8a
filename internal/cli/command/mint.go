// Package command provides CLI command definitions for forge-cli.
package command

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/twistedsoul/forge-go/internal/cli/connection"
	"github.com/twistedsoul/forge-go/internal/core/domain"
)

// mintRequest mirrors the relay's POST /api/mint body.
type mintRequest struct {
	Token struct {
		Name        string `json:"name"`
		Symbol      string `json:"symbol"`
		Supply      string `json:"supply"`
		Description string `json:"description,omitempty"`
		Twitter     string `json:"twitter,omitempty"`
		Telegram    string `json:"telegram,omitempty"`
		Website     string `json:"website,omitempty"`
	} `json:"token"`
	Bindings struct {
		LockLiquidity bool `json:"lockLiquidity"`
		RenounceMint  bool `json:"renounceMint"`
		NoGodWallet   bool `json:"noGodWallet"`
		OpenSource    bool `json:"openSource"`
	} `json:"bindings"`
}

// mintResponse mirrors the relay's response body.
type mintResponse struct {
	OK             bool   `json:"ok"`
	MintAddress    string `json:"mintAddress"`
	HoldingAddress string `json:"holdingAddress"`
	Signature      string `json:"signature"`
	OperationID    string `json:"operationId"`
	Error          string `json:"error"`
	ErrorCode      string `json:"errorCode"`
}

// MintCommand creates the mint command.
func MintCommand() *cli.Command {
	return &cli.Command{
		Name:      "mint",
		Usage:     "Create a token on the ledger",
		ArgsUsage: " ",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Usage: "Token display name", Required: true},
			&cli.StringFlag{Name: "symbol", Usage: "Ticker symbol", Required: true},
			&cli.StringFlag{Name: "supply", Usage: "Total supply in whole tokens", Required: true},
			&cli.StringFlag{Name: "description", Usage: "Token description"},
			&cli.StringFlag{Name: "twitter", Usage: "Twitter link"},
			&cli.StringFlag{Name: "telegram", Usage: "Telegram link"},
			&cli.StringFlag{Name: "website", Usage: "Website link"},
			&cli.BoolFlag{Name: "lock-liquidity", Usage: "Declare liquidity will be locked"},
			&cli.BoolFlag{Name: "renounce-mint", Usage: "Declare mint authority will be renounced"},
			&cli.BoolFlag{Name: "no-god-wallet", Usage: "Declare no oversized dev wallet"},
			&cli.BoolFlag{Name: "open-source", Usage: "Declare factory logic is published"},
		},
		Action: runMint,
	}
}

func runMint(c *cli.Context) error {
	// Reject bad supply locally before burning a server round trip.
	if _, err := domain.ConvertSupply(c.String("supply")); err != nil {
		return cli.Exit(fmt.Sprintf("invalid supply: %v", err), 1)
	}

	var req mintRequest
	req.Token.Name = c.String("name")
	req.Token.Symbol = c.String("symbol")
	req.Token.Supply = c.String("supply")
	req.Token.Description = c.String("description")
	req.Token.Twitter = c.String("twitter")
	req.Token.Telegram = c.String("telegram")
	req.Token.Website = c.String("website")
	req.Bindings.LockLiquidity = c.Bool("lock-liquidity")
	req.Bindings.RenounceMint = c.Bool("renounce-mint")
	req.Bindings.NoGodWallet = c.Bool("no-god-wallet")
	req.Bindings.OpenSource = c.Bool("open-source")

	client := clientFor(c)
	fmt.Fprintf(c.App.Writer, "submitting launch to %s (waits for confirmation)...\n", client.BaseURL())

	httpResp, err := client.Post(c.Context, "/api/mint", &req)
	if err != nil {
		return cli.Exit(fmt.Sprintf("request failed: %v", err), 1)
	}

	var resp mintResponse
	if err := connection.ParseResponse(httpResp, &resp); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if c.Bool("json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(resp)
		return nil
	}

	if !resp.OK {
		fmt.Fprintf(c.App.Writer, "launch failed: %s\n", resp.Error)
		if resp.OperationID != "" {
			fmt.Fprintf(c.App.Writer, "operation:    %s\n", resp.OperationID)
		}
		if resp.Signature != "" {
			fmt.Fprintf(c.App.Writer, "transaction:  %s (re-check with 'forge-cli status', do not resubmit)\n", resp.Signature)
		}
		return cli.Exit("", 1)
	}

	fmt.Fprintf(c.App.Writer, "token created\n")
	fmt.Fprintf(c.App.Writer, "mint address:    %s\n", resp.MintAddress)
	fmt.Fprintf(c.App.Writer, "holding address: %s\n", resp.HoldingAddress)
	fmt.Fprintf(c.App.Writer, "transaction:     %s\n", resp.Signature)
	fmt.Fprintf(c.App.Writer, "operation:       %s\n", resp.OperationID)
	return nil
}
