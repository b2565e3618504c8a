// Package command provides CLI command definitions for forge-cli.
package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/twistedsoul/forge-go/internal/core/domain"
)

// ConvertCommand creates the convert command. It runs entirely locally.
func ConvertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "Convert a human supply to raw base units",
		ArgsUsage: "<supply>",
		Action:    runConvert,
	}
}

func runConvert(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: forge-cli convert <supply>", 2)
	}

	raw, err := domain.ConvertSupply(c.Args().First())
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	fmt.Fprintf(c.App.Writer, "%s tokens = %d base units (%d decimals)\n",
		c.Args().First(), raw, domain.Decimals)
	return nil
}
