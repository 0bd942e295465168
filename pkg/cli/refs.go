package cli

import (
	"fmt"

	"github.com/iqrbr/iqr/pkg/refs"
	"github.com/urfave/cli/v2"
)

var referencesCmd = &cli.Command{
	Name:            "references",
	Aliases:         []string{"refs"},
	Usage:           "List the literature sources behind the weight table",
	HideHelpCommand: true,
	Action:          cmdReferences,
	Flags: []cli.Flag{
		formatFlag,
	},
}

func cmdReferences(c *cli.Context) error {
	applyFlags(c)

	list, err := refs.List()
	if err != nil {
		return fmt.Errorf("loading references: %w", err)
	}
	return encode(list)
}
