// Package cli implements the iqr command surface: donor scoring from
// flags, band classification, the literature references, and a local
// server with the evaluation form.
package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/iqrbr/iqr/pkg/logging"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

var (
	version = "v0.0.1-default"
	commit  = ""
	date    = ""

	outputFormat = formatJSON

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Prints verbose logs (optional, default: false)",
	}

	formatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: "Output format [json, yaml]",
		Value: formatJSON,
	}
)

// Execute creates and runs the CLI application.
func Execute() {
	logging.SetDefault("info")

	app := newApp()
	if err := app.Run(os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:                 "iqr",
		Version:              fmt.Sprintf("%s (%s - %s)", version, commit, date),
		Compiled:             time.Now(),
		EnableBashCompletion: true,
		HideHelpCommand:      true,
		Usage:                "Deceased-donor kidney risk calculator (IQR-BR)",
		Flags: []cli.Flag{
			debugFlag,
			formatFlag,
		},
		Commands: []*cli.Command{
			scoreCmd,
			classifyCmd,
			referencesCmd,
			serverCmd,
		},
		Before: func(c *cli.Context) error {
			applyFlags(c)
			return nil
		},
	}
}

// applyFlags handles the global flags, which urfave only binds on the
// context they were passed on.
func applyFlags(c *cli.Context) {
	if c.Bool(debugFlag.Name) {
		logging.SetDefault("debug")
	}

	switch c.String(formatFlag.Name) {
	case formatYAML, "yml":
		outputFormat = formatYAML
	case formatJSON, "":
		outputFormat = formatJSON
	default:
		slog.Warn("unknown output format, using json", "format", c.String(formatFlag.Name))
		outputFormat = formatJSON
	}
}

func encode(v any) error {
	if outputFormat == formatYAML {
		return yaml.NewEncoder(os.Stdout).Encode(v)
	}
	e := json.NewEncoder(os.Stdout)
	e.SetIndent("", "  ")
	return e.Encode(v)
}
