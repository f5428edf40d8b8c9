package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shopsim/floornav/pkg/errors"
	"github.com/shopsim/floornav/pkg/layout"
)

// checkCommand creates the check command for validating layout configs.
func (c *CLI) checkCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [config.toml]",
		Short: "Validate a layout config and report the resolved layout",
		Long: `Validate a layout config and report the resolved layout.

The check command runs the full layout build but writes nothing: it reports
the resolved lane and aisle counts, the graph size, and whether every zone
is reachable from the exterior. Configuration problems are reported with
their error codes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(args[0])
		},
	}

	return cmd
}

func (c *CLI) runCheck(input string) error {
	cfg, err := layout.LoadConfig(input)
	if err != nil {
		return fmt.Errorf("load config %s: %w", input, err)
	}

	p, err := layout.Build(cfg, layout.Options{Logger: c.Logger})
	if err != nil {
		printError("Config invalid")
		printDetail("code: %s", errors.GetCode(err))
		printDetail("%s", errors.UserMessage(err))
		return err
	}

	printSuccess("Config valid")
	printKeyValue("lanes", fmt.Sprintf("%d", p.Lanes))
	printKeyValue("aisles", fmt.Sprintf("%d rows x %d columns", p.Rows, p.Columns))
	printKeyValue("zones", fmt.Sprintf("%d", p.Graph.Len()))
	printKeyValue("edges", fmt.Sprintf("%d", p.Graph.EdgeCount()))

	reachable := p.Graph.Reachable(p.Exterior)
	if len(reachable) == p.Graph.Len() {
		printInfo("All %d zones reachable from the exterior", p.Graph.Len())
	} else {
		printWarning("Only %d of %d zones reachable from the exterior", len(reachable), p.Graph.Len())
	}

	if n := len(cfg.Entrances); n > 1 {
		printWarning("%d entrances configured, only the first is wired", n)
	}

	printNewline()
	printNextStep("Build", "floornav build "+input)

	return nil
}
