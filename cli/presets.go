package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/vcm/bisection"
	"github.com/katalvlaran/vcm/gauss"
	"github.com/katalvlaran/vcm/report"
)

// NewPresetsCmd builds the "vcm presets" command.
func NewPresetsCmd(cxt *Context) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in functions and example systems",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			report.WritePresets(cxt.Output, bisection.Presets(), gauss.Presets())
		},
	}
}
