package cmd

import (
	"github.com/spf13/cobra"

	"zlayer/internal/layers"
	"zlayer/internal/presentation"
)

var layersCmd = &cobra.Command{
	Use:   "layers",
	Short: "List the predefined layers",
	Long: `List the predefined layers and their base values, one per line.

Custom layers allocated during the process run are not listed; only the
fixed table is shown, in its canonical order from underworld (-1, behind
everything) to god-mode (9999, above everything).

Examples:
  # Human-readable listing
  zlayer layers

  # JSON, e.g. for further processing
  zlayer layers --json | jq '.[].name'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		formatter := presentation.NewFormatter(cmd.OutOrStdout())

		if jsonOutput {
			return formatter.FormatLayerList(presentation.FromDomainLayers(layers.Layers()))
		}
		return formatter.FormatLayers(layers.Layers())
	},
}

func init() {
	rootCmd.AddCommand(layersCmd)
}
