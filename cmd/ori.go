package cmd

import (
	"github.com/jjtimmons/synvec/config"
	"github.com/jjtimmons/synvec/internal/synvec"
	"github.com/spf13/cobra"
)

// oriCmd is for locating the replication origin in a host genome
var oriCmd = &cobra.Command{
	Use:                        "ori",
	Short:                      "Locate the replication origin in a host genome",
	Run:                        synvec.OriCmd,
	SuggestionsMinimumDistance: 2,
	Long: `
Scan a host genome for the minimum of its cumulative GC skew, the
conventional proxy for a bacterial replication origin, and log where it
sits. With an output file the extracted window is written as FASTA`,
	Aliases: []string{"origin"},
	Example: "  synvec ori -i genome.fa",
}

// set flags
func init() {
	oriCmd.Flags().StringP("in", "i", config.DefaultInput, "input host genome <FASTA>")
	oriCmd.Flags().StringP("out", "o", "", "output file for the ori window <FASTA>")
	oriCmd.Flags().IntP("window", "w", config.DefaultOriWindow, "number of basepairs extracted around the ori")

	rootCmd.AddCommand(oriCmd)
}
