package cmd

import (
	"github.com/jjtimmons/synvec/config"
	"github.com/jjtimmons/synvec/internal/synvec"
	"github.com/spf13/cobra"
)

// designCmd is for assembling a plasmid from a host genome and a design file
var designCmd = &cobra.Command{
	Use:                        "design",
	Short:                      "Design a plasmid from a host genome and a design file",
	Run:                        synvec.DesignCmd,
	SuggestionsMinimumDistance: 2,
	Long: `
Assemble a synthetic plasmid. The host genome is scanned for its replication
origin (the GC skew minimum) and a window around it becomes the ori part.
The design file lists the other parts by name, one per line. Parts are pulled
from the part library and ordered ori, markers, MCS, then the default gene
library, with the standard scar between them.

Design keys missing from the part library are skipped with a warning. When
the default input or design file is missing, the stock pUC19 copies are used
in their place.`,
	Aliases: []string{"assemble", "build"},
	Example: "  synvec design -i genome.fa -d Design.txt -o plasmid.fa",
}

// set flags
func init() {
	designCmd.Flags().StringP("in", "i", config.DefaultInput, "input host genome <FASTA>")
	designCmd.Flags().StringP("design", "d", config.DefaultDesign, "design file with part keys, one per line")
	designCmd.Flags().StringP("out", "o", config.DefaultOutput, "output file for the assembled plasmid <FASTA>")
	designCmd.Flags().StringP("parts", "p", config.PartDB, "part library with marker and site sequences")
	designCmd.Flags().StringP("genes", "g", config.GeneDB, "library of default genes appended to every plasmid")
	designCmd.Flags().StringP("report", "r", "", "write a design report <JSON>")
	designCmd.Flags().IntP("window", "w", config.DefaultOriWindow, "number of basepairs extracted around the ori")

	rootCmd.AddCommand(designCmd)
}
