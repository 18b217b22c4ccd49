package cmd

import (
	"github.com/spf13/cobra"
)

// setCmd is for creating or updating parts and default genes
var setCmd = &cobra.Command{
	Use:                        "set [part,gene]",
	Short:                      "Set a part or default gene",
	SuggestionsMinimumDistance: 1,
	Long: `
Create/update a part or default gene with its name and sequence.
Set parts can be named in design files passed to 'synvec design'. Set genes
are appended to every designed plasmid`,
	Aliases: []string{"add", "update"},
}

// partSetCmd is for adding a new part to the part library
var partSetCmd = &cobra.Command{
	Use:                        "part [name] [sequence]",
	Short:                      "Add a part to the part library",
	Run:                        partDB.SetCmd,
	SuggestionsMinimumDistance: 2,
	Long:                       "\nSet a part in the part library so design files can use it",
	Aliases:                    []string{"add", "update"},
	Example:                    "  synvec set part \"custom terminator\" CTAGCATAACAAGCTTGGGCACCTGTAAACGGGTCT",
}

// geneSetCmd is for adding a new gene to the default gene library.
// New genes go to the end of the library and so to the end of designs
var geneSetCmd = &cobra.Command{
	Use:                        "gene [name] [sequence]",
	Short:                      "Add a gene to the default gene library",
	Run:                        geneDB.SetCmd,
	SuggestionsMinimumDistance: 2,
	Long:                       "\nSet a gene in the default gene library. Every designed plasmid gets it",
	Aliases:                    []string{"add", "update"},
	Example:                    "  synvec set gene sfGFP ATGAGCAAAGGAGAAGAACTTTTCACTGGAGTT",
}

// set flags
func init() {
	setCmd.AddCommand(partSetCmd)
	setCmd.AddCommand(geneSetCmd)

	rootCmd.AddCommand(setCmd)
}
