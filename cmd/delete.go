package cmd

import (
	"github.com/spf13/cobra"
)

// deleteCmd is for removing parts or genes by their name
var deleteCmd = &cobra.Command{
	Use:                        "delete [part,gene]",
	Short:                      "Delete a part or default gene",
	SuggestionsMinimumDistance: 2,
	Long:                       `Delete a part or default gene by name.`,
	Aliases:                    []string{"rm", "remove"},
}

// partDeleteCmd is for deleting parts from the part library
var partDeleteCmd = &cobra.Command{
	Use:                        "part [name]",
	Short:                      "Delete a part from the part library",
	Run:                        partDB.DeleteCmd,
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"remove"},
	Example:                    "  synvec delete part \"custom terminator\"",
	Long: `Delete a part from the part library by its name.
If no such part name exists in the library, an error is logged to stderr.`,
}

// geneDeleteCmd is for deleting genes from the default gene library
var geneDeleteCmd = &cobra.Command{
	Use:                        "gene [name]",
	Short:                      "Delete a gene from the default gene library",
	Run:                        geneDB.DeleteCmd,
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"remove"},
	Example:                    "  synvec delete gene sfGFP",
	Long: `Delete a gene from the default gene library by its name.
Designed plasmids stop receiving the gene once it is deleted.`,
}

// set flags
func init() {
	deleteCmd.AddCommand(partDeleteCmd)
	deleteCmd.AddCommand(geneDeleteCmd)

	rootCmd.AddCommand(deleteCmd)
}
