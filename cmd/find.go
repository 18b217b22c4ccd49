package cmd

import (
	"github.com/spf13/cobra"
)

// findCmd is for finding parts or genes by their name.
var findCmd = &cobra.Command{
	Use:                        "find",
	Short:                      "Find parts or default genes",
	SuggestionsMinimumDistance: 2,
	Long: `Find parts or default genes by name.
If there is no exact match, similar entries are returned`,
	Aliases: []string{"ls", "list"},
}

// partFindCmd is for reading parts (close to the one requested) from the library.
var partFindCmd = &cobra.Command{
	Use:                        "part [name]",
	Short:                      "Find parts in the part library",
	Run:                        partDB.ReadCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  synvec find part kanR",
	Long: `Find parts in the part library that are similar to [name].
Writes each part to the stdout with its name and sequence.
If multiple part names contain [name], each is logged. Otherwise, all
parts with names similar to it are written to stdout.
'synvec find part' without any arguments logs every part`,
	Aliases: []string{"parts"},
}

// geneFindCmd is for reading default genes from the library. Without a name
// every gene is listed in library order, the order they join designs in
var geneFindCmd = &cobra.Command{
	Use:                        "gene [name]",
	Short:                      "Find genes in the default gene library",
	Run:                        geneDB.ReadCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  synvec find gene araC",
	Long: `Find genes in the default gene library that are similar to [name].
'synvec find gene' without any arguments logs every default gene in the
order they are appended to designs`,
	Aliases: []string{"genes"},
}

// set flags
func init() {
	findCmd.AddCommand(partFindCmd)
	findCmd.AddCommand(geneFindCmd)

	rootCmd.AddCommand(findCmd)
}
