// Package cmd is for command line interactions with the synvec application
package cmd

import (
	"log"

	"github.com/jjtimmons/synvec/config"
	"github.com/jjtimmons/synvec/internal/synvec"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	partDB = synvec.NewPartDB(config.PartDB)

	geneDB = synvec.NewGeneDB(config.GeneDB)
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "synvec",
	Short: `Design synthetic plasmids around a host genome's replication origin.
Parts are drawn from a local library and ordered ori, markers, MCS, default genes`,
	Version: "0.1.0",
	// completion stays usable but out of help and the generated docs pages
	CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// set flags
func init() {
	// settings is an optional parameter for a settings file overriding the scar,
	// ori key, and MCS suffix defaults
	rootCmd.PersistentFlags().StringP("settings", "s", "", "user settings file <YAML>")
	viper.BindPFlag("settings", rootCmd.PersistentFlags().Lookup("settings"))
}
