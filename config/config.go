// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

const (
	// DefaultInput is the host genome FASTA read when no input flag is passed
	DefaultInput = "Input.fa"

	// FallbackInput is the stock host genome used when DefaultInput is missing
	FallbackInput = "pUC19.fa"

	// DefaultDesign is the design file read when no design flag is passed
	DefaultDesign = "Design.txt"

	// FallbackDesign is the stock design used when DefaultDesign is missing
	FallbackDesign = "Design_pUC19.txt"

	// DefaultOutput is the FASTA file the assembled plasmid is written to
	DefaultOutput = "Output.fa"

	// PartDB is the part library with marker and restriction site sequences
	PartDB = "markers.json"

	// GeneDB is the library of default genes appended to every plasmid
	GeneDB = "defaultgenes.json"

	// DefaultScar is the standard spacer inserted between assembled parts
	DefaultScar = "TACTAGAG"

	// DefaultOriKey is the design file name that stands for the located origin
	DefaultOriKey = "ori_pMB1"

	// DefaultMCSSuffix marks part names grouped into the multiple cloning site
	DefaultMCSSuffix = "_site"

	// DefaultOriWindow is the number of basepairs extracted around the
	// GC skew minimum
	DefaultOriWindow = 600

	// CheckSite is the restriction site scanned for after assembly (EcoRI)
	CheckSite = "GAATTC"

	// OutputRecord is the record name on the assembled plasmid's FASTA
	OutputRecord = "Synthetic_Plasmid_Output"

	// LineLength is the number of characters per line in FASTA output
	LineLength = 80
)

// Config is the root-level settings struct and is a mix of the
// defaults below and those in a user's settings file
type Config struct {
	// the spacer sequence between assembled parts
	Scar string `mapstructure:"scar"`

	// the design file key bound to the located origin
	OriKey string `mapstructure:"ori-key"`

	// the suffix marking multiple cloning site parts
	MCSSuffix string `mapstructure:"mcs-suffix"`
}

// New returns a new Config struct populated by Viper settings:
// the defaults here and, when one was passed on the command line,
// the user's settings file
func New() *Config {
	viper.SetDefault("scar", DefaultScar)
	viper.SetDefault("ori-key", DefaultOriKey)
	viper.SetDefault("mcs-suffix", DefaultMCSSuffix)

	if settings := viper.GetString("settings"); settings != "" {
		viper.SetConfigFile(settings)
		if err := viper.ReadInConfig(); err != nil {
			log.Fatalf("failed to read settings file %s: %v", settings, err)
		}
	}

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("failed to decode settings: %v", err)
	}

	return &c
}
