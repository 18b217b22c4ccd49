// Package synvec designs synthetic plasmids. It finds a probable
// replication origin in a host genome using GC skew and assembles the
// origin, the parts named in a design file, and a set of default genes
// into a single output sequence.
package synvec

import (
	"fmt"
	"log"
	"os"

	"github.com/jjtimmons/synvec/config"
	"github.com/spf13/cobra"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// Flags contains parsed cobra flags like "in", "design", "out", etc
// that are used by the design and ori commands
type Flags struct {
	// the host genome's FASTA file
	in string

	// the design file listing the part keys to assemble
	design string

	// the file the assembled plasmid is written to
	out string

	// the part library with marker and restriction site sequences
	parts string

	// the library of default genes appended to every plasmid
	genes string

	// the JSON report file, no report is written when empty
	report string

	// the number of basepairs extracted around the ori
	window int
}

// inputParser contains methods for parsing flags from the input &cobra.Command
type inputParser struct{}

// NewFlags makes a new flags object manually. for testing
func NewFlags(in, design, out, parts, genes, report string, window int) (*Flags, *config.Config) {
	c := config.New()
	p := inputParser{}

	in, err := p.resolveInput(in)
	if err != nil {
		stderr.Fatal(err)
	}

	design, err = p.resolveDesign(design)
	if err != nil {
		stderr.Fatal(err)
	}

	return &Flags{
		in:     in,
		design: design,
		out:    out,
		parts:  parts,
		genes:  genes,
		report: report,
		window: window,
	}, c
}

// parseCmdFlags gathers the in path, design path, etc from a cobra cmd
// object. Returns Flags and a Config struct for Design or Ori
func parseCmdFlags(cmd *cobra.Command) (*Flags, *config.Config) {
	var err error
	fs := &Flags{} // parsed flags
	p := inputParser{}
	c := config.New()

	if fs.in, err = cmd.Flags().GetString("in"); err != nil {
		fs.in = config.DefaultInput
	}
	if fs.in, err = p.resolveInput(fs.in); err != nil {
		stderr.Fatal(err)
	}

	// the ori command has no design flag
	if fs.design, err = cmd.Flags().GetString("design"); err == nil {
		if fs.design, err = p.resolveDesign(fs.design); err != nil {
			stderr.Fatal(err)
		}
	}

	if fs.out, err = cmd.Flags().GetString("out"); err != nil {
		fs.out = config.DefaultOutput
	}

	if fs.parts, err = cmd.Flags().GetString("parts"); err != nil {
		fs.parts = config.PartDB
	}

	if fs.genes, err = cmd.Flags().GetString("genes"); err != nil {
		fs.genes = config.GeneDB
	}

	fs.report, _ = cmd.Flags().GetString("report")

	if fs.window, err = cmd.Flags().GetInt("window"); err != nil {
		fs.window = config.DefaultOriWindow
	}

	return fs, c
}

// resolveInput swaps the default host genome for the stock pUC19 copy
// when the default is missing. Paths other than the default are
// returned untouched: the fallback never overrides an explicit flag
func (p *inputParser) resolveInput(in string) (string, error) {
	if in != config.DefaultInput {
		return in, nil
	}

	if _, err := os.Stat(in); err == nil {
		return in, nil
	}

	if _, err := os.Stat(config.FallbackInput); err == nil {
		fmt.Printf("%s not found, using %s\n", in, config.FallbackInput)
		return config.FallbackInput, nil
	}

	return "", fmt.Errorf("failed to find %s or the fallback %s", in, config.FallbackInput)
}

// resolveDesign is resolveInput for the design file
func (p *inputParser) resolveDesign(design string) (string, error) {
	if design != config.DefaultDesign {
		return design, nil
	}

	if _, err := os.Stat(design); err == nil {
		return design, nil
	}

	if _, err := os.Stat(config.FallbackDesign); err == nil {
		fmt.Printf("%s not found, using %s\n", design, config.FallbackDesign)
		return config.FallbackDesign, nil
	}

	return "", fmt.Errorf("failed to find %s or the fallback %s", design, config.FallbackDesign)
}
