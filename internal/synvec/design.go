package synvec

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jjtimmons/synvec/config"
	"github.com/spf13/cobra"
)

// DesignCmd runs design from a cobra command and its flags
func DesignCmd(cmd *cobra.Command, args []string) {
	if err := Design(parseCmdFlags(cmd)); err != nil {
		stderr.Fatalln(err)
	}
}

// Design assembles a synthetic plasmid. The replication origin is cut
// out of the host genome in flags.in, the design file names the parts
// around it, and the result is written as FASTA to flags.out.
//
// An empty part library or design file aborts the run. A plasmid with
// no sequence at all is an overall failure and nothing is written
func Design(flags *Flags, conf *config.Config) error {
	start := time.Now()

	host, err := readFasta(flags.in)
	if err != nil {
		return err
	}

	oriPart, oriIndex := locateOri(host, flags.window)
	fmt.Printf("ori found at index %d of %s, %dbp window extracted\n", oriIndex, flags.in, len(oriPart))

	partDB := NewPartDB(flags.parts)
	if len(partDB.parts) == 0 {
		return fmt.Errorf("failed to find any parts in %s", flags.parts)
	}
	geneDB := NewGeneDB(flags.genes)

	keys, err := readDesign(flags.design)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return fmt.Errorf("failed to find any design keys in %s", flags.design)
	}

	plasmid, plan, missing := assemble(keys, oriPart, partDB.parts, geneDB.genes, conf.OriKey, conf.MCSSuffix, conf.Scar)
	if plasmid == "" {
		return fmt.Errorf("failed to design a plasmid from %s: no part had a sequence", flags.design)
	}

	if err := write(flags.out, config.OutputRecord, plasmid); err != nil {
		return err
	}
	fmt.Printf("plasmid written to %s (%dbp)\n", flags.out, len(plasmid))

	if flags.report != "" {
		target := strings.TrimSuffix(filepath.Base(flags.in), filepath.Ext(flags.in))
		if _, err := writeReport(flags.report, target, oriIndex, plasmid, plan, missing, time.Since(start).Seconds()); err != nil {
			return err
		}
	}

	if strings.Contains(plasmid, config.CheckSite) {
		stderr.Printf("warning: an EcoRI site (%s) is present in the plasmid\n", config.CheckSite)
	} else {
		fmt.Printf("no EcoRI site (%s) in the plasmid\n", config.CheckSite)
	}

	return nil
}
