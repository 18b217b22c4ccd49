package synvec

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// GeneDB is a struct for accessing synvecs default gene library.
// Unlike the part library, the order of the genes is meaningful:
// every design gets the genes appended in library order
type GeneDB struct {
	// path to the library file the genes were read from
	path string

	// genes of the library in file order
	genes []entry
}

// NewGeneDB returns a new copy of the default gene library at path.
// A missing library file is treated as an empty library. A gene named
// twice keeps its first position and its last sequence
func NewGeneDB(path string) *GeneDB {
	entries, err := readLibrary(path)
	if err != nil {
		stderr.Fatal(err)
	}

	genes := []entry{}
	index := make(map[string]int)
	for _, e := range entries {
		e.Seq = strings.ToUpper(e.Seq)
		if at, seen := index[e.Name]; seen {
			genes[at].Seq = e.Seq
			continue
		}
		index[e.Name] = len(genes)
		genes = append(genes, e)
	}

	return &GeneDB{path: path, genes: genes}
}

// ReadCmd returns genes that are similar in name to the gene name requested.
// without a gene name, all of them are listed in library order (the
// order they will be added to designs)
func (g *GeneDB) ReadCmd(cmd *cobra.Command, args []string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.TabIndent)

	if len(args) < 1 {
		// print all their names to the console and the first few bp
		for _, gene := range g.genes {
			seq := gene.Seq
			if len(seq) > 20 {
				seq = seq[:20] + "..."
			}
			fmt.Fprintf(w, "%s\t%s\n", gene.Name, seq)
		}

		w.Flush()
		return
	}

	name := args[0]
	if len(args) > 1 {
		name = strings.Join(args, " ")
	}

	ldCutoff := len(name) / 3
	if 2 > ldCutoff {
		ldCutoff = 2
	}
	containing := []string{}
	lowDistance := []string{}

	for _, gene := range g.genes {
		if strings.Contains(gene.Name, name) {
			containing = append(containing, gene.Name+"\t"+gene.Seq)
		} else if len(gene.Name) > ldCutoff && ld(name, gene.Name, true) <= ldCutoff {
			lowDistance = append(lowDistance, gene.Name+"\t"+gene.Seq)
		}
	}

	if len(containing) < 3 {
		lowDistance = append(lowDistance, containing...)
		containing = []string{} // clear
	}
	if len(containing) > 0 {
		fmt.Fprint(w, strings.Join(containing, "\n"))
	} else if len(lowDistance) > 0 {
		fmt.Fprint(w, strings.Join(lowDistance, "\n"))
	} else {
		fmt.Fprintf(w, "failed to find any genes for %s", name)
	}
	w.Write([]byte("\n"))
	w.Flush()
}

// SetCmd the gene's seq in the library (or append if it isn't in the gene library)
func (g *GeneDB) SetCmd(cmd *cobra.Command, args []string) {
	if len(args) < 2 {
		stderr.Fatalf("expecting two args: a genes name and sequence. %d passed\n", len(args))
	}

	name := args[0]
	seq := args[1]

	if len(args) > 2 {
		name = strings.Join(args[:len(args)-1], " ")
		seq = args[len(args)-1]
	}
	seq = strings.ToUpper(seq)

	updated := false
	for i, gene := range g.genes {
		if gene.Name == name {
			g.genes[i].Seq = seq // keep its position in the library
			updated = true
		}
	}
	if !updated {
		g.genes = append(g.genes, entry{Name: name, Seq: seq})
	}

	if err := writeLibrary(g.path, g.genes); err != nil {
		stderr.Fatal(err)
	}

	if updated {
		fmt.Printf("updated %s in the gene library\n", name)
	}
}

// DeleteCmd the gene from the library
func (g *GeneDB) DeleteCmd(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		stderr.Fatalf("expecting one arg: a genes name. %d passed\n", len(args))
	}

	name := args[0]
	if len(args) > 1 {
		name = strings.Join(args, " ")
	}

	deleted := false
	genes := g.genes[:0]
	for _, gene := range g.genes {
		if gene.Name != name {
			genes = append(genes, gene)
		} else {
			deleted = true
		}
	}
	g.genes = genes

	if deleted {
		if err := writeLibrary(g.path, g.genes); err != nil {
			stderr.Fatal(err)
		}

		fmt.Printf("deleted %s from the gene library\n", name)
	} else {
		fmt.Printf("failed to find %s in the gene library\n", name)
	}
}
