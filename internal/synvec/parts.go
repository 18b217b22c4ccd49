package synvec

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// PartDB is a struct for accessing synvecs part library
type PartDB struct {
	// path to the library file the parts were read from
	path string

	// names of the parts in file order
	names []string

	// parts is a map between a parts name and its sequence
	parts map[string]string
}

// NewPartDB returns a new copy of the part library at path.
// A missing library file is treated as an empty library
func NewPartDB(path string) *PartDB {
	entries, err := readLibrary(path)
	if err != nil {
		stderr.Fatal(err)
	}

	names := []string{}
	parts := make(map[string]string)
	for _, e := range entries {
		if _, seen := parts[e.Name]; !seen {
			names = append(names, e.Name)
		}
		parts[e.Name] = strings.ToUpper(e.Seq)
	}

	return &PartDB{path: path, names: names, parts: parts}
}

// entries returns the parts as a list of entries in file order (for write back)
func (p *PartDB) entries() []entry {
	es := []entry{}
	for _, name := range p.names {
		es = append(es, entry{Name: name, Seq: p.parts[name]})
	}
	return es
}

// ReadCmd returns parts that are similar in name to the part name requested.
// if multiple part names include the part name, they are all returned.
// otherwise a list of part names are returned (those beneath a levenshtein distance cutoff)
func (p *PartDB) ReadCmd(cmd *cobra.Command, args []string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.TabIndent)

	if len(args) < 1 {
		// no part name passed, log all of them
		partNames := []string{}
		for part := range p.parts {
			partNames = append(partNames, part)
		}
		sort.Slice(
			partNames,
			func(i, j int) bool {
				return strings.ToLower(partNames[i]) < strings.ToLower(partNames[j])
			},
		)

		// print all their names to the console and the first few bp
		for _, part := range partNames {
			seq := p.parts[part]
			if len(seq) > 20 {
				seq = seq[:20] + "..."
			}
			fmt.Fprintf(w, "%s\t%s\n", part, seq)
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

	for pName, pSeq := range p.parts {
		if strings.Contains(pName, name) {
			containing = append(containing, pName+"\t"+pSeq)
		} else if len(pName) > ldCutoff && ld(name, pName, true) <= ldCutoff {
			lowDistance = append(lowDistance, pName+"\t"+pSeq)
		}
	}

	// check for an exact match
	matchedPart, exactMatch := p.parts[name]
	if exactMatch && len(containing) < 2 {
		fmt.Fprintf(w, "%s\t%s", name, matchedPart)
		w.Write([]byte("\n"))
		w.Flush()
		return
	}

	// from https://golang.org/pkg/text/tabwriter/
	if len(containing) < 3 {
		lowDistance = append(lowDistance, containing...)
		containing = []string{} // clear
	}
	if len(containing) > 0 {
		fmt.Fprint(w, strings.Join(containing, "\n"))
	} else if len(lowDistance) > 0 {
		fmt.Fprint(w, strings.Join(lowDistance, "\n"))
	} else {
		fmt.Fprintf(w, "failed to find any parts for %s", name)
	}
	w.Write([]byte("\n"))
	w.Flush()
}

// SetCmd the part's seq in the library (or create if it isn't in the part library)
func (p *PartDB) SetCmd(cmd *cobra.Command, args []string) {
	if len(args) < 2 {
		stderr.Fatalf("expecting two args: a parts name and sequence. %d passed\n", len(args))
	}

	name := args[0]
	seq := args[1]

	if len(args) > 2 {
		name = strings.Join(args[:len(args)-1], " ")
		seq = args[len(args)-1]
	}
	seq = strings.ToUpper(seq)

	_, updated := p.parts[name]
	if !updated {
		p.names = append(p.names, name) // create from nothing
	}
	p.parts[name] = seq

	if err := writeLibrary(p.path, p.entries()); err != nil {
		stderr.Fatal(err)
	}

	if updated {
		fmt.Printf("updated %s in the part library\n", name)
	}
}

// DeleteCmd the part from the library
func (p *PartDB) DeleteCmd(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		stderr.Fatalf("expecting one arg: a parts name. %d passed\n", len(args))
	}

	name := args[0]
	if len(args) > 1 {
		name = strings.Join(args, " ")
	}

	_, deleted := p.parts[name]
	if deleted {
		delete(p.parts, name)
		names := p.names[:0]
		for _, n := range p.names {
			if n != name {
				names = append(names, n)
			}
		}
		p.names = names

		if err := writeLibrary(p.path, p.entries()); err != nil {
			stderr.Fatal(err)
		}
	}

	if deleted {
		fmt.Printf("deleted %s from the part library\n", name)
	} else {
		fmt.Printf("failed to find %s in the part library\n", name)
	}
}

// ld compares two strings and returns the levenshtein distance between them.
// This was copied verbatim from https://github.com/spf13/cobra
func ld(s, t string, ignoreCase bool) int {
	if ignoreCase {
		s = strings.ToUpper(s)
		t = strings.ToUpper(t)
	}
	d := make([][]int, len(s)+1)
	for i := range d {
		d[i] = make([]int, len(t)+1)
	}
	for i := range d {
		d[i][0] = i
	}
	for j := range d[0] {
		d[0][j] = j
	}
	for j := 1; j <= len(t); j++ {
		for i := 1; i <= len(s); i++ {
			if s[i-1] == t[j-1] {
				d[i][j] = d[i-1][j-1]
			} else {
				min := d[i-1][j]
				if d[i][j-1] < min {
					min = d[i][j-1]
				}
				if d[i-1][j-1] < min {
					min = d[i-1][j-1]
				}
				d[i][j] = min + 1
			}
		}
	}
	return d[len(s)][len(t)]
}
