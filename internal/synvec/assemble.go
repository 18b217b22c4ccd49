package synvec

import (
	"fmt"
	"strings"
)

// partClass is the kind of backbone segment a design key resolves to
type partClass int

const (
	classOri partClass = iota
	classMarker
	classMCS
	classGene
)

// String returns the name of the class as it appears in output reports
func (c partClass) String() string {
	switch c {
	case classOri:
		return "ori"
	case classMarker:
		return "marker"
	case classMCS:
		return "MCS"
	case classGene:
		return "default gene"
	}
	return "unknown"
}

// segment is one stretch of the assembled plasmid. Key, class and seq are
// set during assembly, Type and Length are filled in for the output report
type segment struct {
	// Key is the design key or gene name the segment came from
	Key string `json:"key"`

	// Type of the segment (ori, marker, MCS, default gene)
	Type string `json:"type"`

	// Length of the segment's sequence
	Length int `json:"length"`

	class partClass
	seq   string
}

// classify maps a design key to its backbone class. The ori key is
// matched exactly, MCS keys by their suffix, everything else is a marker
func classify(key, oriKey, mcsSuffix string) partClass {
	if key == oriKey {
		return classOri
	}
	if strings.HasSuffix(key, mcsSuffix) {
		return classMCS
	}
	return classMarker
}

// assemble builds a plasmid sequence from the design keys.
//
// Each key is resolved against the part library except the ori key, which
// takes oriPart (the window cut out around the replication origin).
// Segments are ordered ori, then markers, then MCS sites, then every
// default gene, and joined with the scar. Empty segments are dropped
// before the join so the scar only ever sits between two parts with
// sequence. Keys without a library sequence are skipped and returned
// in missing
func assemble(
	keys []string,
	oriPart string,
	parts map[string]string,
	genes []entry,
	oriKey, mcsSuffix, scar string) (plasmid string, plan []segment, missing []string) {
	var ori, markers, sites []segment

	for _, key := range keys {
		class := classify(key, oriKey, mcsSuffix)

		if class == classOri {
			ori = []segment{{Key: key, class: class, seq: oriPart}}
			fmt.Printf("%s -> ori\n", key)
			continue
		}

		seq, contained := parts[key]
		if !contained {
			stderr.Printf("warning: %s is not in the part library, skipping\n", key)
			missing = append(missing, key)
			continue
		}

		if class == classMCS {
			sites = append(sites, segment{Key: key, class: class, seq: seq})
			fmt.Printf("%s -> MCS\n", key)
		} else {
			markers = append(markers, segment{Key: key, class: class, seq: seq})
			fmt.Printf("%s -> markers\n", key)
		}
	}

	plan = append(plan, ori...)
	plan = append(plan, markers...)
	plan = append(plan, sites...)
	for _, gene := range genes {
		plan = append(plan, segment{Key: gene.Name, class: classGene, seq: gene.Seq})
		fmt.Printf("%s -> default genes\n", gene.Name)
	}

	seqs := []string{}
	for _, s := range plan {
		if s.seq != "" {
			seqs = append(seqs, s.seq)
		}
	}
	plasmid = strings.Join(seqs, scar)

	return plasmid, plan, missing
}
