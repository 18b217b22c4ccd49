package synvec

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/jjtimmons/synvec/config"
)

// Output is a struct containing design results for the plasmid
type Output struct {
	// Target's name. In >pUC19 FASTA its "pUC19"
	Target string `json:"target"`

	// Time, ex:
	// "2018-01-01 20:41:00"
	Time string `json:"time"`

	// Execution is the number of seconds it took to execute the command
	Execution float64 `json:"execution"`

	// OriIndex is where the replication origin sits on the input sequence
	OriIndex int `json:"oriIndex"`

	// Length of the assembled plasmid
	Length int `json:"length"`

	// Segments of the plasmid in assembly order
	Segments []segment `json:"segments"`

	// Missing design keys without a part library sequence
	Missing []string `json:"missing,omitempty"`
}

// write the sequence to a FASTA file at path under the record name
func write(path, name, seq string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %v", path, err)
	}

	w := fasta.NewWriter(f, config.LineLength)
	s := linear.NewSeq(name, alphabet.BytesToLetters([]byte(seq)), alphabet.DNA)
	if _, err := w.Write(s); err != nil {
		f.Close()
		return fmt.Errorf("failed to write FASTA record to %s: %v", path, err)
	}

	return f.Close()
}

// writeReport saves the design results to the fs at the output path
//
// filename is the report file to write to
// target is the name of the input sequence the plasmid was designed around
func writeReport(
	filename, target string,
	oriIndex int,
	plasmid string,
	plan []segment,
	missing []string,
	seconds float64) (output []byte, err error) {
	// store save time, using same format as log.Println https://golang.org/pkg/log/#Println
	t := time.Now() // https://gobyexample.com/time-formatting-parsing
	time := fmt.Sprintf("%d/%02d/%02d %02d:%02d:%02d", t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())

	// freeze segment classes and lengths
	for i := range plan {
		plan[i].Type = plan[i].class.String()
		plan[i].Length = len(plan[i].seq)
	}

	out := Output{
		Time:      time,
		Target:    target,
		Execution: seconds,
		OriIndex:  oriIndex,
		Length:    len(plasmid),
		Segments:  plan,
		Missing:   missing,
	}

	output, err = json.MarshalIndent(out, "", "  ")
	if err != nil {
		return output, fmt.Errorf("failed to serialize output: %v", err)
	}

	if err = os.WriteFile(filename, output, 0666); err != nil {
		return output, fmt.Errorf("failed to write the output: %v", err)
	}
	return output, nil
}
