package synvec

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// readFasta reads a FASTA file (by its path on local FS) to a single
// uppercased sequence, concatenating every record in the file.
// Characters outside ACGT are carried through untouched, they are
// simply skew neutral to the ori scan
func readFasta(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file %s: %v", path, err)
	}
	defer f.Close()

	var seqs []string
	sc := seqio.NewScanner(fasta.NewReader(f, linear.NewSeq("", nil, alphabet.DNA)))
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		seqs = append(seqs, string(alphabet.LettersToBytes(s.Seq)))
	}
	if err := sc.Error(); err != nil {
		return "", fmt.Errorf("failed to parse %s: %v", path, err)
	}

	seq := strings.ToUpper(strings.Join(seqs, ""))
	if seq == "" {
		return "", fmt.Errorf("failed to find a sequence in %s", path)
	}

	return seq, nil
}

// readDesign reads the ordered part keys out of a design file: the
// first comma separated token of each non-blank line
func readDesign(path string) (keys []string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read design file %s: %v", path, err)
	}
	defer f.Close()

	// https://golang.org/pkg/bufio/#example_Scanner_lines
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		keys = append(keys, strings.TrimSpace(strings.Split(line, ",")[0]))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read design file %s: %v", path, err)
	}

	return keys, nil
}
