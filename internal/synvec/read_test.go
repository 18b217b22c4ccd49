package synvec

import (
	"os"
	"path"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// reading a multi record FASTA should concatenate and uppercase every
// record, ambiguity codes included
func Test_readFasta(t *testing.T) {
	got, err := readFasta(path.Join("..", "..", "test", "multi.fa"))
	if err != nil {
		t.Error(err)
	}

	want := "ACGTACGTNNACGTACGTGGCCTTAA"
	if got != want {
		t.Errorf("readFasta() = %v, want %v", got, want)
	}

	host, err := readFasta(path.Join("..", "..", "test", "pUC19.fa"))
	if err != nil {
		t.Error(err)
	}

	if len(host) != 2686 {
		t.Errorf("readFasta() host length = %d, want %d", len(host), 2686)
	}
	if !strings.HasPrefix(host, "GACCGGTACACCAAGCCCTATGCATCAATG") {
		t.Errorf("readFasta() host starts with %s", host[:30])
	}
}

func Test_readFasta_errors(t *testing.T) {
	if _, err := readFasta(path.Join("..", "..", "test", "nope.fa")); err == nil {
		t.Error("readFasta() expected an error for a missing file")
	}

	// a header without any sequence beneath it
	empty := filepath.Join(t.TempDir(), "empty.fa")
	if err := os.WriteFile(empty, []byte(">empty\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := readFasta(empty); err == nil {
		t.Error("readFasta() expected an error for a sequence-less file")
	}
}

func Test_readDesign(t *testing.T) {
	got, err := readDesign(path.Join("..", "..", "test", "Design_pUC19.txt"))
	if err != nil {
		t.Error(err)
	}

	want := []string{"kanR", "ori_pMB1", "EcoRI_site", "lacZ_alpha", "BamHI_site", "mCherry"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("readDesign() = %v, want %v", got, want)
	}

	if _, err := readDesign(path.Join("..", "..", "test", "nope.txt")); err == nil {
		t.Error("readDesign() expected an error for a missing file")
	}
}
