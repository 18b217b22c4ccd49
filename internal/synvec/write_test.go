package synvec

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func Test_write(t *testing.T) {
	out := filepath.Join(t.TempDir(), "Output.fa")
	seq := strings.Repeat("GATTACA", 30) // 210bp, forces line wrapping

	if err := write(out, "Synthetic_Plasmid_Output", seq); err != nil {
		t.Fatal(err)
	}

	contents, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(string(contents)), "\n")
	if !strings.HasPrefix(lines[0], ">Synthetic_Plasmid_Output") {
		t.Errorf("write() header = %v, want >Synthetic_Plasmid_Output", lines[0])
	}
	for _, line := range lines[1:] {
		if len(line) > 80 {
			t.Errorf("write() line of %d characters, want at most 80", len(line))
		}
	}

	read, err := readFasta(out)
	if err != nil {
		t.Fatal(err)
	}
	if read != seq {
		t.Errorf("readFasta() after write() = %v, want %v", read, seq)
	}
}

func Test_writeReport(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.json")
	plan := []segment{
		{Key: "ori_pMB1", class: classOri, seq: "CCAACCAA"},
		{Key: "kanR", class: classMarker, seq: "AAAA"},
		{Key: "tetR", class: classGene, seq: "GGG"},
	}

	output, err := writeReport(out, "pUC19", 1493, "CCAACCAAXXAAAAXXGGG", plan, []string{"mCherry"}, 0.25)
	if err != nil {
		t.Fatal(err)
	}

	var report Output
	if err := json.Unmarshal(output, &report); err != nil {
		t.Fatal(err)
	}

	if report.Target != "pUC19" {
		t.Errorf("writeReport() target = %v, want pUC19", report.Target)
	}
	if report.OriIndex != 1493 {
		t.Errorf("writeReport() oriIndex = %v, want 1493", report.OriIndex)
	}
	if report.Length != 19 {
		t.Errorf("writeReport() length = %v, want 19", report.Length)
	}
	if len(report.Missing) != 1 || report.Missing[0] != "mCherry" {
		t.Errorf("writeReport() missing = %v, want [mCherry]", report.Missing)
	}

	wantTypes := []string{"ori", "marker", "default gene"}
	wantLengths := []int{8, 4, 3}
	for i, s := range report.Segments {
		if s.Type != wantTypes[i] {
			t.Errorf("writeReport() segment %d type = %v, want %v", i, s.Type, wantTypes[i])
		}
		if s.Length != wantLengths[i] {
			t.Errorf("writeReport() segment %d length = %v, want %v", i, s.Length, wantLengths[i])
		}
	}

	// the report on disk is the same as the returned bytes
	contents, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(contents) != string(output) {
		t.Error("writeReport() file does not match the returned report")
	}
}
