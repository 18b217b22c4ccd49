package synvec

import (
	"io"
	"os"
	"path"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestNewPartDB(t *testing.T) {
	db := NewPartDB(path.Join("..", "..", "test", "markers.json"))

	wantNames := []string{"kanR", "lacZ_alpha", "EcoRI_site", "BamHI_site"}
	if !reflect.DeepEqual(db.names, wantNames) {
		t.Errorf("NewPartDB() names = %v, want %v", db.names, wantNames)
	}
	if db.parts["EcoRI_site"] != "GAATTC" {
		t.Errorf("NewPartDB() EcoRI_site = %v, want GAATTC", db.parts["EcoRI_site"])
	}

	// sequences are uppercased on the way in
	tsv := NewPartDB(path.Join("..", "..", "test", "markers.tsv"))
	if tsv.parts["kanR"] != "TATCAGGACCCGCCAGGAGATACCATTGTGCCCGCACGTATTTACCTCGAAGCGCGCTAT" {
		t.Errorf("NewPartDB() kanR = %v, want it uppercased", tsv.parts["kanR"])
	}

	// a missing library file is just an empty library
	none := NewPartDB(path.Join("..", "..", "test", "nope.json"))
	if len(none.parts) != 0 {
		t.Errorf("NewPartDB() on a missing file has %d parts, want 0", len(none.parts))
	}
}

func Test_PartDB_ReadCmd(t *testing.T) {
	db := NewPartDB(path.Join("..", "..", "test", "markers.json"))

	// without a name every part is listed, sorted, long sequences cut
	// down to a preview
	listing := captureStdout(t, func() { db.ReadCmd(nil, nil) })
	for _, name := range []string{"BamHI_site", "EcoRI_site", "kanR", "lacZ_alpha"} {
		if !strings.Contains(listing, name) {
			t.Errorf("ReadCmd() listing = %q, missing %s", listing, name)
		}
	}
	if strings.Index(listing, "kanR") < strings.Index(listing, "EcoRI_site") {
		t.Errorf("ReadCmd() listing out of sorted order: %q", listing)
	}
	if !strings.Contains(listing, "...") {
		t.Errorf("ReadCmd() listing = %q, want long sequences previewed", listing)
	}

	type args struct {
		args []string
	}
	tests := []struct {
		name   string
		args   args
		want   []string
		absent string
	}{
		{
			"exact name prints that part alone",
			args{
				args: []string{"EcoRI_site"},
			},
			[]string{"EcoRI_site", "GAATTC"},
			"BamHI_site",
		},
		{
			"name fragment prints every containing part",
			args{
				args: []string{"_site"},
			},
			[]string{"EcoRI_site", "BamHI_site"},
			"kanR",
		},
		{
			"misspelled name prints close matches",
			args{
				args: []string{"kanr2"},
			},
			[]string{"kanR"},
			"lacZ_alpha",
		},
		{
			"unknown name reports the failure",
			args{
				args: []string{"zzzzzzzz"},
			},
			[]string{"failed to find any parts for zzzzzzzz"},
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := captureStdout(t, func() { db.ReadCmd(nil, tt.args.args) })
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("ReadCmd(%v) = %q, want it to contain %q", tt.args.args, got, want)
				}
			}
			if tt.absent != "" && strings.Contains(got, tt.absent) {
				t.Errorf("ReadCmd(%v) = %q, want no %q", tt.args.args, got, tt.absent)
			}
		})
	}
}

// copyLibrary clones a test fixture so CRUD tests never touch it
func copyLibrary(t *testing.T, fixture string) string {
	t.Helper()

	contents, err := os.ReadFile(path.Join("..", "..", "test", fixture))
	if err != nil {
		t.Fatal(err)
	}

	clone := filepath.Join(t.TempDir(), fixture)
	if err := os.WriteFile(clone, contents, 0644); err != nil {
		t.Fatal(err)
	}
	return clone
}

// captureStdout runs f with os.Stdout swapped for a pipe and returns
// everything f printed
func captureStdout(t *testing.T, f func()) string {
	t.Helper()

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	f()
	w.Close()

	captured, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return string(captured)
}

func Test_PartDB_SetCmd(t *testing.T) {
	lib := copyLibrary(t, "markers.json")
	db := NewPartDB(lib)

	// a new part lands at the end of the library
	db.SetCmd(nil, []string{"mCherry", "atggtgagcaag"})
	if db.parts["mCherry"] != "ATGGTGAGCAAG" {
		t.Errorf("SetCmd() mCherry = %v, want ATGGTGAGCAAG", db.parts["mCherry"])
	}

	// an updated part keeps its place
	db.SetCmd(nil, []string{"kanR", "AAAA"})

	// a multi word name is joined from everything before the sequence
	db.SetCmd(nil, []string{"custom", "terminator", "CCCC"})
	if db.parts["custom terminator"] != "CCCC" {
		t.Errorf("SetCmd() custom terminator = %v, want CCCC", db.parts["custom terminator"])
	}

	reread := NewPartDB(lib)
	wantNames := []string{"kanR", "lacZ_alpha", "EcoRI_site", "BamHI_site", "mCherry", "custom terminator"}
	if !reflect.DeepEqual(reread.names, wantNames) {
		t.Errorf("NewPartDB() after SetCmd() names = %v, want %v", reread.names, wantNames)
	}
	if reread.parts["kanR"] != "AAAA" {
		t.Errorf("NewPartDB() after SetCmd() kanR = %v, want AAAA", reread.parts["kanR"])
	}
}

func Test_PartDB_DeleteCmd(t *testing.T) {
	lib := copyLibrary(t, "markers.json")
	db := NewPartDB(lib)

	db.DeleteCmd(nil, []string{"lacZ_alpha"})

	reread := NewPartDB(lib)
	wantNames := []string{"kanR", "EcoRI_site", "BamHI_site"}
	if !reflect.DeepEqual(reread.names, wantNames) {
		t.Errorf("NewPartDB() after DeleteCmd() names = %v, want %v", reread.names, wantNames)
	}

	// deleting an unknown part leaves the library alone
	db.DeleteCmd(nil, []string{"nope"})
	if len(db.names) != 3 {
		t.Errorf("DeleteCmd() of an unknown part changed the library to %v", db.names)
	}
}
