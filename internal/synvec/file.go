package synvec

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// entry is a single named sequence in a library file
type entry struct {
	// Name of the part or gene
	Name string

	// Seq is its sequence
	Seq string
}

// readLibrary reads the name to sequence entries of a library file,
// keeping file order. Files ending in .json hold one object of name to
// sequence pairs, anything else is read as name<TAB>sequence lines.
// A missing file is an empty library, not an error
func readLibrary(path string) ([]entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read library %s: %v", path, err)
	}
	defer f.Close()

	if strings.HasSuffix(strings.ToLower(path), ".json") {
		return decodeLibrary(f, path)
	}

	var entries []entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		columns := strings.Split(line, "\t")
		if len(columns) < 2 {
			return nil, fmt.Errorf("failed to parse library %s: no sequence for %s", path, columns[0])
		}
		entries = append(entries, entry{Name: columns[0], Seq: columns[1]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read library %s: %v", path, err)
	}

	return entries, nil
}

// decodeLibrary parses a {"name": "SEQ", ...} JSON object through the
// token stream so the object's own key order survives (a plain
// Unmarshal into a map would lose it)
func decodeLibrary(r io.Reader, path string) ([]entry, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to parse library %s: %v", path, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("failed to parse library %s: want an object of name to sequence pairs", path)
	}

	var entries []entry
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to parse library %s: %v", path, err)
		}

		var seq string
		if err := dec.Decode(&seq); err != nil {
			return nil, fmt.Errorf("failed to parse library %s: %v", path, err)
		}
		entries = append(entries, entry{Name: tok.(string), Seq: seq})
	}

	return entries, nil
}

// writeLibrary saves entries back to path in the file's own format,
// keeping entry order
func writeLibrary(path string, entries []entry) error {
	var output strings.Builder

	if strings.HasSuffix(strings.ToLower(path), ".json") {
		output.WriteString("{\n")
		for i, e := range entries {
			name, _ := json.Marshal(e.Name)
			seq, _ := json.Marshal(e.Seq)
			fmt.Fprintf(&output, "  %s: %s", name, seq)
			if i < len(entries)-1 {
				output.WriteByte(',')
			}
			output.WriteByte('\n')
		}
		output.WriteString("}\n")
	} else {
		for _, e := range entries {
			fmt.Fprintf(&output, "%s\t%s\n", e.Name, e.Seq)
		}
	}

	if err := os.WriteFile(path, []byte(output.String()), 0644); err != nil {
		return fmt.Errorf("failed to write library %s: %v", path, err)
	}

	return nil
}
