package synvec

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jjtimmons/synvec/config"
	"github.com/spf13/cobra"
)

// OriCmd runs ori from a cobra command and its flags
func OriCmd(cmd *cobra.Command, args []string) {
	if err := Ori(parseCmdFlags(cmd)); err != nil {
		stderr.Fatalln(err)
	}
}

// Ori locates the probable replication origin in a host genome and
// reports it, optionally writing the extracted window to a FASTA file
func Ori(flags *Flags, conf *config.Config) error {
	host, err := readFasta(flags.in)
	if err != nil {
		return err
	}

	window, index := locateOri(host, flags.window)
	minSkew, maxSkew := skewExtremes(host)

	fmt.Printf("ori found at index %d of %s (%dbp)\n", index, flags.in, len(host))
	fmt.Printf(
		"skew range [%d, %d], window %dbp, GC content %.1f%% (host %.1f%%)\n",
		minSkew,
		maxSkew,
		len(window),
		100*gcContent(window),
		100*gcContent(host),
	)

	if flags.out == "" {
		return nil
	}

	name := strings.TrimSuffix(filepath.Base(flags.in), filepath.Ext(flags.in)) + "_ori"
	if err = write(flags.out, name, window); err != nil {
		return err
	}
	fmt.Printf("%s written to %s\n", name, flags.out)

	return nil
}

// locateOri scans seq for the point of minimum GC skew, the
// conventional proxy for a bacterial replication origin, and extracts a
// window bp window centered on it. The running skew climbs on G and
// falls on C, every other character is neutral. Ties keep the earliest
// minimum, a sequence with no G or C at all reports index 0. A window
// of zero or less extracts nothing.
//
// The sequence is treated as circular: a window that crosses either end
// wraps around. Sequences shorter than the window can yield duplicated
// stretches in the wrapped window, that is accepted, not corrected
func locateOri(seq string, window int) (string, int) {
	if window < 0 {
		window = 0
	}

	skew, minSkew, minIdx := 0, 0, 0
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'G':
			skew++
		case 'C':
			skew--
		}

		if i == 0 || skew < minSkew {
			minSkew = skew
			minIdx = i
		}
	}

	length := len(seq)
	start := minIdx - window/2
	end := minIdx + window/2

	if start < 0 {
		// wrap around the start of the sequence
		tail := length + start
		if tail < 0 {
			tail = 0
		}
		if end > length {
			end = length
		}
		return seq[tail:] + seq[:end], minIdx
	}
	if end > length {
		// wrap past the end of the sequence
		return seq[start:] + seq[:end-length], minIdx
	}
	return seq[start:end], minIdx
}

// skewExtremes returns the lowest and highest values the running GC
// skew reaches over seq
func skewExtremes(seq string) (min, max int) {
	skew := 0
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'G':
			skew++
		case 'C':
			skew--
		}

		if skew < min {
			min = skew
		}
		if skew > max {
			max = skew
		}
	}
	return
}

// gcContent is the G+C fraction of seq
func gcContent(seq string) float64 {
	if seq == "" {
		return 0
	}

	gc := strings.Count(seq, "G") + strings.Count(seq, "C")
	return float64(gc) / float64(len(seq))
}
