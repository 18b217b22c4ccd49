package cmd

import (
	"os"
	"path"
	"path/filepath"
	"testing"

	"github.com/jjtimmons/synvec/internal/synvec"
	"github.com/spf13/cobra"
)

func Test_designExec(t *testing.T) {
	in, _ := filepath.Abs(path.Join("..", "test", "pUC19.fa"))
	design, _ := filepath.Abs(path.Join("..", "test", "Design_pUC19.txt"))
	parts, _ := filepath.Abs(path.Join("..", "test", "markers.json"))
	genes, _ := filepath.Abs(path.Join("..", "test", "defaultgenes.json"))
	out := filepath.Join(t.TempDir(), "Output.fa")

	designCmd.Flags().Set("in", in)
	designCmd.Flags().Set("design", design)
	designCmd.Flags().Set("parts", parts)
	designCmd.Flags().Set("genes", genes)
	designCmd.Flags().Set("out", out)

	type args struct {
		cmd  *cobra.Command
		args []string
	}
	tests := []struct {
		name string
		args args
	}{
		{
			"end to end design",
			args{
				cmd:  designCmd,
				args: []string{},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			synvec.DesignCmd(tt.args.cmd, tt.args.args)

			if _, err := os.Stat(out); err != nil {
				t.Errorf("failed to write a plasmid: %v", err)
			}
		})
	}
}
