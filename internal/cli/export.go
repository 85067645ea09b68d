package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/dshills/scrub/internal/config"
	"github.com/dshills/scrub/internal/session"
	"github.com/spf13/cobra"
)

var (
	flagExportOut string
	flagDrop      string
	flagAuto      bool
	flagDryRun    bool
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write a copy of a tabular file with identifying columns removed",
	Long: "Export drops the selected columns and writes the remainder to the output " +
		"file in the input's format family. Columns are chosen with --drop, or " +
		"automatically from the heuristic passes with --auto. If the output name " +
		"matches the input name the output is prefixed to protect the source.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !flagAuto && flagDrop == "" {
			return fmt.Errorf("nothing selected: use --drop or --auto")
		}

		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}

		sess := session.New(cfg)
		res := sess.Load(args[0])
		if !strings.HasPrefix(res.Status, "success") {
			fmt.Fprintf(os.Stderr, "Error: %s\n", res.Status)
			exitCode = ExitRuntimeError
			return nil
		}

		var drop []string
		if flagAuto {
			drop = sess.FirstPass()
			if flagSecondPass {
				drop = append(drop, sess.SecondPass(drop)...)
			}
		}
		drop = append(drop, config.SplitTerms(flagDrop)...)

		out := flagExportOut
		if out == "" {
			out = session.DefaultOutputName(args[0])
		}

		if flagDryRun {
			fmt.Fprintf(os.Stdout, "would drop: %s\n", strings.Join(drop, ", "))
			fmt.Fprintf(os.Stdout, "would write: %s\n", out)
			return nil
		}

		exp := sess.Export(out, drop)
		fmt.Fprintln(os.Stdout, exp.Status)
		if exp.Err != nil || !strings.HasPrefix(exp.Status, "success") {
			exitCode = ExitRuntimeError
			return nil
		}
		fmt.Fprintf(os.Stdout, "dropped: %s\n", strings.Join(exp.Dropped, ", "))
		fmt.Fprintf(os.Stdout, "kept: %s\n", strings.Join(exp.Kept, ", "))
		return nil
	},
}

func init() {
	addScanFlags(exportCmd)
	exportCmd.Flags().StringVar(&flagExportOut, "out", "", "Output file name (default: <base>_deidentified<ext>)")
	exportCmd.Flags().StringVar(&flagDrop, "drop", "", "Columns to drop (comma-separated)")
	exportCmd.Flags().BoolVar(&flagAuto, "auto", false, "Drop the columns flagged by the heuristic passes")
	exportCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Show what would be dropped without writing")
}
