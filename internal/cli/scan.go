package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/dshills/scrub/internal/config"
	"github.com/dshills/scrub/internal/output"
	"github.com/dshills/scrub/internal/session"
	"github.com/spf13/cobra"
)

// Shared scan/export flags
var (
	flagTerms       string
	flagFormat      string
	flagOut         string
	flagPreviewRows int
	flagSecondPass  bool
	flagFailOnMatch bool
)

func addScanFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagTerms, "terms", "", "Identifying terms (comma-separated, overrides config)")
	cmd.Flags().IntVar(&flagPreviewRows, "preview-rows", 0, "Number of preview rows")
	cmd.Flags().BoolVar(&flagSecondPass, "second-pass", false, "Also flag columns sharing values with first-pass columns")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagTerms != "" {
		m["terms"] = flagTerms
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagPreviewRows > 0 {
		m["previewRows"] = fmt.Sprintf("%d", flagPreviewRows)
	}
	return m
}

var scanCmd = &cobra.Command{
	Use:   "scan <file>",
	Short: "Flag identifying columns in a tabular file",
	Long: "Scan loads a CSV or Excel file, matches its column names against the " +
		"identifying terms, and optionally runs a second pass that flags columns " +
		"sharing values with the name-matched ones.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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

		report := sess.BuildReport(flagSecondPass)
		if err := output.WriteReport(report, cfg.Format, flagOut); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		if flagFailOnMatch && len(report.FirstPass)+len(report.SecondPass) > 0 {
			exitCode = ExitMatches
		}
		return nil
	},
}

func init() {
	addScanFlags(scanCmd)
	scanCmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, json)")
	scanCmd.Flags().StringVar(&flagOut, "out", "", "Report file path (default: stdout)")
	scanCmd.Flags().BoolVar(&flagFailOnMatch, "fail-on-match", false, "Exit 1 if any identifying column is flagged")
}
