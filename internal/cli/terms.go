package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/dshills/scrub/internal/config"
	"github.com/dshills/scrub/internal/terms"
	"github.com/spf13/cobra"
)

var termsCmd = &cobra.Command{
	Use:   "terms",
	Short: "Manage the persisted identifying-term list",
}

// loadTermSet builds a Set from the config file (or defaults).
func loadTermSet() (*terms.Set, error) {
	cfg, err := config.LoadFile()
	if err != nil {
		return nil, err
	}
	if len(cfg.Terms) == 0 {
		return terms.New(), nil
	}
	return terms.New(cfg.Terms...), nil
}

// saveTermSet writes the set back to the config file, preserving other keys.
func saveTermSet(set *terms.Set) error {
	cfg, err := config.LoadFile()
	if err != nil {
		return err
	}
	cfg.Terms = set.List()
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	return nil
}

var termsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the identifying terms",
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := loadTermSet()
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, strings.Join(set.List(), ", "))
		return nil
	},
}

var termsAddCmd = &cobra.Command{
	Use:   "add <term>...",
	Short: "Add identifying terms",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := loadTermSet()
		if err != nil {
			return err
		}
		for _, t := range args {
			set.Add(t)
		}
		if err := saveTermSet(set); err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, strings.Join(set.List(), ", "))
		return nil
	},
}

var termsRemoveCmd = &cobra.Command{
	Use:   "remove <term>...",
	Short: "Remove identifying terms",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := loadTermSet()
		if err != nil {
			return err
		}
		for _, t := range args {
			set.Remove(t)
		}
		if err := saveTermSet(set); err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, strings.Join(set.List(), ", "))
		return nil
	},
}

var termsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the built-in default terms",
	RunE: func(cmd *cobra.Command, args []string) error {
		set := terms.New()
		if err := saveTermSet(set); err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, strings.Join(set.List(), ", "))
		return nil
	},
}

func init() {
	termsCmd.AddCommand(termsListCmd)
	termsCmd.AddCommand(termsAddCmd)
	termsCmd.AddCommand(termsRemoveCmd)
	termsCmd.AddCommand(termsResetCmd)
}
