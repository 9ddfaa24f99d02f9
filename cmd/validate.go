package cmd

import (
	"fmt"

	"github.com/AnyUserName/cardgen/internal/verify"
	"github.com/spf13/cobra"
)

var (
	validateDPI        int
	validateNoManifest bool
)

var validateCmd = &cobra.Command{
	Use:   "validate [deck_dir]",
	Short: "Check that a deck directory holds all 52 correctly labelled cards",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().IntVar(&validateDPI, "dpi", 72, "required DPI of rendered cards (0 = don't check)")
	validateCmd.Flags().BoolVar(&validateNoManifest, "no-manifest", false, "skip manifest cross-check")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	dir := assetsDirArg(args)

	r, err := verify.Check(dir, verify.Options{DPI: validateDPI, SkipManifest: validateNoManifest})
	if err != nil {
		return err
	}

	if r.OK() {
		fmt.Printf("  %s %d cards present, sizes and label colours match\n", okMark("✓"), r.Checked)
		if r.Manifest {
			fmt.Printf("  %s manifest hashes match\n", okMark("✓"))
		}
		return nil
	}

	fmt.Printf("  %s Deck has %d problem(s):\n", failMark("✗"), len(r.Problems))
	for _, p := range r.Problems {
		fmt.Printf("    • %s\n", p)
	}
	return fmt.Errorf("validation failed with %d problems", len(r.Problems))
}
