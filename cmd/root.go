package cmd

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
	noColor bool
)

var (
	okMark   = color.New(color.FgGreen).SprintFunc()
	failMark = color.New(color.FgRed, color.Bold).SprintFunc()
	warnMark = color.New(color.FgYellow).SprintFunc()
)

var rootCmd = &cobra.Command{
	Use:   "cardgen",
	Short: "Generate a 52-card deck from four ace templates",
	Long: `cardgen stamps rank labels onto per-suit ace images and writes
the rest of the deck as card_<rank>_<suit>.png.

Spades and clubs get black labels, hearts and diamonds red ones.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if noColor {
			color.NoColor = true
		}
	},
}

// Execute runs the CLI. Cancelling ctx stops a running build.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"cardgen %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[cardgen] "+format+"\n", args...)
	}
}

// assetsDirArg returns the first positional argument, defaulting to "cards".
func assetsDirArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "cards"
}
