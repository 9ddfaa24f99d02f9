package cmd

import (
	"fmt"

	"github.com/AnyUserName/cardgen/internal/encoder"
	"github.com/AnyUserName/cardgen/internal/sheet"
	"github.com/spf13/cobra"
)

var (
	sheetOut     string
	sheetWidth   int
	sheetGap     int
	sheetQuality int
)

var sheetCmd = &cobra.Command{
	Use:   "sheet [deck_dir]",
	Short: "Lay the whole deck out on one contact sheet",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSheet,
}

func init() {
	sheetCmd.Flags().StringVarP(&sheetOut, "out", "o", "deck.png", "output file (.png or .jpg)")
	sheetCmd.Flags().IntVar(&sheetWidth, "card-width", 81, "thumbnail width (0 = full size)")
	sheetCmd.Flags().IntVar(&sheetGap, "gap", 6, "gap between cards in pixels")
	sheetCmd.Flags().IntVarP(&sheetQuality, "quality", "q", 0, "jpeg quality 1-100 (0 = default)")
	rootCmd.AddCommand(sheetCmd)
}

func runSheet(_ *cobra.Command, args []string) error {
	dir := assetsDirArg(args)

	img, err := sheet.Compose(dir, sheet.Options{CardWidth: sheetWidth, Gap: sheetGap})
	if err != nil {
		return fmt.Errorf("compose sheet: %w", err)
	}
	logVerbose("sheet: %dx%d", img.Bounds().Dx(), img.Bounds().Dy())

	if err := sheet.Write(img, sheetOut, encoder.NewRegistry(72), sheetQuality); err != nil {
		return err
	}
	fmt.Printf("  %s contact sheet written to %s\n", okMark("✓"), sheetOut)
	return nil
}
