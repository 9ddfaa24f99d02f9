package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/AnyUserName/cardgen/internal/deck"
	"github.com/AnyUserName/cardgen/internal/manifest"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats [deck_dir_or_manifest]",
	Short: "Display statistics for a built deck",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, args []string) error {
	path := assetsDirArg(args)

	// If path is a directory, look for manifest inside.
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		path = filepath.Join(path, manifest.FileName)
	}

	m, err := manifest.ReadJSON(path)
	if err != nil {
		return err
	}
	printStats(m)
	return nil
}

func printStats(m *manifest.Manifest) {
	fmt.Println()
	fmt.Printf("  Manifest version: %d\n", m.Version)
	fmt.Printf("  Generated:        %s\n", m.GeneratedAt)
	fmt.Printf("  Profile:          %s (%gpt @ %d dpi)\n", m.Profile, m.FontSize, m.DPI)
	fmt.Printf("  Font:             %s\n", m.Font)
	if m.BuildInfo != nil {
		fmt.Printf("  Run:              %s (%d workers)\n", m.BuildInfo.RunID, m.BuildInfo.Workers)
	}
	fmt.Println()

	s := m.Stats
	fmt.Printf("  Cards:            %d (%d rendered)\n", s.TotalCards, s.RenderedCards)
	fmt.Printf("  Total size:       %s\n", formatBytes(s.TotalBytes))
	fmt.Println()

	// Per-suit breakdown.
	type suitStat struct {
		count int
		bytes int64
	}
	bySuit := map[string]suitStat{}
	sizes := map[string]int{}
	for _, c := range m.Cards {
		st := bySuit[c.Suit]
		st.count++
		st.bytes += c.Size
		bySuit[c.Suit] = st
		sizes[fmt.Sprintf("%dx%d", c.Width, c.Height)]++
	}

	fmt.Println("  Suit breakdown:")
	for _, su := range deck.Suits() {
		st := bySuit[string(su)]
		fmt.Printf("    %s %-9s %2d cards  %-6s %s\n", su.Symbol(), su, st.count, su.ColorName(), formatBytes(st.bytes))
	}
	fmt.Println()

	var dims []string
	for d := range sizes {
		dims = append(dims, d)
	}
	sort.Strings(dims)
	fmt.Println("  Dimensions:")
	for _, d := range dims {
		fmt.Printf("    %-9s %2d cards\n", d, sizes[d])
	}

	// Warnings.
	var warnings []string
	for _, c := range deck.Full() {
		if _, ok := m.Cards[c.Key()]; !ok {
			warnings = append(warnings, fmt.Sprintf("card %q not in manifest", c.Key()))
		}
	}
	if len(dims) > 1 {
		warnings = append(warnings, "cards do not share one size")
	}
	if len(warnings) > 0 {
		fmt.Println()
		fmt.Printf("  Warnings (%d):\n", len(warnings))
		for _, w := range warnings {
			fmt.Printf("    %s %s\n", warnMark("⚠"), w)
		}
	}
	fmt.Println()
}
