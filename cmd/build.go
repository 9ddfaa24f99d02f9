package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/AnyUserName/cardgen/internal/config"
	"github.com/AnyUserName/cardgen/internal/manifest"
	"github.com/AnyUserName/cardgen/internal/pipeline"
	"github.com/AnyUserName/cardgen/internal/profile"
	"github.com/spf13/cobra"
)

var (
	buildOutDir     string
	buildFont       string
	buildProfile    string
	buildSize       float64
	buildWorkers    int
	buildConfig     string
	buildNoManifest bool
)

var buildCmd = &cobra.Command{
	Use:   "build [assets_dir]",
	Short: "Render every non-ace card from the ace templates",
	Long: `Reads card_ace_<suit>.png for spades, hearts, clubs and diamonds from
assets_dir (default ./cards), draws each rank label 2..10, jack, queen and
king onto a copy, and writes card_<rank>_<suit>.png with 72 DPI metadata.

Settings come from flags, then cardgen.toml in assets_dir (or --config),
then the selected profile.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutDir, "out", "o", "", "output directory (default: assets_dir)")
	buildCmd.Flags().StringVarP(&buildFont, "font", "f", "", "TrueType/OpenType font file (default: embedded Go Mono)")
	buildCmd.Flags().StringVarP(&buildProfile, "profile", "p", profile.DefaultName, "render profile")
	buildCmd.Flags().Float64VarP(&buildSize, "size", "s", 0, "label size in points (0 = profile default)")
	buildCmd.Flags().IntVarP(&buildWorkers, "workers", "w", 0, "parallel workers (0 = NumCPU)")
	buildCmd.Flags().StringVarP(&buildConfig, "config", "c", "", "config file (default: assets_dir/cardgen.toml)")
	buildCmd.Flags().BoolVar(&buildNoManifest, "no-manifest", false, "do not write "+manifest.FileName)
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	start := time.Now()

	absInput, err := filepath.Abs(assetsDirArg(args))
	if err != nil {
		return fmt.Errorf("resolve input path: %w", err)
	}

	cfg, err := config.Load(buildConfig, absInput)
	if err != nil {
		return err
	}
	if cfg.Path != "" {
		logVerbose("config:  %s", cfg.Path)
	}

	// Flags win over the config file, which wins over the profile.
	flags := cmd.Flags()
	profName := buildProfile
	if !flags.Changed("profile") && cfg.Profile != "" {
		profName = cfg.Profile
	}
	if !profile.Known(profName) {
		fmt.Printf("  %s unknown profile %q, using %s defaults\n", warnMark("⚠"), profName, profile.DefaultName)
	}
	prof := cfg.Apply(profile.Get(profName))
	if buildSize > 0 {
		prof.FontSize = buildSize
	}

	fontPath := buildFont
	if !flags.Changed("font") {
		fontPath = cfg.Font
	}
	outDir := buildOutDir
	if !flags.Changed("out") {
		outDir = cfg.Out
	}
	if outDir == "" {
		outDir = absInput
	}
	absOutput, err := filepath.Abs(outDir)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}
	workers := buildWorkers
	if !flags.Changed("workers") && cfg.Workers > 0 {
		workers = cfg.Workers
	}

	logVerbose("input:   %s", absInput)
	logVerbose("output:  %s", absOutput)
	logVerbose("profile: %s (size=%g, origin=%v, dpi=%d)", prof.Name, prof.FontSize, prof.Origin, prof.DPI)

	p := pipeline.New(pipeline.Config{
		AssetsDir: absInput,
		OutputDir: absOutput,
		FontPath:  fontPath,
		Profile:   prof,
		Workers:   workers,
		Verbose:   verbose,
	})

	m, err := p.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}

	if !buildNoManifest {
		manifestPath := filepath.Join(absOutput, manifest.FileName)
		if err := manifest.WriteJSON(m, manifestPath); err != nil {
			return fmt.Errorf("write manifest: %w", err)
		}
	}

	printBuildReport(m, absOutput, time.Since(start))
	return nil
}

func printBuildReport(m *manifest.Manifest, outDir string, elapsed time.Duration) {
	s := m.Stats
	fmt.Println()
	fmt.Printf("  %s deck written to %s\n", okMark("✓"), outDir)
	fmt.Println()
	fmt.Printf("  Cards:     %d (%d rendered, %d bases)\n", s.TotalCards, s.RenderedCards, s.TotalCards-s.RenderedCards)
	fmt.Printf("  Size:      %s\n", formatBytes(s.TotalBytes))
	fmt.Printf("  Profile:   %s (%gpt @ %d dpi)\n", m.Profile, m.FontSize, m.DPI)
	fmt.Printf("  Font:      %s\n", m.Font)
	if m.BuildInfo != nil {
		fmt.Printf("  Workers:   %d\n", m.BuildInfo.Workers)
	}
	fmt.Printf("  Time:      %s\n", elapsed.Round(time.Millisecond))
	fmt.Println()
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
