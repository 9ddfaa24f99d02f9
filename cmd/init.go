package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/AnyUserName/cardgen/internal/config"
	"github.com/AnyUserName/cardgen/internal/profile"
	"github.com/spf13/cobra"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init [assets_dir]",
	Short: "Write a default cardgen.toml into the assets directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		dir := assetsDirArg(args)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
		path := filepath.Join(dir, config.FileName)
		if _, err := os.Stat(path); err == nil && !initForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}

		p := profile.Get(profile.DefaultName)
		x, y := p.Origin.X, p.Origin.Y
		cfg := &config.Config{
			Profile:  p.Name,
			FontSize: p.FontSize,
			OriginX:  &x,
			OriginY:  &y,
			DPI:      p.DPI,
		}
		if err := cfg.Save(path); err != nil {
			return err
		}
		fmt.Printf("  %s wrote %s\n", okMark("✓"), path)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config")
	rootCmd.AddCommand(initCmd)
}
