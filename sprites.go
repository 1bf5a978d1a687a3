package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"snowfall/logging"
	"snowfall/sprite"
)

func newSpritesCmd() *cobra.Command {
	var outDir string
	var scale float64
	var names []string

	cmd := &cobra.Command{
		Use:   "sprites",
		Short: "Write the four snowflake sprites as PNG files",
		RunE: func(cmd *cobra.Command, args []string) error {
			patterns, err := sprite.ParsePatterns(names)
			if err != nil {
				return err
			}
			return writeSprites(outDir, scale, patterns)
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", "sprites", "output directory")
	cmd.Flags().Float64Var(&scale, "scale", 1, "device pixel ratio to render at")
	cmd.Flags().StringSliceVarP(&names, "pattern", "p", nil, "patterns to write (dot, branches, spearheads, asterisk); default all")
	return cmd
}

// writeSprites renders the sprite set once and saves the selected rasters
func writeSprites(outDir string, scale float64, patterns []sprite.Pattern) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	logger := logging.GetLogger().Named("sprites")
	set := sprite.NewSet(scale)
	for _, p := range patterns {
		path := filepath.Join(outDir, p.String()+".png")
		if err := savePNG(path, set, p); err != nil {
			return err
		}
		logger.Info("Sprite written", zap.String("path", path), zap.Int("size", sprite.Size(set.Scale())))
	}
	return nil
}

func savePNG(path string, set *sprite.Set, p sprite.Pattern) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, set.Raster(p)); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
