package cmd

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/davidpeckham/vin/internal/io/buildio"
	"github.com/davidpeckham/vin/internal/io/kvio"
	"github.com/davidpeckham/vin/pkg/config"
	"github.com/spf13/cobra"
)

// rebuildCmd represents the rebuild command
var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Builds a SQLite vPIC snapshot from CSV extracts",
	Run: func(cmd *cobra.Command, _ []string) {
		out, err := cmd.Flags().GetString("out")
		if err != nil {
			slog.Error("Cannot get out flag", "error", err)
			os.Exit(1)
		}

		cfg := config.New(opts...)
		if out == "" {
			out = filepath.Join(cfg.CacheDir, "vpic.db")
		}

		kvStore, err := kvio.New(cfg.KeyValDir)
		if err != nil {
			slog.Error("Cannot create key-value store", "error", err)
			os.Exit(1)
		}
		b, err := buildio.New(cfg, kvStore, out)
		if err != nil {
			slog.Error("Cannot start rebuild", "error", err)
			os.Exit(1)
		}
		if err = b.Build(); err != nil {
			slog.Error("Cannot build snapshot", "error", err)
			os.Exit(1)
		}
		slog.Info("Snapshot is ready", "path", out)
	},
}

func init() {
	rootCmd.AddCommand(rebuildCmd)
	rebuildCmd.Flags().StringP("out", "o", "", "output snapshot path")
}
