package cmd

import (
	"log/slog"
	"os"

	"github.com/davidpeckham/vin/internal/io/dumpio"
	"github.com/davidpeckham/vin/pkg/config"
	"github.com/spf13/cobra"
)

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Exports vPIC tables from a MySQL mirror to CSV extracts",
	Run: func(_ *cobra.Command, _ []string) {
		cfg := config.New(opts...)
		d, err := dumpio.New(cfg)
		if err != nil {
			slog.Error("Cannot start dump", "error", err)
			os.Exit(1)
		}
		if err = d.Dump(); err != nil {
			slog.Error("Cannot dump vPIC tables", "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
