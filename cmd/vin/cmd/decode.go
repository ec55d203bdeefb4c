package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/davidpeckham/vin"
	"github.com/davidpeckham/vin/internal/io/snapio"
	"github.com/davidpeckham/vin/pkg/config"
	"github.com/gnames/gnfmt"
	"github.com/spf13/cobra"
)

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode VIN...",
	Short: "Decodes VINs against the vPIC snapshot",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		correct, err := cmd.Flags().GetBool("correct")
		if err != nil {
			slog.Error("Cannot get correct flag", "error", err)
			os.Exit(1)
		}

		cfg := config.New(opts...)
		dec, err := decoder(cfg)
		if err != nil {
			slog.Error("Cannot load snapshot", "error", err)
			os.Exit(1)
		}

		enc := gnfmt.GNjson{Pretty: true}
		exitCode := 0
		for _, arg := range args {
			v, err := vin.New(arg, vin.OptCorrectCheckDigit(correct))
			if err != nil {
				slog.Error("Invalid VIN", "vin", arg, "error", err)
				exitCode = 1
				continue
			}
			veh, err := dec.Decode(v)
			if err != nil {
				slog.Error("Cannot decode VIN", "vin", arg, "error", err)
				exitCode = 1
				continue
			}
			out, err := enc.Encode(veh)
			if err != nil {
				slog.Error("Cannot encode result", "error", err)
				os.Exit(1)
			}
			fmt.Println(string(out))
		}
		os.Exit(exitCode)
	},
}

// decoder builds a Decoder from an alternate snapshot path when one is
// configured, and falls back to the bundled snapshot otherwise.
func decoder(cfg config.Config) (vin.Decoder, error) {
	if cfg.DBPath == "" {
		return vin.Default()
	}
	snap, err := snapio.New(cfg)
	if err != nil {
		return nil, err
	}
	return vin.NewDecoder(snap), nil
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().BoolP("correct", "c", false,
		"replace a wrong check digit instead of failing")
}
