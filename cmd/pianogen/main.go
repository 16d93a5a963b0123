// SPDX-License-Identifier: EPL-2.0

// Command pianogen writes the piano note asset set, one WAV file per key
// from C1 to C7.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ik5/pianogen/internal/batch"
	"github.com/ik5/pianogen/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "pianogen",
	Short: "Render piano notes C1..C7 to WAV files",
	Long: `pianogen renders every chromatic piano note from C1 to C7 as a
4 second, 16-bit mono, 44.1 kHz WAV file named after the note (C4.wav,
Cs4.wav, ...). Files are written atomically and re-running the command
produces identical bytes.

The audio format and note range are fixed. Where and how the files are
written comes from PIANOGEN_OUTPUT_DIR, PIANOGEN_WORKERS, PIANOGEN_MANIFEST
and PIANOGEN_VERIFY; flags take precedence.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runGenerate,
}

func init() {
	cfg := config.Load()

	rootCmd.Flags().StringP("out", "o", cfg.OutputDir, "output directory")
	rootCmd.Flags().IntP("workers", "j", cfg.Workers, "notes rendered concurrently")
	rootCmd.Flags().Bool("manifest", cfg.Manifest, "write manifest.yaml")
	rootCmd.Flags().Bool("verify", cfg.Verify, "decode every file after writing it")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	opts := batch.DefaultOptions("")

	var err error
	if opts.OutputDir, err = cmd.Flags().GetString("out"); err != nil {
		return err
	}
	if opts.Workers, err = cmd.Flags().GetInt("workers"); err != nil {
		return err
	}
	if opts.Manifest, err = cmd.Flags().GetBool("manifest"); err != nil {
		return err
	}
	if opts.Verify, err = cmd.Flags().GetBool("verify"); err != nil {
		return err
	}

	_, err = batch.Run(cmd.Context(), opts)

	return err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		log.Fatalf("pianogen: %v", err)
	}
}
