// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ik5/pianogen/internal/inspect"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE...",
	Short: "Print format, length and peak of audio files",
	Long: `inspect decodes each file (wav, aiff, mp3 or ogg, chosen by extension)
and prints its sample rate, channel count, length and the peak level of
its mono mix.`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE:         runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	reg := inspect.NewRegistry()

	for _, path := range args {
		rep, err := inspect.File(path, reg)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), rep)
	}

	return nil
}
