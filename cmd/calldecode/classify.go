package main

import (
	"github.com/spf13/cobra"

	"github.com/branched-services/go-calldata"
	"github.com/branched-services/go-calldata/internal/config"
	"github.com/branched-services/go-calldata/internal/render"
)

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <word>...",
		Short: "Print the candidate types of 32-byte words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			initCommandFlags(cmd)
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}

			words := make([]string, 0, len(args))
			for _, arg := range args {
				words = append(words, calldata.NormalizeHex(arg))
			}
			return render.New(nil).RenderWords(cmd.OutOrStdout(), cfg.Output, words)
		},
	}
}
