package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/strkit/str"
)

func init() {
	rootCmd.AddCommand(newReverseCmd())
}

func newReverseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reverse [text...]",
		Short: "Reverse the byte sequence",
		Long: `The reverse command reverses the text byte by byte. Empty input lines
pass through unchanged.

Example:
  strctl reverse hello        # olleh
  echo "stressed" | strctl reverse   # desserts`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(args, (*str.String).Reverse)
		},
	}
}
