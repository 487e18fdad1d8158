package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/strkit/str"
)

func init() {
	rootCmd.AddCommand(newTrimCmd())
}

func newTrimCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trim <separator> [text...]",
		Short: "Cut the text after the last occurrence of a separator",
		Long: `The trim command keeps the text up to and including the last occurrence
of the single-byte <separator> and drops the rest. Lines without the
separator pass through unchanged.

Example:
  strctl trim / /usr/local/bin    # /usr/local/
  ls | strctl trim .`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args[0]) != 1 {
				return fmt.Errorf("separator must be a single byte, got %q", args[0])
			}
			sep := args[0][0]
			return runTransform(args[1:], func(s *str.String) error {
				return s.TruncateAfterLast(sep)
			})
		},
	}
}
