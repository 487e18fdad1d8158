package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/strkit/str"
)

func init() {
	rootCmd.AddCommand(newUpperCmd())
	rootCmd.AddCommand(newLowerCmd())
	rootCmd.AddCommand(newTitleCmd())
}

func newUpperCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upper [text...]",
		Short: "Convert ASCII letters to uppercase",
		Long: `The upper command converts every ASCII lowercase letter to uppercase.
Non-letter and non-ASCII bytes pass through unchanged.

Example:
  strctl upper hello world
  echo "hello" | strctl upper`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(args, (*str.String).ToUpper)
		},
	}
}

func newLowerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lower [text...]",
		Short: "Convert ASCII letters to lowercase",
		Long: `The lower command converts every ASCII uppercase letter to lowercase.
Non-letter and non-ASCII bytes pass through unchanged.

Example:
  strctl lower HELLO WORLD
  echo "HELLO" | strctl lower`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(args, (*str.String).ToLower)
		},
	}
}

func newTitleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "title [text...]",
		Short: "Uppercase the first letter of each word",
		Long: `The title command uppercases the first alphabetic byte of the text and
the first alphabetic byte after each space. All other bytes keep their
case; word interiors are not lowercased.

Example:
  strctl title "hello world"   # Hello World
  strctl title "hELLO wORLD"   # HELLO WORLD`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(args, (*str.String).ToTitle)
		},
	}
}
