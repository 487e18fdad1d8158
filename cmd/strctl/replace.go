package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/strkit/str"
)

func init() {
	rootCmd.AddCommand(newReplaceCmd())
	rootCmd.AddCommand(newRemoveCmd())
}

func newReplaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replace <old> <new> [text...]",
		Short: "Replace the first occurrence of a word",
		Long: `The replace command substitutes the first occurrence of <old> with <new>.
Later occurrences are untouched. Lines that do not contain <old> pass
through unchanged.

Example:
  strctl replace w1 w2 "a w1 b"        # a w2 b
  cat notes.txt | strctl replace draft final`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			oldWord, newWord := args[0], args[1]
			return runTransform(args[2:], func(s *str.String) error {
				return s.ReplaceFirst(oldWord, newWord)
			})
		},
	}
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <word> [text...]",
		Short: "Remove the first occurrence of a word",
		Long: `The remove command excises the first occurrence of <word>. Lines that do
not contain <word> pass through unchanged.

Example:
  strctl remove "two " "one two three"   # one three
  cat notes.txt | strctl remove TODO`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := args[0]
			return runTransform(args[1:], func(s *str.String) error {
				return s.RemoveFirst(word)
			})
		},
	}
}
