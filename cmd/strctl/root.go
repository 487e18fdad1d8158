package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/joshuapare/strkit/str"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	prompt  string
)

// logger discards everything unless --verbose re-points it at stderr.
var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

var rootCmd = &cobra.Command{
	Use:   "strctl",
	Short: "Transform text with the strkit growable-string library",
	Long: `strctl applies strkit string operations to text. Each command takes the
text as arguments, or, when no text is given, reads lines from standard
input and transforms them one by one until end of input.`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}))
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress the interactive prompt")
	rootCmd.PersistentFlags().StringVar(&prompt, "prompt", "> ", "Prompt shown when reading from a terminal")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// transformFunc mutates a populated handle in place.
type transformFunc func(*str.String) error

// runTransform applies fn to the argument text when present, otherwise to
// each line read from standard input. Transformed text goes to standard
// output, one result per line.
func runTransform(args []string, fn transformFunc) error {
	if len(args) > 0 {
		s := str.New()
		defer s.Destroy()
		if err := s.Append(strings.Join(args, " ")); err != nil {
			return err
		}
		if err := fn(s); err != nil {
			return err
		}
		return emit(s)
	}
	return transformLines(os.Stdin, fn)
}

// transformLines reads lines from r until end of input, applying fn to each.
// Lines the transform rejects (an empty line fed to reverse, a line without
// the searched word) are passed through unchanged.
func transformLines(r io.Reader, fn transformFunc) error {
	interactive := false
	if f, ok := r.(*os.File); ok {
		interactive = !quiet && term.IsTerminal(int(f.Fd()))
	}

	for {
		if interactive {
			fmt.Fprint(os.Stderr, prompt)
		}

		s := str.New()
		err := s.ReadLine(r)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		logger.Debug("read line", "bytes", s.Len())

		if err := fn(s); err != nil && !skippable(err) {
			s.Destroy()
			return err
		}
		if err := emit(s); err != nil {
			s.Destroy()
			return err
		}
		s.Destroy()
	}
}

// skippable reports whether a per-line transform failure should pass the
// line through instead of aborting the stream.
func skippable(err error) bool {
	return errors.Is(err, str.ErrInvalidArgument) || errors.Is(err, str.ErrNotFound)
}

// emit writes the handle's content plus a trailing newline to stdout.
func emit(s *str.String) error {
	if _, err := s.WriteTo(os.Stdout); err != nil {
		return err
	}
	_, err := fmt.Println()
	return err
}
