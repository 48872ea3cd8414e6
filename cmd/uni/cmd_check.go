package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/KimNorgaard/go-uni"
	unierrors "github.com/KimNorgaard/go-uni/errors"
	"github.com/KimNorgaard/go-uni/internal/source"
)

var (
	locationColor = color.New(color.Bold).SprintFunc()
	errorColor    = color.New(color.FgRed, color.Bold).SprintFunc()
	kindColor     = color.New(color.FgYellow).SprintFunc()
	caretColor    = color.New(color.FgGreen, color.Bold).SprintFunc()
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "Report syntax errors in UNI documents",
		Long: `Parse each file and report the first syntax error found in it.

Diagnostics are written to stderr with the line, column and a caret under
the offending character. The command fails if any document is invalid.
If no files are provided, a single document is read from stdin.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				names = []string{""}
			}

			failed := 0
			for _, name := range names {
				src, display, err := readInput(cmd, name)
				if err != nil {
					return err
				}
				if _, err := uni.Parse(src); err != nil {
					failed++
					printDiagnostic(cmd.ErrOrStderr(), display, src, err)
					continue
				}
				log.Infof("%s: ok", display)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d documents failed", failed, len(names))
			}
			return nil
		},
	}

	return cmd
}

// printDiagnostic writes a compiler-style report of a parse error.
func printDiagnostic(w io.Writer, name string, src []byte, err error) {
	var pe *unierrors.ParseError
	if !errors.As(err, &pe) {
		fmt.Fprintf(w, "%s: %s\n", locationColor(name), errorColor(err.Error()))
		return
	}

	fmt.Fprintf(w, "%s: %s %s\n",
		locationColor(fmt.Sprintf("%s:%d:%d", name, pe.Line, pe.Column)),
		errorColor(pe.Message),
		kindColor("["+pe.Kind.String()+"]"))

	ctx := source.At(src, pe.Offset)
	line := ctx.Text(src)
	fmt.Fprintf(w, "\t%s\n\t%s%s\n", line, caretPadding(line, pe.Column), caretColor("^"))
}

// caretPadding keeps tabs so the caret lines up with the source line.
func caretPadding(line string, column int) string {
	var b strings.Builder
	for i, r := range []rune(line) {
		if i >= column-1 {
			break
		}
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func configureColor(mode string, w io.Writer) error {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	case "auto":
		f, ok := w.(*os.File)
		color.NoColor = !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
	default:
		return fmt.Errorf("invalid --color value %q, expected auto, always or never", mode)
	}
	return nil
}
