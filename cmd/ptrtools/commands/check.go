package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/ptrtools/document"
	"github.com/erraggy/ptrtools/internal/suggest"
)

// CheckFlags contains flags for the check command
type CheckFlags struct {
	File  string
	Quiet bool
}

// SetupCheckFlags creates and configures a FlagSet for the check command.
// Returns the FlagSet and a CheckFlags struct with bound flag variables.
func SetupCheckFlags() (*flag.FlagSet, *CheckFlags) {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	flags := &CheckFlags{}

	fs.StringVar(&flags.File, "f", "", "path to the document (YAML or JSON), a URL, or '-' for stdin")
	fs.StringVar(&flags.File, "file", "", "path to the document (YAML or JSON), a URL, or '-' for stdin")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only report pointers that fail")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only report pointers that fail")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: ptrtools check -f <file|url|-> [flags] <pointer> [<pointer>...]\n\n")
		Writef(output, "Verify that pointers resolve against a document.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  ptrtools check -f config.yaml /service/name /service/port\n")
		Writef(output, "  ptrtools check -f api.json -q /paths /components/schemas\n")
		Writef(output, "\nPipelining:\n")
		Writef(output, "  - Use '-' as the file path to read from stdin\n")
		Writef(output, "  - Use --quiet/-q to only report failures\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    All pointers resolve\n")
		Writef(output, "  1    At least one pointer failed or the document could not be loaded\n")
		Writef(output, "  2    Usage error\n")
	}

	return fs, flags
}

// HandleCheck executes the check command
func HandleCheck(args []string) error {
	fs, flags := SetupCheckFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return &UsageError{Err: err}
	}

	if flags.File == "" {
		fs.Usage()
		return Usagef("check command requires -f with a file path, URL, or '-' for stdin")
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return Usagef("check command requires at least one pointer argument")
	}

	doc, err := document.Load(flags.File)
	if err != nil {
		return fmt.Errorf("loading document: %w", err)
	}

	failed := 0
	for _, arg := range fs.Args() {
		if _, err := doc.Resolve(arg); err != nil {
			fmt.Printf("✗ %s: %v%s\n", arg, err, FormatSuggestions(suggest.NearKeys(doc.Root, err)))
			failed++
			continue
		}
		if !flags.Quiet {
			fmt.Printf("✓ %s\n", arg)
		}
	}

	if !flags.Quiet {
		Writef(os.Stderr, "\nChecked %d pointers: %d ok, %d failed\n", fs.NArg(), fs.NArg()-failed, failed)
	}

	if failed > 0 {
		os.Exit(1)
	}
	return nil
}
