package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/ptrtools/document"
	"github.com/erraggy/ptrtools/internal/suggest"
	"github.com/erraggy/ptrtools/ptrerrors"
)

// GetFlags contains flags for the get command
type GetFlags struct {
	File    string
	Output  string
	Default string
}

// SetupGetFlags creates and configures a FlagSet for the get command.
// Returns the FlagSet and a GetFlags struct with bound flag variables.
func SetupGetFlags() (*flag.FlagSet, *GetFlags) {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	flags := &GetFlags{}

	fs.StringVar(&flags.File, "f", "", "path to the document (YAML or JSON), a URL, or '-' for stdin")
	fs.StringVar(&flags.File, "file", "", "path to the document (YAML or JSON), a URL, or '-' for stdin")
	fs.StringVar(&flags.Output, "output", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Default, "default", "", "value printed when a pointer path does not exist")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: ptrtools get -f <file|url|-> [flags] <pointer> [<pointer>...]\n\n")
		Writef(output, "Resolve one or more JSON Pointers against a document.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  ptrtools get -f config.yaml /service/name\n")
		Writef(output, "  ptrtools get -f api.json -output json /paths\n")
		Writef(output, "  ptrtools get -f config.yaml -default 8080 /service/port\n")
		Writef(output, "  ptrtools get -f config.yaml /service/name /service/port\n")
		Writef(output, "\nPipelining:\n")
		Writef(output, "  - Use '-' as the file path to read from stdin\n")
		Writef(output, "  - Resolved values go to stdout, diagnostics to stderr\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    All pointers resolved\n")
		Writef(output, "  1    Resolution failed or the document could not be loaded\n")
		Writef(output, "  2    Usage error\n")
	}

	return fs, flags
}

// HandleGet executes the get command
func HandleGet(args []string) error {
	fs, flags := SetupGetFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return &UsageError{Err: err}
	}

	if flags.File == "" {
		fs.Usage()
		return Usagef("get command requires -f with a file path, URL, or '-' for stdin")
	}
	if err := ValidateOutputFormat(flags.Output); err != nil {
		return &UsageError{Err: err}
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return Usagef("get command requires at least one pointer argument")
	}

	// -default "" is meaningful, so track whether the flag was given at all.
	defaultSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "default" {
			defaultSet = true
		}
	})

	doc, err := document.Load(flags.File)
	if err != nil {
		return fmt.Errorf("loading document: %w", err)
	}

	failed := 0
	for _, arg := range fs.Args() {
		value, err := doc.Resolve(arg)
		if err != nil {
			if defaultSet && (errors.Is(err, ptrerrors.ErrNotFound) || errors.Is(err, ptrerrors.ErrOutOfBounds)) {
				fmt.Println(flags.Default)
				continue
			}
			Writef(os.Stderr, "Error: %v%s\n", err, FormatSuggestions(suggest.NearKeys(doc.Root, err)))
			failed++
			continue
		}

		rendered, err := RenderValue(value, flags.Output, doc.SourceFormat)
		if err != nil {
			return err
		}
		fmt.Println(string(rendered))
	}

	if failed > 0 {
		os.Exit(1)
	}
	return nil
}
