package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/ptrtools/document"
	"github.com/erraggy/ptrtools/internal/fileutil"
)

// UnsetFlags contains flags for the unset command
type UnsetFlags struct {
	File   string
	Out    string
	Output string
}

// SetupUnsetFlags creates and configures a FlagSet for the unset command.
// Returns the FlagSet and an UnsetFlags struct with bound flag variables.
func SetupUnsetFlags() (*flag.FlagSet, *UnsetFlags) {
	fs := flag.NewFlagSet("unset", flag.ContinueOnError)
	flags := &UnsetFlags{}

	fs.StringVar(&flags.File, "f", "", "path to the document (YAML or JSON), a URL, or '-' for stdin")
	fs.StringVar(&flags.File, "file", "", "path to the document (YAML or JSON), a URL, or '-' for stdin")
	fs.StringVar(&flags.Out, "out", fileutil.StdinPath, "output path, or '-' for stdout")
	fs.StringVar(&flags.Output, "output", "", "document format: json or yaml (default: same as source)")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: ptrtools unset -f <file|url|-> [flags] <pointer>\n\n")
		Writef(output, "Remove the value at a JSON Pointer and emit the updated document.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  ptrtools unset -f config.yaml /service/debug\n")
		Writef(output, "  ptrtools unset -f config.yaml -out config.yaml /features/0\n")
		Writef(output, "  ptrtools unset -f api.json -output yaml /paths/~1legacy\n")
		Writef(output, "\nPipelining:\n")
		Writef(output, "  - Use '-' as the file path to read from stdin\n")
		Writef(output, "  - The updated document goes to stdout unless -out names a file\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Value removed\n")
		Writef(output, "  1    The pointer could not be removed or the document could not be loaded\n")
		Writef(output, "  2    Usage error\n")
	}

	return fs, flags
}

// HandleUnset executes the unset command
func HandleUnset(args []string) error {
	fs, flags := SetupUnsetFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return &UsageError{Err: err}
	}

	if flags.File == "" {
		fs.Usage()
		return Usagef("unset command requires -f with a file path, URL, or '-' for stdin")
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return Usagef("unset command requires exactly one pointer argument")
	}
	if err := ValidateDocumentFormat(flags.Output); err != nil {
		return &UsageError{Err: err}
	}

	doc, err := document.Load(flags.File)
	if err != nil {
		return fmt.Errorf("loading document: %w", err)
	}

	if err := doc.Remove(fs.Arg(0)); err != nil {
		return err
	}

	data, err := RenderDocument(doc, flags.Output)
	if err != nil {
		return err
	}
	return fileutil.WriteOutput(flags.Out, data, fileutil.OwnerReadWrite)
}
