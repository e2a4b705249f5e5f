package commands

import (
	"errors"
	"flag"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/erraggy/ptrtools/document"
	"github.com/erraggy/ptrtools/internal/fileutil"
)

// SetFlags contains flags for the set command
type SetFlags struct {
	File   string
	Value  string
	Raw    bool
	Out    string
	Output string
}

// SetupSetFlags creates and configures a FlagSet for the set command.
// Returns the FlagSet and a SetFlags struct with bound flag variables.
func SetupSetFlags() (*flag.FlagSet, *SetFlags) {
	fs := flag.NewFlagSet("set", flag.ContinueOnError)
	flags := &SetFlags{}

	fs.StringVar(&flags.File, "f", "", "path to the document (YAML or JSON), a URL, or '-' for stdin")
	fs.StringVar(&flags.File, "file", "", "path to the document (YAML or JSON), a URL, or '-' for stdin")
	fs.StringVar(&flags.Value, "value", "", "value to write, as JSON (use -raw for a literal string)")
	fs.BoolVar(&flags.Raw, "raw", false, "treat -value as a literal string instead of JSON")
	fs.StringVar(&flags.Out, "out", fileutil.StdinPath, "output path, or '-' for stdout")
	fs.StringVar(&flags.Output, "output", "", "document format: json or yaml (default: same as source)")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: ptrtools set -f <file|url|-> -value <json> [flags] <pointer>\n\n")
		Writef(output, "Write a value at a JSON Pointer and emit the updated document.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  ptrtools set -f config.yaml -value 5 /service/replicas\n")
		Writef(output, "  ptrtools set -f config.yaml -value '{\"cpu\":\"1\"}' /service/limits\n")
		Writef(output, "  ptrtools set -f config.yaml -raw -value v2.1.0 /service/version\n")
		Writef(output, "  ptrtools set -f config.yaml -value true -out config.yaml /service/debug\n")
		Writef(output, "  ptrtools set -f api.json -value '\"closed\"' /status/-\n")
		Writef(output, "\nPipelining:\n")
		Writef(output, "  - Use '-' as the file path to read from stdin\n")
		Writef(output, "  - The updated document goes to stdout unless -out names a file\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Value written\n")
		Writef(output, "  1    The pointer could not be written or the document could not be loaded\n")
		Writef(output, "  2    Usage error\n")
	}

	return fs, flags
}

// HandleSet executes the set command
func HandleSet(args []string) error {
	fs, flags := SetupSetFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return &UsageError{Err: err}
	}

	if flags.File == "" {
		fs.Usage()
		return Usagef("set command requires -f with a file path, URL, or '-' for stdin")
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return Usagef("set command requires exactly one pointer argument")
	}
	if err := ValidateDocumentFormat(flags.Output); err != nil {
		return &UsageError{Err: err}
	}

	// -value "" writes a JSON parse error, not an empty string, unless
	// the flag was explicitly given. Require it either way.
	valueSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "value" {
			valueSet = true
		}
	})
	if !valueSet {
		fs.Usage()
		return Usagef("set command requires -value")
	}

	var value any
	if flags.Raw {
		value = flags.Value
	} else if err := jsoniter.UnmarshalFromString(flags.Value, &value); err != nil {
		return fmt.Errorf("invalid value JSON: %w (use -raw to write a literal string)", err)
	}

	doc, err := document.Load(flags.File)
	if err != nil {
		return fmt.Errorf("loading document: %w", err)
	}

	if err := doc.Set(fs.Arg(0), value); err != nil {
		return err
	}

	data, err := RenderDocument(doc, flags.Output)
	if err != nil {
		return err
	}
	return fileutil.WriteOutput(flags.Out, data, fileutil.OwnerReadWrite)
}
