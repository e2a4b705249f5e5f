package commands

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/erraggy/ptrtools/document"
	"github.com/erraggy/ptrtools/internal/maputil"
	"github.com/erraggy/ptrtools/pointer"
	"github.com/erraggy/ptrtools/walker"
)

// ListFlags contains flags for the list command
type ListFlags struct {
	File   string
	Prefix string
	Leaves bool
	Refs   bool
	Output string
}

// SetupListFlags creates and configures a FlagSet for the list command.
// Returns the FlagSet and a ListFlags struct with bound flag variables.
func SetupListFlags() (*flag.FlagSet, *ListFlags) {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	flags := &ListFlags{}

	fs.StringVar(&flags.File, "f", "", "path to the document (YAML or JSON), a URL, or '-' for stdin")
	fs.StringVar(&flags.File, "file", "", "path to the document (YAML or JSON), a URL, or '-' for stdin")
	fs.StringVar(&flags.Prefix, "prefix", "", "only list pointers at or under this pointer")
	fs.BoolVar(&flags.Leaves, "leaves", false, "list only leaf pointers with their values")
	fs.BoolVar(&flags.Refs, "refs", false, "list $ref references as source -> target pairs")
	fs.StringVar(&flags.Output, "output", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: ptrtools list -f <file|url|-> [flags]\n\n")
		Writef(output, "Enumerate every valid JSON Pointer in a document.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  ptrtools list -f config.yaml\n")
		Writef(output, "  ptrtools list -f config.yaml -prefix /service\n")
		Writef(output, "  ptrtools list -f config.yaml -leaves\n")
		Writef(output, "  ptrtools list -f api.json -refs -output json\n")
		Writef(output, "\nPipelining:\n")
		Writef(output, "  - Use '-' as the file path to read from stdin\n")
		Writef(output, "  - One pointer per line in text mode (the root is an empty line)\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Listing succeeded\n")
		Writef(output, "  1    The document could not be loaded or walked\n")
		Writef(output, "  2    Usage error\n")
	}

	return fs, flags
}

// HandleList executes the list command
func HandleList(args []string) error {
	fs, flags := SetupListFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return &UsageError{Err: err}
	}

	if flags.File == "" {
		fs.Usage()
		return Usagef("list command requires -f with a file path, URL, or '-' for stdin")
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return Usagef("list command takes no positional arguments")
	}
	if flags.Leaves && flags.Refs {
		fs.Usage()
		return Usagef("-leaves and -refs cannot be combined")
	}
	if err := ValidateOutputFormat(flags.Output); err != nil {
		return &UsageError{Err: err}
	}

	prefix := ""
	if flags.Prefix != "" {
		p, err := pointer.Parse(flags.Prefix)
		if err != nil {
			return fmt.Errorf("invalid -prefix: %w", err)
		}
		prefix = p.String()
	}

	doc, err := document.Load(flags.File)
	if err != nil {
		return fmt.Errorf("loading document: %w", err)
	}

	switch {
	case flags.Refs:
		return listRefs(doc, prefix, flags.Output)
	case flags.Leaves:
		return listLeaves(doc, prefix, flags.Output)
	default:
		return listPointers(doc, prefix, flags.Output)
	}
}

// matchedByPrefix reports whether ptr is the prefix itself or nested
// under it. An empty prefix matches everything.
func matchedByPrefix(ptr, prefix string) bool {
	if prefix == "" {
		return true
	}
	return ptr == prefix || strings.HasPrefix(ptr, prefix+"/")
}

func listPointers(doc *document.Document, prefix, format string) error {
	all, err := walker.Pointers(doc.Root)
	if err != nil {
		return fmt.Errorf("walking document: %w", err)
	}

	matched := make([]string, 0, len(all))
	for _, ptr := range all {
		if matchedByPrefix(ptr, prefix) {
			matched = append(matched, ptr)
		}
	}

	if format == FormatText {
		for _, ptr := range matched {
			fmt.Println(ptr)
		}
		return nil
	}
	return OutputStructured(matched, format)
}

// leafListing is a leaf pointer paired with its decoded value.
type leafListing struct {
	Pointer string `json:"pointer" yaml:"pointer"`
	Value   any    `json:"value" yaml:"value"`
}

func listLeaves(doc *document.Document, prefix, format string) error {
	leaves, err := walker.Leaves(doc.Root)
	if err != nil {
		return fmt.Errorf("walking document: %w", err)
	}

	matched := make([]leafListing, 0, len(leaves))
	for _, ptr := range maputil.SortedKeys(leaves) {
		if matchedByPrefix(ptr, prefix) {
			matched = append(matched, leafListing{Pointer: ptr, Value: leaves[ptr]})
		}
	}

	if format == FormatText {
		for _, leaf := range matched {
			compact, err := jsoniter.MarshalToString(leaf.Value)
			if err != nil {
				return fmt.Errorf("marshaling leaf %s: %w", leaf.Pointer, err)
			}
			fmt.Printf("%s: %s\n", leaf.Pointer, compact)
		}
		return nil
	}
	return OutputStructured(matched, format)
}

// refListing is a $ref occurrence: the pointer holding it and its target.
type refListing struct {
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
}

func listRefs(doc *document.Document, prefix, format string) error {
	refs, err := walker.Refs(doc.Root)
	if err != nil {
		return fmt.Errorf("walking document: %w", err)
	}

	matched := make([]refListing, 0, len(refs))
	for _, ref := range refs {
		if matchedByPrefix(ref.Source, prefix) {
			matched = append(matched, refListing{Source: ref.Source, Target: ref.Target})
		}
	}

	if format == FormatText {
		for _, ref := range matched {
			fmt.Printf("%s -> %s\n", ref.Source, ref.Target)
		}
		return nil
	}
	return OutputStructured(matched, format)
}
