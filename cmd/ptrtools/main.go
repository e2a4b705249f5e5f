package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/ptrtools"
	"github.com/erraggy/ptrtools/cmd/ptrtools/commands"
	"github.com/erraggy/ptrtools/internal/mcpserver"
	"github.com/erraggy/ptrtools/internal/suggest"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("ptrtools v%s\n", ptrtools.Version())
	case "help", "-h", "--help":
		printUsage()
	case "get":
		run(commands.HandleGet, args)
	case "set":
		run(commands.HandleSet, args)
	case "unset":
		run(commands.HandleUnset, args)
	case "list":
		run(commands.HandleList, args)
	case "check":
		run(commands.HandleCheck, args)
	case "mcp":
		runMCP()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if hint := suggestCommand(command); hint != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", hint)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(2)
	}
}

// run executes a command handler and maps its failure to an exit status:
// usage mistakes exit 2, everything else exits 1.
func run(handler func([]string) error, args []string) {
	if err := handler(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var usageErr *commands.UsageError
		if errors.As(err, &usageErr) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// runMCP serves the Model Context Protocol on stdio until the client
// disconnects or the process is interrupted.
func runMCP() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := mcpserver.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the closest known command to input, or "" when
// nothing is close enough to be a plausible typo.
func suggestCommand(input string) string {
	known := []string{"get", "set", "unset", "list", "check", "mcp", "version", "help"}
	if matches := suggest.Near(input, known); len(matches) > 0 {
		return matches[0]
	}
	return ""
}

func printUsage() {
	fmt.Println(`ptrtools - JSON Pointer Tools

Usage:
  ptrtools <command> [options]

Commands:
  get         Resolve JSON Pointers against a YAML or JSON document
  set         Write a value at a JSON Pointer
  unset       Remove the value at a JSON Pointer
  list        Enumerate every valid pointer in a document
  check       Verify that pointers resolve
  mcp         Serve pointer tools over the Model Context Protocol (stdio)
  version     Show version information
  help        Show this help message

Examples:
  ptrtools get -f config.yaml /service/name
  ptrtools get -f api.json -output json /paths
  ptrtools set -f config.yaml -value 5 -out config.yaml /service/replicas
  ptrtools unset -f config.yaml /service/debug
  ptrtools list -f config.yaml -prefix /service
  ptrtools check -f config.yaml /service/name /service/port
  cat config.yaml | ptrtools get -f - /service/name

Run 'ptrtools <command> --help' for more information on a command.`)
}
