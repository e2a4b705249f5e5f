package doctest

import (
	"go/ast"
	goparser "go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// repoRoot locates the repository root relative to this source file, so the
// tests work no matter which directory go test runs from.
func repoRoot(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	require.True(t, ok, "runtime.Caller(0) failed")
	return filepath.Join(filepath.Dir(thisFile), "..", "..")
}

// documentationFiles lists the user-facing markdown that carries Go examples:
// the root README and the per-package deep dives, plus any markdown under
// docs/ or examples/. Design notes in docs/plans/ and the contributor and
// license pages carry no API examples and are skipped.
func documentationFiles(t *testing.T, root string) []string {
	t.Helper()

	var files []string
	add := func(path string) {
		if _, err := os.Stat(path); err == nil {
			files = append(files, path)
		}
	}

	add(filepath.Join(root, "README.md"))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	for _, entry := range entries {
		if entry.IsDir() {
			add(filepath.Join(root, entry.Name(), "deep_dive.md"))
		}
	}

	skip := map[string]bool{"CONTRIBUTORS.md": true, "LICENSE.md": true}
	for _, sub := range []string{"docs", "examples"} {
		dir := filepath.Join(root, sub)
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if d.Name() == "plans" {
					return filepath.SkipDir
				}
				return nil
			}
			if strings.HasSuffix(d.Name(), ".md") && !skip[d.Name()] {
				files = append(files, path)
			}
			return nil
		})
		require.NoError(t, walkErr)
	}

	sort.Strings(files)
	return files
}

// fencedBlock is one go-tagged code example pulled from a markdown file.
type fencedBlock struct {
	text string
	line int // 1-indexed first line of the code itself
}

// goFences extracts the go-tagged fenced blocks from markdown content.
// Fences with other info strings (yaml, text, bare) never open a block, so
// sample data and shell transcripts stay out of the symbol checks.
func goFences(content string) []fencedBlock {
	var (
		blocks []fencedBlock
		body   []string
		start  int
		open   bool
	)
	for i, raw := range strings.Split(content, "\n") {
		info, isFence := splitFence(raw)
		switch {
		case isFence && !open && fenceIsGo(info):
			open = true
			start = i + 2
			body = body[:0]
		case isFence && open && info == "":
			open = false
			blocks = append(blocks, fencedBlock{text: strings.Join(body, "\n"), line: start})
		case open:
			body = append(body, raw)
		}
	}
	return blocks
}

// splitFence reports whether line is a code fence (three or more backticks)
// and returns the info string after the backticks.
func splitFence(line string) (info string, ok bool) {
	trimmed := strings.TrimSpace(line)
	n := 0
	for n < len(trimmed) && trimmed[n] == '`' {
		n++
	}
	if n < 3 {
		return "", false
	}
	return trimmed[n:], true
}

func fenceIsGo(info string) bool {
	fields := strings.Fields(info)
	return len(fields) > 0 && fields[0] == "go"
}

// parseSources parses every non-test Go file in dir and hands each to visit.
func parseSources(t *testing.T, dir string, visit func(*ast.File)) {
	t.Helper()

	paths, err := filepath.Glob(filepath.Join(dir, "*.go"))
	require.NoError(t, err)
	fset := token.NewFileSet()
	for _, path := range paths {
		if strings.HasSuffix(path, "_test.go") {
			continue
		}
		file, err := goparser.ParseFile(fset, path, nil, 0)
		require.NoError(t, err, "parsing %s", path)
		visit(file)
	}
}

// exportedNames collects every exported top-level identifier in the package,
// methods included, because documentation writes qualified names like
// document.Resolve for them.
func exportedNames(t *testing.T, dir string) map[string]bool {
	t.Helper()

	names := make(map[string]bool)
	keep := func(ident *ast.Ident) {
		if ident.IsExported() {
			names[ident.Name] = true
		}
	}
	parseSources(t, dir, func(file *ast.File) {
		for _, decl := range file.Decls {
			switch d := decl.(type) {
			case *ast.FuncDecl:
				keep(d.Name)
			case *ast.GenDecl:
				for _, spec := range d.Specs {
					switch s := spec.(type) {
					case *ast.TypeSpec:
						keep(s.Name)
					case *ast.ValueSpec:
						for _, ident := range s.Names {
							keep(ident)
						}
					}
				}
			}
		}
	})
	return names
}

// optionConstructors returns the exported With* functions declared in dir.
// The receiver check keeps methods out; the Logger adapters carry a With
// method that is not an option constructor.
func optionConstructors(t *testing.T, dir string) []string {
	t.Helper()

	var funcs []string
	parseSources(t, dir, func(file *ast.File) {
		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Recv != nil || !fn.Name.IsExported() {
				continue
			}
			if strings.HasPrefix(fn.Name.Name, "With") {
				funcs = append(funcs, fn.Name.Name)
			}
		}
	})
	return funcs
}

// docOptionPattern matches backticked option mentions: `WithFoo(...)` or
// `WithFoo`. It uses With[a-zA-Z] rather than With[A-Z] so Without* variants
// match too. Triple-backtick code blocks produce no matches, so an option
// shown only inside a full example still needs a table or prose mention, or
// an entry in the test's skip list.
var docOptionPattern = regexp.MustCompile("`(With[a-zA-Z][a-zA-Z0-9]*)(?:\\(|`)")

func docOptionNames(t *testing.T, path string) map[string]bool {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err, "reading %s", path)
	found := make(map[string]bool)
	for _, m := range docOptionPattern.FindAllStringSubmatch(string(data), -1) {
		found[m[1]] = true
	}
	return found
}
