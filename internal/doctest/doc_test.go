package doctest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestOptionTablesComplete verifies both directions between a package's
// With* constructors and its deep_dive.md: every source option shows up in
// the doc, and every documented option exists in source.
func TestOptionTablesComplete(t *testing.T) {
	root := repoRoot(t)

	// Options deliberately left out of a deep dive, per package.
	undocumented := map[string]map[string]bool{
		// WithLogger is an internal debugging option, not part of the public API docs.
		"document": {"WithLogger": true},
	}
	// Documented names with no matching constructor, per package.
	docOnly := map[string]map[string]bool{}

	for _, pkg := range []string{"document", "walker"} {
		t.Run(pkg, func(t *testing.T) {
			dir := filepath.Join(root, pkg)
			inSource := optionConstructors(t, dir)
			if len(inSource) == 0 {
				t.Skipf("package %s declares no With* constructors", pkg)
			}
			inDoc := docOptionNames(t, filepath.Join(dir, "deep_dive.md"))

			sourceSet := make(map[string]bool, len(inSource))
			for _, fn := range inSource {
				sourceSet[fn] = true
			}

			for _, fn := range inSource {
				if undocumented[pkg][fn] {
					continue
				}
				assert.True(t, inDoc[fn], "%s.%s exists but deep_dive.md never mentions it", pkg, fn)
			}
			for fn := range inDoc {
				if docOnly[pkg][fn] {
					continue
				}
				assert.True(t, sourceSet[fn], "deep_dive.md mentions %s.%s but no such constructor exists", pkg, fn)
			}

			// Both skip lists must stay current.
			for fn := range undocumented[pkg] {
				assert.True(t, sourceSet[fn], "undocumented lists %s.%s but source has no such function; drop the entry", pkg, fn)
			}
			for fn := range docOnly[pkg] {
				assert.True(t, inDoc[fn], "docOnly lists %s.%s but deep_dive.md has no such mention; drop the entry", pkg, fn)
			}
		})
	}
}
