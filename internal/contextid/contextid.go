// Package contextid derives the storage context for a working directory.
package contextid

import (
	"os/exec"
	"strings"
)

// Global is the fallback context used outside any version-controlled project.
const Global = "global"

// gitRoot asks git for the project root containing dir.
// Swapped in tests.
var gitRoot = func(dir string) (string, error) {
	out, err := exec.Command("git", "-C", dir, "rev-parse", "--show-toplevel").Output()
	return strings.TrimSpace(string(out)), err
}

// Resolve returns the context ID for dir: the project root path with
// separators flattened, or Global when dir is not inside a project.
// Lookup failure is a normal fallback path, never an error.
func Resolve(dir string) string {
	root, err := gitRoot(dir)
	if err != nil || root == "" {
		return Global
	}
	return FromRoot(root)
}

// FromRoot flattens a project root path into a single path component by
// substituting every path separator with '_'.
func FromRoot(root string) string {
	return strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' {
			return '_'
		}
		return r
	}, root)
}
