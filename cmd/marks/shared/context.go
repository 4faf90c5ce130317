// Package shared holds the context passed to all CLI commands.
package shared

import "os"

// Context carries global CLI state (flags set on the root command).
type Context struct {
	// MarksHome overrides the marks home directory.
	// When empty, resolution falls through to MARKS_HOME env var → persisted config → ~/.filemarks.
	MarksHome string

	// WorkDir overrides the directory the storage context is resolved from.
	// When empty, the process working directory is used.
	WorkDir string
}

// Dir returns the directory the storage context should be resolved from.
func (c *Context) Dir() string {
	if c.WorkDir != "" {
		return c.WorkDir
	}
	if cwd, err := os.Getwd(); err == nil {
		return cwd
	}
	return "."
}
