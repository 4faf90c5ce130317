// Package menu renders a registry as editable text lines and turns edited
// lines back into validated key/path pairs. It has no knowledge of the
// editing surface itself; callers feed it ordered lines and get per-line
// validity back.
package menu

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-ports/filemarks/internal/registry"
)

// InvalidMarker is appended to rejected lines before the surface is
// re-presented for correction. It is stripped again before re-parsing.
const InvalidMarker = "  <-- invalid"

// Render produces one "[<key>] = <path>" line per slot, keys in byte order.
func Render(reg registry.Registry) []string {
	keys := reg.SortedKeys()
	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("[%s] = %s", k, reg[k]))
	}
	return lines
}

// ParseLine splits an edited line into its key and trimmed path.
// The key is the text between a '[' at the start of the line (leading
// whitespace aside) and the following ']'; the path is everything after
// the first '='. No shape validation happens here: a malformed segment
// comes back empty and fails validation.
func ParseLine(line string) (key, path string) {
	rest := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(rest, "[") {
		if end := strings.Index(rest, "]"); end >= 0 {
			key = rest[1:end]
		}
	}
	if eq := strings.Index(line, "="); eq >= 0 {
		path = strings.TrimSpace(line[eq+1:])
	}
	return key, path
}

// ExpandPath expands a leading ~ and resolves the result to an absolute path.
func ExpandPath(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// Result reports validation of an edited menu buffer.
type Result struct {
	AllValid    bool
	FailedLines []int // 1-indexed, in encounter order
}

// Validate checks every line independently. A line is valid only when its
// key is a single lowercase alphanumeric character and its expanded path
// points at an existing, readable regular file.
func Validate(lines []string) Result {
	res := Result{AllValid: true}
	for i, line := range lines {
		key, path := ParseLine(line)
		if validLine(key, path) {
			continue
		}
		res.AllValid = false
		res.FailedLines = append(res.FailedLines, i+1)
	}
	return res
}

func validLine(key, path string) bool {
	if !registry.ValidKey(key) {
		return false
	}
	// Open rather than stat: a mode-000 file exists but cannot be read,
	// and a committed bookmark must be openable later.
	f, err := os.Open(ExpandPath(path))
	if err != nil {
		return false
	}
	defer f.Close()
	info, err := f.Stat()
	return err == nil && info.Mode().IsRegular()
}

// Annotate returns a copy of lines with InvalidMarker appended to each
// line whose 1-indexed number appears in failed.
func Annotate(lines []string, failed []int) []string {
	bad := make(map[int]bool, len(failed))
	for _, n := range failed {
		bad[n] = true
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		if bad[i+1] {
			line += InvalidMarker
		}
		out[i] = line
	}
	return out
}

// StripMarkers removes any trailing InvalidMarker annotations so a
// corrected buffer parses cleanly on resubmit.
func StripMarkers(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.TrimSuffix(line, InvalidMarker)
	}
	return out
}
