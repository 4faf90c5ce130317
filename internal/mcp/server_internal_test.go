package mcp

// White-box testing required: toolDir and dropBlank are unexported helpers
// that normalise incoming tool arguments. They are not reachable through
// the public NewServer API, so direct access is required to cover their
// edge cases.

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/go-ports/filemarks/internal/service"
)

func TestNewServer_HappyPath(t *testing.T) {
	c := qt.New(t)

	svc, err := service.New(t.TempDir())
	c.Assert(err, qt.IsNil)
	defer svc.Close()

	c.Assert(NewServer(svc), qt.IsNotNil)
}

func TestToolDir_ExplicitDir(t *testing.T) {
	c := qt.New(t)

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{"dir": "/some/project"}
	c.Assert(toolDir(req), qt.Equals, "/some/project")
}

func TestToolDir_DefaultsToCwd(t *testing.T) {
	c := qt.New(t)

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{}
	c.Assert(toolDir(req), qt.Not(qt.Equals), "")
}

func TestDropBlank_HappyPath(t *testing.T) {
	c := qt.New(t)

	cases := []struct {
		name string
		in   []string
		want []string
	}{
		{"no blanks", []string{"[a] = /x"}, []string{"[a] = /x"}},
		{"empty line removed", []string{"[a] = /x", "", "[b] = /y"}, []string{"[a] = /x", "[b] = /y"}},
		{"whitespace-only removed", []string{"   ", "\t"}, []string{}},
		{"empty input", []string{}, []string{}},
	}

	for _, tc := range cases {
		c.Run(tc.name, func(c *qt.C) {
			c.Assert(dropBlank(tc.in), qt.DeepEquals, tc.want)
		})
	}
}
