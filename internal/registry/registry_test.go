package registry_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/go-ports/filemarks/internal/registry"
)

func TestValidKey_HappyPath(t *testing.T) {
	c := qt.New(t)

	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"lowercase letter", "a", true},
		{"digit", "0", true},
		{"last letter", "z", true},
		{"uppercase", "A", false},
		{"empty", "", false},
		{"two characters", "ab", false},
		{"punctuation", "!", false},
		{"whitespace", " ", false},
		{"unicode letter", "é", false},
	}

	for _, tc := range cases {
		c.Run(tc.name, func(c *qt.C) {
			c.Assert(registry.ValidKey(tc.in), qt.Equals, tc.want)
		})
	}
}

func TestAdd_OverwritesPriorValue(t *testing.T) {
	c := qt.New(t)

	reg := registry.Registry{}
	reg.Add("a", "/p1")
	reg.Add("a", "/p2")

	c.Assert(reg, qt.DeepEquals, registry.Registry{"a": "/p2"})
}

func TestTarget_HappyPath(t *testing.T) {
	c := qt.New(t)

	reg := registry.Registry{"a": "/some/file.txt"}

	path, ok := reg.Target("a")
	c.Assert(ok, qt.IsTrue)
	c.Assert(path, qt.Equals, "/some/file.txt")

	_, ok = reg.Target("z")
	c.Assert(ok, qt.IsFalse)
}

func TestSortedKeys_ByteValueOrder(t *testing.T) {
	c := qt.New(t)

	reg := registry.Registry{"b": "/b", "a": "/a", "0": "/0"}
	c.Assert(reg.SortedKeys(), qt.DeepEquals, []string{"0", "a", "b"})
}

func TestSortedKeys_Empty(t *testing.T) {
	c := qt.New(t)

	c.Assert(registry.Registry{}.SortedKeys(), qt.HasLen, 0)
}
