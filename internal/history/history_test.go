package history_test

import (
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/go-ports/filemarks/internal/history"
)

func openDB(c *qt.C, dir string) *history.DB {
	c.Helper()
	d, err := history.Open(filepath.Join(dir, "history.db"))
	c.Assert(err, qt.IsNil)
	c.Cleanup(func() { _ = d.Close() })
	return d
}

func TestOpen_HappyPath(t *testing.T) {
	c := qt.New(t)

	d := openDB(c, t.TempDir())
	c.Assert(d, qt.IsNotNil)
}

func TestRecordRecent_NewestFirst(t *testing.T) {
	c := qt.New(t)

	d := openDB(c, t.TempDir())
	c.Assert(d.Record("global", "a", "/one.txt"), qt.IsNil)
	c.Assert(d.Record("global", "b", "/two.txt"), qt.IsNil)
	c.Assert(d.Record("global", "a", "/three.txt"), qt.IsNil)

	entries, err := d.Recent(10, "")
	c.Assert(err, qt.IsNil)
	c.Assert(entries, qt.HasLen, 3)
	c.Assert(entries[0].Path, qt.Equals, "/three.txt")
	c.Assert(entries[1].Path, qt.Equals, "/two.txt")
	c.Assert(entries[2].Path, qt.Equals, "/one.txt")
	c.Assert(entries[0].Key, qt.Equals, "a")
	c.Assert(entries[0].Context, qt.Equals, "global")
	c.Assert(entries[0].JumpedAt, qt.Not(qt.Equals), "")
}

func TestRecent_FilterByContext(t *testing.T) {
	c := qt.New(t)

	d := openDB(c, t.TempDir())
	c.Assert(d.Record("global", "a", "/one.txt"), qt.IsNil)
	c.Assert(d.Record("_home_dev_proj", "a", "/two.txt"), qt.IsNil)

	entries, err := d.Recent(10, "_home_dev_proj")
	c.Assert(err, qt.IsNil)
	c.Assert(entries, qt.HasLen, 1)
	c.Assert(entries[0].Path, qt.Equals, "/two.txt")
}

func TestRecent_LimitApplied(t *testing.T) {
	c := qt.New(t)

	d := openDB(c, t.TempDir())
	for i := 0; i < 5; i++ {
		c.Assert(d.Record("global", "a", "/f.txt"), qt.IsNil)
	}

	entries, err := d.Recent(2, "")
	c.Assert(err, qt.IsNil)
	c.Assert(entries, qt.HasLen, 2)
}

func TestPrune_KeepsNewest(t *testing.T) {
	c := qt.New(t)

	d := openDB(c, t.TempDir())
	c.Assert(d.Record("global", "a", "/one.txt"), qt.IsNil)
	c.Assert(d.Record("global", "b", "/two.txt"), qt.IsNil)
	c.Assert(d.Record("global", "c", "/three.txt"), qt.IsNil)

	c.Assert(d.Prune(2), qt.IsNil)

	entries, err := d.Recent(10, "")
	c.Assert(err, qt.IsNil)
	c.Assert(entries, qt.HasLen, 2)
	c.Assert(entries[0].Path, qt.Equals, "/three.txt")
	c.Assert(entries[1].Path, qt.Equals, "/two.txt")
}
