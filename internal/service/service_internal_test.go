package service

// White-box testing required: the single write per reconcile is a guarantee
// about store traffic, not about observable end state, so the test swaps the
// unexported store field for a counting wrapper.

import (
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/go-ports/filemarks/internal/registry"
)

type countingStore struct {
	ContextStore
	saves int
}

func (cs *countingStore) Save(reg registry.Registry, contextID string) error {
	cs.saves++
	return cs.ContextStore.Save(reg, contextID)
}

func newCountedService(c *qt.C) (*Service, *countingStore) {
	c.Helper()
	svc, err := New(c.TempDir())
	c.Assert(err, qt.IsNil)
	c.Cleanup(func() { _ = svc.Close() })
	svc.Resolver = func(string) string { return "global" }

	cs := &countingStore{ContextStore: svc.marks}
	svc.marks = cs
	return svc, cs
}

func TestReconcile_CommitSavesExactlyOnce(t *testing.T) {
	c := qt.New(t)

	svc, cs := newCountedService(c)
	dir := t.TempDir()
	var lines []string
	for _, name := range []string{"x.txt", "y.txt", "z.txt"} {
		path := filepath.Join(dir, name)
		c.Assert(os.WriteFile(path, []byte("x"), 0o600), qt.IsNil)
		lines = append(lines, "["+name[:1]+"] = "+path)
	}

	result, err := svc.Reconcile(".", lines)
	c.Assert(err, qt.IsNil)
	c.Assert(result.Committed, qt.IsTrue)
	c.Assert(result.Count, qt.Equals, 3)
	// One write for the whole buffer, not one per line.
	c.Assert(cs.saves, qt.Equals, 1)
}

func TestReconcile_RejectionSavesNothing(t *testing.T) {
	c := qt.New(t)

	svc, cs := newCountedService(c)
	dir := t.TempDir()
	real := filepath.Join(dir, "real.txt")
	c.Assert(os.WriteFile(real, []byte("x"), 0o600), qt.IsNil)

	result, err := svc.Reconcile(".", []string{
		"[a] = " + real,
		"[!] = " + real,
	})
	c.Assert(err, qt.IsNil)
	c.Assert(result.Committed, qt.IsFalse)
	c.Assert(cs.saves, qt.Equals, 0)
}
