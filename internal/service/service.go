// Package service implements the marks orchestrator that wires together
// configuration, context resolution, storage, and jump history.
package service

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/go-ports/filemarks/internal/config"
	"github.com/go-ports/filemarks/internal/contextid"
	"github.com/go-ports/filemarks/internal/history"
	"github.com/go-ports/filemarks/internal/menu"
	"github.com/go-ports/filemarks/internal/registry"
	"github.com/go-ports/filemarks/internal/store"
)

// ContextStore is the slice of store behaviour the service depends on.
// *store.Store implements it; tests wrap it to observe write traffic.
type ContextStore interface {
	PathFor(contextID string) string
	Dir() string
	Load(contextID string) (registry.Registry, error)
	Save(reg registry.Registry, contextID string) error
}

// Service orchestrates all marks operations. The registry is reloaded from
// the store at the start of every operation so concurrent sessions always
// see the freshest on-disk state.
type Service struct {
	MarksHome string
	Config    *config.MarksConfig

	// Resolver maps a working directory to a context ID.
	// Defaults to contextid.Resolve; tests substitute a fixed resolver.
	Resolver func(dir string) string

	marks ContextStore
	hist  *history.DB
	mu    sync.Mutex
}

// New initialises a Service rooted at marksHome.
// If marksHome is empty it is resolved via config.GetMarksHome.
func New(marksHome string) (*Service, error) {
	if marksHome == "" {
		marksHome = config.GetMarksHome()
	}

	marks, err := store.New(filepath.Join(marksHome, "contexts"))
	if err != nil {
		return nil, fmt.Errorf("service.New: %w", err)
	}

	cfg, err := config.Load(filepath.Join(marksHome, "config.yaml"))
	if err != nil {
		return nil, fmt.Errorf("service.New: load config: %w", err)
	}

	return &Service{
		MarksHome: marksHome,
		Config:    cfg,
		Resolver:  contextid.Resolve,
		marks:     marks,
	}, nil
}

// Close releases all resources held by the service.
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hist == nil {
		return nil
	}
	err := s.hist.Close()
	s.hist = nil
	return err
}

// Store exposes the per-context store the service operates on.
func (s *Service) Store() ContextStore { return s.marks }

// historyDB returns the history database, lazily opening it (thread-safe).
func (s *Service) historyDB() (*history.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hist != nil {
		return s.hist, nil
	}
	d, err := history.Open(filepath.Join(s.MarksHome, "history.db"))
	if err != nil {
		return nil, err
	}
	s.hist = d
	return d, nil
}

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Set records path under key for the context of dir, overwriting any prior
// value. Key shape and target existence are the caller's responsibility;
// the direct-set path trusts its caller (see the `set` command and MCP tool).
func (s *Service) Set(dir, key, path string) error {
	ctxID := s.Resolver(dir)
	reg, err := s.marks.Load(ctxID)
	if err != nil {
		return fmt.Errorf("Set: %w", err)
	}
	reg.Add(key, path)
	if err := s.marks.Save(reg, ctxID); err != nil {
		return fmt.Errorf("Set: %w", err)
	}
	return nil
}

// Jump returns the path stored under key for the context of dir.
// An unset key yields ok=false and no error. Successful jumps are logged
// to history; logging failures are non-fatal.
func (s *Service) Jump(dir, key string) (path string, ok bool, err error) {
	ctxID := s.Resolver(dir)
	reg, err := s.marks.Load(ctxID)
	if err != nil {
		return "", false, fmt.Errorf("Jump: %w", err)
	}
	path, ok = reg.Target(key)
	if !ok {
		return "", false, nil
	}
	s.recordJump(ctxID, key, path)
	return path, true, nil
}

// Remove deletes key from the context of dir.
// Returns false when the key was not set.
func (s *Service) Remove(dir, key string) (bool, error) {
	ctxID := s.Resolver(dir)
	reg, err := s.marks.Load(ctxID)
	if err != nil {
		return false, fmt.Errorf("Remove: %w", err)
	}
	if _, ok := reg.Target(key); !ok {
		return false, nil
	}
	delete(reg, key)
	if err := s.marks.Save(reg, ctxID); err != nil {
		return false, fmt.Errorf("Remove: %w", err)
	}
	return true, nil
}

// Registry returns the current mapping for the context of dir.
func (s *Service) Registry(dir string) (registry.Registry, error) {
	reg, err := s.marks.Load(s.Resolver(dir))
	if err != nil {
		return nil, fmt.Errorf("Registry: %w", err)
	}
	return reg, nil
}

// Lines renders the registry for dir as sorted, formatted menu lines.
func (s *Service) Lines(dir string) ([]string, error) {
	reg, err := s.Registry(dir)
	if err != nil {
		return nil, err
	}
	return menu.Render(reg), nil
}

// ReconcileResult reports the outcome of a menu submit.
type ReconcileResult struct {
	Committed   bool
	Count       int   // entries in the committed registry
	FailedLines []int // 1-indexed rejected lines, empty when committed
}

// Reconcile validates the edited lines and, when every line passes,
// replaces the stored registry wholesale. Later duplicate keys overwrite
// earlier ones, so the last line wins. The new registry is saved once,
// after it is fully built. On any validation failure neither the registry
// nor the store is touched.
func (s *Service) Reconcile(dir string, lines []string) (*ReconcileResult, error) {
	res := menu.Validate(lines)
	if !res.AllValid {
		return &ReconcileResult{FailedLines: res.FailedLines}, nil
	}

	reg := registry.Registry{}
	for _, line := range lines {
		key, path := menu.ParseLine(line)
		reg.Add(key, path)
	}

	ctxID := s.Resolver(dir)
	if err := s.marks.Save(reg, ctxID); err != nil {
		return nil, fmt.Errorf("Reconcile: %w", err)
	}
	return &ReconcileResult{Committed: true, Count: len(reg)}, nil
}

// Contexts returns the IDs of all contexts that have a stored registry,
// sorted alphabetically.
func (s *Service) Contexts() ([]string, error) {
	entries, err := os.ReadDir(s.marks.Dir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("Contexts: %w", err)
	}

	var ids []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		ids = append(ids, e.Name())
	}
	sort.Strings(ids)
	return ids, nil
}

// Recent returns the newest jump history entries. When all is false the
// result is filtered to the context of dir.
func (s *Service) Recent(dir string, limit int, all bool) ([]history.Entry, error) {
	d, err := s.historyDB()
	if err != nil {
		return nil, fmt.Errorf("Recent: %w", err)
	}
	ctxID := ""
	if !all {
		ctxID = s.Resolver(dir)
	}
	return d.Recent(limit, ctxID)
}

// recordJump appends a jump to the history log. All errors are logged as
// warnings and do not block the caller.
func (s *Service) recordJump(ctxID, key, path string) {
	if !s.Config.History.Enabled {
		return
	}
	d, err := s.historyDB()
	if err != nil {
		slog.Warn("recordJump: history unavailable", "err", err)
		return
	}
	if err := d.Record(ctxID, key, path); err != nil {
		slog.Warn("recordJump: record", "err", err)
		return
	}
	if err := d.Prune(s.Config.History.Limit); err != nil {
		slog.Warn("recordJump: prune", "err", err)
	}
}
