package config_test

import (
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/go-ports/filemarks/internal/config"
)

func TestDefault_HappyPath(t *testing.T) {
	c := qt.New(t)
	cfg := config.Default()
	c.Assert(cfg, qt.IsNotNil)
	c.Assert(cfg.Editor, qt.Equals, "")
	c.Assert(cfg.History.Enabled, qt.IsTrue)
	c.Assert(cfg.History.Limit, qt.Equals, 20)
}

func TestLoad_HappyPath(t *testing.T) {
	c := qt.New(t)

	c.Run("non-existent file returns defaults without error", func(c *qt.C) {
		cfg, err := config.Load("/nonexistent/config.yaml")
		c.Assert(err, qt.IsNil)
		c.Assert(cfg, qt.IsNotNil)
		c.Assert(cfg.History.Enabled, qt.IsTrue)
		c.Assert(cfg.History.Limit, qt.Equals, 20)
	})

	tests := []struct {
		name        string
		yaml        string
		wantEditor  string
		wantEnabled bool
		wantLimit   int
	}{
		{
			name:        "editor override",
			yaml:        "editor: nvim\n",
			wantEditor:  "nvim",
			wantEnabled: true,
			wantLimit:   20,
		},
		{
			name:        "history disabled",
			yaml:        "history:\n  enabled: false\n",
			wantEditor:  "",
			wantEnabled: false,
			wantLimit:   20,
		},
		{
			name:        "history limit override",
			yaml:        "history:\n  limit: 50\n",
			wantEditor:  "",
			wantEnabled: true,
			wantLimit:   50,
		},
		{
			name:        "zero limit retains default",
			yaml:        "history:\n  limit: 0\n",
			wantEditor:  "",
			wantEnabled: true,
			wantLimit:   20,
		},
		{
			name:        "full config",
			yaml:        "editor: code --wait\nhistory:\n  enabled: true\n  limit: 5\n",
			wantEditor:  "code --wait",
			wantEnabled: true,
			wantLimit:   5,
		},
	}

	for _, tt := range tests {
		c.Run(tt.name, func(c *qt.C) {
			tmp := t.TempDir()
			path := filepath.Join(tmp, "config.yaml")
			err := os.WriteFile(path, []byte(tt.yaml), 0o600)
			c.Assert(err, qt.IsNil)

			cfg, err := config.Load(path)
			c.Assert(err, qt.IsNil)
			c.Assert(cfg.Editor, qt.Equals, tt.wantEditor)
			c.Assert(cfg.History.Enabled, qt.Equals, tt.wantEnabled)
			c.Assert(cfg.History.Limit, qt.Equals, tt.wantLimit)
		})
	}
}

func TestLoad_PartialOverrideRetainsDefaults(t *testing.T) {
	c := qt.New(t)

	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.yaml")
	err := os.WriteFile(path, []byte("editor: hx\n"), 0o600)
	c.Assert(err, qt.IsNil)

	cfg, err := config.Load(path)
	c.Assert(err, qt.IsNil)
	// Overridden field.
	c.Assert(cfg.Editor, qt.Equals, "hx")
	// Defaults retained for unspecified fields.
	c.Assert(cfg.History.Enabled, qt.IsTrue)
	c.Assert(cfg.History.Limit, qt.Equals, 20)
}

func TestResolveMarksHome_EnvOverride(t *testing.T) {
	c := qt.New(t)

	tmp := t.TempDir()
	t.Setenv("MARKS_HOME", tmp)

	path, source := config.ResolveMarksHome()
	c.Assert(source, qt.Equals, "env")
	c.Assert(path, qt.Equals, tmp)
}

func TestResolveMarksHome_DefaultFallback(t *testing.T) {
	c := qt.New(t)

	home := t.TempDir()
	t.Setenv("MARKS_HOME", "")
	t.Setenv("HOME", home)

	path, source := config.ResolveMarksHome()
	c.Assert(source, qt.Equals, "default")
	c.Assert(path, qt.Equals, filepath.Join(home, ".filemarks"))
}

func TestSetPersistedMarksHome_RoundTrip(t *testing.T) {
	c := qt.New(t)

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("MARKS_HOME", "")

	target := filepath.Join(home, "elsewhere")
	resolved, err := config.SetPersistedMarksHome(target)
	c.Assert(err, qt.IsNil)
	c.Assert(resolved, qt.Equals, target)

	got, ok, err := config.GetPersistedMarksHome()
	c.Assert(err, qt.IsNil)
	c.Assert(ok, qt.IsTrue)
	c.Assert(got, qt.Equals, target)

	path, source := config.ResolveMarksHome()
	c.Assert(source, qt.Equals, "config")
	c.Assert(path, qt.Equals, target)

	changed, err := config.ClearPersistedMarksHome()
	c.Assert(err, qt.IsNil)
	c.Assert(changed, qt.IsTrue)

	_, ok, err = config.GetPersistedMarksHome()
	c.Assert(err, qt.IsNil)
	c.Assert(ok, qt.IsFalse)
}
