package config

import (
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
)

// defaultModelLabel is shown when no model is configured. It is
// deliberately untranslated: it names an operator-side state, not a UI
// label.
const defaultModelLabel = "Not configured"

const defaultWorkspace = "./workspace"

// Settings is the subset of the agent's TOML configuration the UI
// surfaces on the settings panel.
type Settings struct {
	Model     string
	Workspace string
}

type settingsFile struct {
	LLM       map[string]llmSettings `toml:"llm"`
	Workspace workspaceSettings      `toml:"workspace"`
}

type llmSettings struct {
	Model string `toml:"model"`
}

type workspaceSettings struct {
	Root string `toml:"root"`
}

// SettingsSource reads Settings from a TOML file, re-reading when the
// file's mtime changes. Lookups are live: edits to the file show up on
// the next panel render without a restart.
type SettingsSource struct {
	path   string
	logger *slog.Logger

	mu     sync.Mutex
	mtime  time.Time
	cached Settings
	loaded bool
}

// NewSettingsSource builds a source for path. The file may not exist;
// Current then falls back to defaults.
func NewSettingsSource(path string, logger *slog.Logger) *SettingsSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &SettingsSource{path: path, logger: logger}
}

// Current returns the settings as of now.
func (s *SettingsSource) Current() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	info, err := os.Stat(s.path)
	if err != nil {
		if s.loaded {
			// File disappeared; stop serving stale values.
			s.logger.Warn("Settings file no longer readable", "path", s.path, "error", err)
			s.loaded = false
		}
		s.cached = defaultSettings()
		return s.cached
	}

	if s.loaded && info.ModTime().Equal(s.mtime) {
		return s.cached
	}

	var file settingsFile
	if _, err := toml.DecodeFile(s.path, &file); err != nil {
		s.logger.Warn("Failed to parse settings file", "path", s.path, "error", err)
		if !s.loaded {
			s.cached = defaultSettings()
		}
		return s.cached
	}

	s.cached = defaultSettings()
	if llm, ok := file.LLM["default"]; ok && llm.Model != "" {
		s.cached.Model = llm.Model
	}
	if file.Workspace.Root != "" {
		s.cached.Workspace = file.Workspace.Root
	}
	s.mtime = info.ModTime()
	s.loaded = true
	s.logger.Info("Settings loaded", "path", s.path, "model", s.cached.Model)
	return s.cached
}

func defaultSettings() Settings {
	return Settings{Model: defaultModelLabel, Workspace: defaultWorkspace}
}
