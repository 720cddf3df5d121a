package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/mwhitfield/sleuth/internal/config"
	"github.com/mwhitfield/sleuth/internal/finder"
	"github.com/mwhitfield/sleuth/internal/prefs"
	"github.com/mwhitfield/sleuth/internal/session"
	"github.com/mwhitfield/sleuth/internal/ui"
)

// Options configure the sleuth application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/sleuth/prefs.toml
	APIBase    string // overrides the configured api_base when set
}

// Run boots the sleuth TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	apiBase := cfg.APIBase
	if opts.APIBase != "" {
		apiBase = opts.APIBase
	}

	// The TUI owns the terminal, so diagnostics (catalog load failures,
	// health probe errors) go to a log file instead of the screen.
	if closeLog, err := redirectLog(cfg.LogPath()); err == nil {
		defer closeLog()
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := finder.NewClient(apiBase)
	if err != nil {
		return fmt.Errorf("init finder client: %w", err)
	}

	uiOpts := ui.Options{
		Context:   ctx,
		Client:    client,
		Session:   &session.Store{},
		Filters:   session.NewFilterSet(),
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

// redirectLog points the standard logger at the sleuth log file.
func redirectLog(path string) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(file)
	return func() { _ = file.Close() }, nil
}
