// Package app wires navigation and actions together for one run of the tool.
package app

import (
	"io"
	"log"

	"reader/internal/action"
	"reader/internal/model"
	"reader/internal/nav"
	"reader/internal/prompt"
	"reader/internal/search"
)

// Config holds everything a run needs from the process environment.
type Config struct {
	Path    string      // Start path from the command line, may be empty
	WorkDir string      // Working directory used when Path is empty or relative
	Mode    search.Mode // How Find matches queries
	Theme   model.Theme
}

// StartPath returns the path navigation begins at.
func (c Config) StartPath() string {
	return model.ExpandPath(c.Path, c.WorkDir)
}

// Run navigates to a file starting at cfg.StartPath and performs the action
// the user picks, writing results to out.
func Run(cfg Config, p prompt.Prompter, out io.Writer) error {
	start := cfg.StartPath()
	log.Printf("app: starting at %s (mode %s)", start, cfg.Mode)

	filePath, err := nav.NewNavigator(p, cfg.Theme).Resolve(start)
	if err != nil {
		return err
	}

	ctrl := &action.Controller{
		Prompter: p,
		Out:      out,
		Theme:    cfg.Theme,
		Mode:     cfg.Mode,
	}
	return ctrl.Run(filePath)
}
