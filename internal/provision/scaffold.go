package provision

import (
	"fmt"
	"os"
	"path/filepath"

	"quack/internal/config"
	"quack/internal/logger"
)

// licenseText is the header written into the scaffolded LICENSE file.
const licenseText = "GNU GENERAL PUBLIC LICENSE\nVersion 3, 29 June 2007\n"

// Scaffolder writes the starter files for the new repository into dir.
type Scaffolder struct {
	cfg config.Scaffold
	dir string
}

// NewScaffolder builds a Scaffolder honoring the config toggles.
func NewScaffolder(cfg config.Scaffold, dir string) *Scaffolder {
	return &Scaffolder{cfg: cfg, dir: dir}
}

// Write creates README.md and LICENSE for the named repository.
// Existing files are overwritten; the scaffold targets a freshly-created repo.
func (s *Scaffolder) Write(name string) error {
	if s.cfg.Readme {
		readme := fmt.Sprintf("# %s\n", name)
		if err := os.WriteFile(filepath.Join(s.dir, "README.md"), []byte(readme), 0644); err != nil {
			return fmt.Errorf("failed to create README.md: %w", err)
		}
		logger.Debug("[DEBUG] Wrote README.md for %s\n", name)
	}
	if s.cfg.License {
		if err := os.WriteFile(filepath.Join(s.dir, "LICENSE"), []byte(licenseText), 0644); err != nil {
			return fmt.Errorf("failed to create LICENSE: %w", err)
		}
		logger.Debug("[DEBUG] Wrote LICENSE for %s\n", name)
	}
	return nil
}
