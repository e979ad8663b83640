package console

import (
	"os"
	"path/filepath"
	"runtime"
)

// Env abstracts the process environment and host platform, so stages that
// branch on operating system or mutate environment variables stay testable.
type Env interface {
	// Get returns the value of an environment variable ("" when unset).
	Get(key string) string

	// Unset removes an environment variable from the process environment.
	Unset(key string) error

	// OS returns the host operating system identifier (GOOS values).
	OS() string

	// DownloadsDir returns the user's download directory, used as the
	// well-known drop location for manually-installed artifacts.
	DownloadsDir() (string, error)
}

// SystemEnv is the Env used in production, backed by the real process
// environment and runtime platform.
type SystemEnv struct{}

func (SystemEnv) Get(key string) string { return os.Getenv(key) }

func (SystemEnv) Unset(key string) error { return os.Unsetenv(key) }

func (SystemEnv) OS() string { return runtime.GOOS }

func (SystemEnv) DownloadsDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "Downloads"), nil
}
