package config

// GitHub holds settings for the GitHub CLI integration.
// - Host: the GitHub host authenticated against (e.g., github.com).
// - GitProtocol: protocol pinned for git operations after login ("https" or "ssh").
// - CLIVersion: release version used when the installer has to download `gh` itself.
type GitHub struct {
	Host        string `yaml:"host"`
	GitProtocol string `yaml:"git_protocol"`
	CLIVersion  string `yaml:"cli_version"`
}

// Defaults holds the answers applied when the operator accepts a prompt's default.
// - Visibility: repository visibility used on empty input ("public" or "private").
// - Remote: name of the remote bound to the created repository.
type Defaults struct {
	Visibility string `yaml:"visibility"`
	Remote     string `yaml:"remote"`
}

// Scaffold controls which starter files are written after provisioning.
type Scaffold struct {
	Readme  bool `yaml:"readme"`
	License bool `yaml:"license"`
}

// Config is the top-level structure loaded from quack.yaml.
// Every field is optional; zero values are replaced by the built-in defaults
// so the tool works on a fresh machine with no configuration at all.
type Config struct {
	GitHub   GitHub   `yaml:"github"`
	Defaults Defaults `yaml:"defaults"`
	Scaffold Scaffold `yaml:"scaffold"`
}
