package provision

import "errors"

// Sentinel errors for the failure modes callers branch on. Everything else is
// wrapped context around external command failures.
var (
	// ErrInstallDeclined is returned when the operator refuses the GitHub CLI install.
	ErrInstallDeclined = errors.New("user opted not to install the GitHub CLI")

	// ErrUnsupportedOS is returned when no installer strategy exists for the host platform.
	ErrUnsupportedOS = errors.New("unsupported operating system")

	// ErrURLNotFound is returned when repository creation output contains no
	// recognizable repository URL. Creation may have nominally succeeded, but
	// without a URL the rest of the workflow cannot proceed, so this is fatal.
	ErrURLNotFound = errors.New("could not capture GitHub URL")
)
