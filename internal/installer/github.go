package installer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path"
	"runtime"
	"strings"

	"quack/internal/logger"
)

// GitHubRelease represents the structure of a GitHub release JSON response.
type GitHubRelease struct {
	TagName string `json:"tag_name"` // The release tag (e.g., v2.76.0)
	Assets  []struct {
		Name               string `json:"name"`                 // Asset filename
		BrowserDownloadURL string `json:"browser_download_url"` // Direct download URL for the asset
	} `json:"assets"`
}

// releaseStrategy installs gh on Linux by downloading the official release
// archive for the host architecture, extracting it, and placing the binary
// into a bin directory. No distro package manager is assumed.
type releaseStrategy struct {
	version string
	arch    string
}

func (*releaseStrategy) Name() string { return "github-release" }

func (s *releaseStrategy) Install() error {
	installed, err := downloadFromRelease("cli/cli", "v"+s.version, "gh", "linux", s.arch)
	if err != nil {
		return fmt.Errorf("failed to install GitHub CLI from release archive: %w", err)
	}
	logger.Info("[INFO] Installed GitHub CLI to %s\n", installed)
	return nil
}

// hostArch returns the architecture token used in release asset names.
func hostArch() string {
	return strings.ToLower(runtime.GOARCH)
}

// archiveSuffixes are the asset formats the extractor can open.
var archiveSuffixes = []string{".tar.gz", ".tgz", ".tar.bz2", ".tar.xz", ".zip", ".7z"}

// selectAsset picks the first archive asset matching the OS/arch tokens.
// Asset names vary in how they join the tokens, so both separators are tried.
func selectAsset(release GitHubRelease, osys, arch string) (assetURL, assetName string) {
	preferredPatterns := []string{
		osys + "_" + arch, osys + "-" + arch,
	}

	for _, pattern := range preferredPatterns {
		for _, asset := range release.Assets {
			nameLower := strings.ToLower(asset.Name)
			if !strings.Contains(nameLower, pattern) {
				continue
			}
			for _, suffix := range archiveSuffixes {
				if strings.HasSuffix(nameLower, suffix) {
					logger.Debug("[DEBUG] Found matching asset: %s\n", asset.Name)
					return asset.BrowserDownloadURL, asset.Name
				}
			}
		}
	}
	return "", ""
}

// downloadFromRelease downloads one tool from a GitHub release.
// It locates the archive asset matching the OS/arch, downloads it, extracts it,
// finds the tool's executable, installs it, and returns the installed path.
func downloadFromRelease(repo, tag, toolName, osys, arch string) (string, error) {
	// Build GitHub API URL to fetch the release metadata
	url := fmt.Sprintf("https://api.github.com/repos/%s/releases/tags/%s", repo, tag)
	logger.Debug("[DEBUG] Fetching GitHub release from URL: %s\n", url)

	// Make HTTP request to GitHub API
	resp, err := http.Get(url)
	if err != nil {
		return "", fmt.Errorf("HTTP GET error fetching release %s of %s: %w", tag, repo, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close HTTP response body: %v\n", cerr)
		}
	}()

	// Handle non-200 responses
	if resp.StatusCode != 200 {
		return "", fmt.Errorf("GitHub release fetch failed for %s@%s: HTTP status %d", repo, tag, resp.StatusCode)
	}

	// Parse the JSON response into the GitHubRelease struct
	var release GitHubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", fmt.Errorf("failed to decode GitHub release JSON for %s@%s: %w", repo, tag, err)
	}
	logger.Debug("[DEBUG] Release tag: %s with %d assets\n", release.TagName, len(release.Assets))

	// Search for an archive asset that matches the host platform
	assetURL, assetName := selectAsset(release, osys, arch)

	// Fail if no matching asset was found
	if assetURL == "" {
		return "", fmt.Errorf("no matching asset found for OS=%s ARCH=%s in release %s", osys, arch, release.TagName)
	}

	// Download the asset to a temporary location
	archivePath := path.Join(os.TempDir(), path.Base(assetURL))
	logger.Info("[INFO] Downloading asset %s to %s\n", assetName, archivePath)
	if err := downloadFile(assetURL, archivePath); err != nil {
		return "", fmt.Errorf("failed to download asset %s: %w", assetName, err)
	}

	// Extract the downloaded archive and install the tool's binary
	installed, err := ExtractAndInstall(archivePath, os.TempDir(), toolName)
	if err != nil {
		return "", fmt.Errorf("failed to extract archive: %w", err)
	}

	logger.Debug("[DEBUG] Extracted and installed asset to %s\n", installed)
	return installed, nil
}
