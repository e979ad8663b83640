package installer

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeTarGz builds a small release-style archive: a top-level folder holding
// a bin/ directory with an executable.
func writeTarGz(t *testing.T, path string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	gw := gzip.NewWriter(f)
	tw := tar.NewWriter(gw)

	entries := []struct {
		name string
		mode int64
		body string
	}{
		{"gh_2.76.0_linux_amd64/LICENSE", 0644, "license text"},
		{"gh_2.76.0_linux_amd64/bin/gh", 0755, "#!/bin/sh\necho gh\n"},
	}
	for _, e := range entries {
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name:     e.name,
			Mode:     e.mode,
			Size:     int64(len(e.body)),
			Typeflag: tar.TypeReg,
		}))
		_, err := tw.Write([]byte(e.body))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
}

func writeZip(t *testing.T, path string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	hdr := &zip.FileHeader{Name: "gh_2.76.0_windows_amd64/bin/gh.exe"}
	hdr.SetMode(0755)
	w, err := zw.CreateHeader(hdr)
	require.NoError(t, err)
	_, err = w.Write([]byte("MZ fake binary"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
}

func TestExtractTarGzReturnsTopLevelDir(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "gh_2.76.0_linux_amd64.tar.gz")
	writeTarGz(t, archive)

	extracted, err := ExtractArchive(archive, dir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "gh_2.76.0_linux_amd64"), extracted)
	require.FileExists(t, filepath.Join(extracted, "bin", "gh"))

	info, err := os.Stat(filepath.Join(extracted, "bin", "gh"))
	require.NoError(t, err)
	require.NotZero(t, info.Mode().Perm()&0111, "executable bit survives extraction")
}

func TestExtractZipReturnsTopLevelDir(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "gh_2.76.0_windows_amd64.zip")
	writeZip(t, archive)

	extracted, err := ExtractArchive(archive, dir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "gh_2.76.0_windows_amd64"), extracted)
	require.FileExists(t, filepath.Join(extracted, "bin", "gh.exe"))
}

func TestExtract7zReturnsTopLevelDir(t *testing.T) {
	// The sevenzip library only reads archives, so this one is a checked-in
	// fixture with the same shape as the generated tar.gz/zip: a top-level
	// release folder holding LICENSE and bin/gh.
	dir := t.TempDir()

	extracted, err := ExtractArchive(filepath.Join("testdata", "gh_2.76.0_linux_amd64.7z"), dir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "gh_2.76.0_linux_amd64"), extracted)
	require.FileExists(t, filepath.Join(extracted, "LICENSE"))

	body, err := os.ReadFile(filepath.Join(extracted, "bin", "gh"))
	require.NoError(t, err)
	require.Contains(t, string(body), "echo gh", "file contents survive 7z extraction")
}

func TestExtractArchiveRejectsUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gh.msi")
	require.NoError(t, os.WriteFile(path, []byte("not an archive"), 0o644))

	_, err := ExtractArchive(path, dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported archive format")
}

func TestFindExecutableMatchesToolName(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "gh_2.76.0_linux_amd64.tar.gz")
	writeTarGz(t, archive)
	extracted, err := ExtractArchive(archive, dir)
	require.NoError(t, err)

	found, err := findExecutable(extracted, "gh")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(extracted, "bin", "gh"), found,
		"the LICENSE file must not be mistaken for the binary")

	_, err = findExecutable(extracted, "git")
	require.Error(t, err, "a tool not present in the tree is not found")
}
