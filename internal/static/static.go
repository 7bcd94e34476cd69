// Package static embeds static files into the binary and copies them to the
// filesystem
package static

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/ayoisaiah/classfocus/internal/osutil"
)

const (
	filesDir = "files"
	iconFile = "icon.png"
)

//go:embed files/*
var embeddedFiles embed.FS

// Install copies the embedded files into dir under the XDG data directory.
// Files that already exist are left alone so users can replace them.
func Install(dir string) error {
	return fs.WalkDir(
		embeddedFiles,
		filesDir,
		func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			// embed paths always use forward slashes
			stripped := strings.TrimPrefix(path, filesDir+"/")

			destPath, err := xdg.DataFile(filepath.Join(dir, stripped))
			if err != nil {
				return err
			}

			_, err = os.Stat(destPath)
			if !errors.Is(err, os.ErrNotExist) {
				return err
			}

			b, err := embeddedFiles.ReadFile(path)
			if err != nil {
				return err
			}

			err = os.MkdirAll(filepath.Dir(destPath), osutil.DirPermission)
			if err != nil {
				return err
			}

			return os.WriteFile(destPath, b, 0o644)
		},
	)
}

// IconPath returns the installed notification icon, or "" if it is missing.
func IconPath(dir string) string {
	path, err := xdg.SearchDataFile(filepath.Join(dir, iconFile))
	if err != nil {
		return ""
	}

	return path
}
