package nav

import (
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"

	"reader/internal/model"
)

// List returns the immediate children of dir, sorted by name. Directory
// labels are rendered with theme.Directory.
func List(dir string, theme model.Theme) ([]model.PathEntry, error) {
	children, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read directory %s", dir)
	}

	entries := make([]model.PathEntry, 0, len(children))
	for _, c := range children {
		fullPath := filepath.Join(dir, c.Name())

		label := c.Name()
		isFile := classify(fullPath)
		if !isFile {
			label = theme.Directory.Render(label)
		}
		entries = append(entries, model.PathEntry{
			Name:     c.Name(),
			Label:    label,
			FullPath: fullPath,
			IsDir:    !isFile,
		})
	}

	// Sort on the plain name so styling escapes never group directories together.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}

// classify reports whether path is a regular file. A child that cannot be
// stat'ed, such as a dangling or looping symlink, is still listed as a
// non-file; the error surfaces only if the user picks it.
func classify(path string) bool {
	isFile, err := model.IsFile(path)
	if err != nil {
		log.Printf("nav: cannot classify %s: %v", path, err)
		return false
	}
	return isFile
}
