package images

import (
	"os"
	"path/filepath"

	"github.com/ViNN280801/TelegramBot/internal/random"
	"github.com/hashicorp/go-set/v2"
	"go.uber.org/zap"
)

// Gallery serves regular files found directly inside a fixed set of directories.
type Gallery struct {
	dirs   []string
	picker *random.Picker
}

func (g *Gallery) Dirs() []string {
	return g.dirs
}

// List returns the regular files of every directory, in directory order and then by name.
// Subdirectories are not descended into. Directories that can't be read are skipped.
func (g *Gallery) List() []string {
	images := []string{}

	for _, dir := range g.dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			zap.L().Warn("failed to read images directory",
				zap.String("dir", dir),
				zap.Error(err),
			)

			continue
		}

		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())

			info, err := os.Stat(path)
			if err != nil {
				zap.L().Debug("skip unreadable image entry",
					zap.String("path", path),
					zap.Error(err),
				)

				continue
			}

			if info.Mode().IsRegular() {
				images = append(images, path)
			}
		}
	}

	return images
}

// Random returns a uniformly chosen image across all directories, ok is false when there are none.
func (g *Gallery) Random() (string, bool) {
	return random.Element(g.picker, g.List())
}

func NewGallery(dirs []string, picker *random.Picker) *Gallery {
	seen := set.New[string](len(dirs))
	uniqueDirs := make([]string, 0, len(dirs))

	for _, dir := range dirs {
		if dir == "" {
			continue
		}

		dir = filepath.Clean(dir)
		if seen.Insert(dir) {
			uniqueDirs = append(uniqueDirs, dir)
		}
	}

	return &Gallery{
		dirs:   uniqueDirs,
		picker: picker,
	}
}
