package services

import (
	"fmt"
	"io/fs"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"demo-gallery/pkg/config"
	"demo-gallery/pkg/models"
)

var (
	galleryCache  []models.DemoCard
	galleryMutex  sync.Mutex
	galleryLoaded bool
)

// GetGalleryCache walks the content directory and loads every demo card,
// caching the result until InvalidateGallery is called. Each card id must be
// unique across the collection; a collision fails the whole build since the
// offending cross-references could not be told apart.
func GetGalleryCache() ([]models.DemoCard, error) {
	galleryMutex.Lock()
	defer galleryMutex.Unlock()

	if galleryLoaded {
		return galleryCache, nil
	}

	contentDir, err := ContentRoot()
	if err != nil {
		return nil, err
	}

	dirtyFiles, _ := getGitDirtyFiles(config.GalleryPath)

	var cards []models.DemoCard
	seen := make(map[string]string)

	err = filepath.WalkDir(contentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}

		card, err := LoadCard(path)
		if err != nil {
			return err
		}
		if prev, ok := seen[card.ID]; ok {
			return fmt.Errorf("%w: %q used by both %s and %s", ErrDuplicateID, card.ID, prev, path)
		}
		seen[card.ID] = path

		repoRelPath, _ := filepath.Rel(config.GalleryPath, path)
		card.IsDirty = dirtyFiles[filepath.ToSlash(repoRelPath)]

		cards = append(cards, card)
		return nil
	})
	if err != nil {
		return nil, err
	}

	galleryCache = cards
	galleryLoaded = true
	return galleryCache, nil
}

func getGitDirtyFiles(dir string) (map[string]bool, error) {
	cmd := exec.Command("git", "status", "--porcelain")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return nil, err
	}

	dirty := make(map[string]bool)
	for _, line := range strings.Split(string(out), "\n") {
		if len(line) < 4 {
			continue
		}
		path := strings.TrimSpace(line[3:])
		path = strings.Trim(path, "\"")
		dirty[path] = true
	}
	return dirty, nil
}

func InvalidateGallery() {
	galleryMutex.Lock()
	defer galleryMutex.Unlock()
	galleryLoaded = false
	galleryCache = nil
}
