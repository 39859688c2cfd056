package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"demo-gallery/pkg/config"
)

type MediaFile struct {
	Name string `json:"name"`
	Path string `json:"path"` // Relative path for usage in demo markdown
	Size int64  `json:"size"`
}

// coverUsagePath is how a demo file references a shared cover: relative to
// the demo's own directory, one level up into the covers dir.
func coverUsagePath(coversDir, name string) string {
	return filepath.ToSlash(filepath.Join("..", coversDir, name))
}

func ListCovers() ([]MediaFile, error) {
	cfg, err := LoadSiteConfig()
	if err != nil {
		return nil, err
	}

	coversPath := filepath.Join(config.GalleryPath, cfg.CoversDir)
	if _, err := os.Stat(coversPath); os.IsNotExist(err) {
		os.MkdirAll(coversPath, 0755)
	}

	entries, err := os.ReadDir(coversPath)
	if err != nil {
		return nil, err
	}

	var files []MediaFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, MediaFile{
			Name: entry.Name(),
			Path: coverUsagePath(cfg.CoversDir, entry.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}

func SaveCover(header *multipart.FileHeader) (*MediaFile, error) {
	if header.Size > config.MaxUploadSize {
		return nil, fmt.Errorf("file too large: %d bytes", header.Size)
	}

	cfg, err := LoadSiteConfig()
	if err != nil {
		return nil, err
	}

	src, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	filename := filepath.Base(header.Filename)
	filename = strings.ReplaceAll(filename, " ", "_")

	ext := filepath.Ext(filename)
	name := strings.TrimSuffix(filename, ext)
	filename = fmt.Sprintf("%s_%d%s", name, time.Now().Unix(), ext)

	fullPath := SafeJoin(config.GalleryPath, cfg.CoversDir, filename)
	if fullPath == "" {
		return nil, fmt.Errorf("invalid cover path")
	}
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return nil, err
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, err
	}

	return &MediaFile{
		Name: filename,
		Path: coverUsagePath(cfg.CoversDir, filename),
		Size: header.Size,
	}, nil
}

func DeleteCover(filename string) error {
	cfg, err := LoadSiteConfig()
	if err != nil {
		return err
	}

	fullPath := SafeJoin(config.GalleryPath, cfg.CoversDir, filename)
	if fullPath == "" {
		return fmt.Errorf("invalid cover path")
	}
	return os.Remove(fullPath)
}
