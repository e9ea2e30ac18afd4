// Package storage writes project uploads to the local filesystem and maps
// them to the web-relative paths stored on projects.
package storage

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync/atomic"
	"time"
)

const (
	projectsSubdir = "projects"
	webPrefix      = "/uploads/"
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// FileInfo describes a stored file for the verification endpoint.
type FileInfo struct {
	ResolvedPath string
	Exists       bool
	Readable     bool
	Size         int64
}

// Store saves uploads under a base directory and serves them back under
// /uploads. Generated names carry a timestamp plus a monotonic counter, so
// two uploads with the same original name never collide.
type Store struct {
	baseDir string
	seq     atomic.Uint64
}

// New creates a Store rooted at baseDir and ensures the projects
// subdirectory exists.
func New(baseDir string) (*Store, error) {
	s := &Store{baseDir: baseDir}
	// Seeding from nanotime keeps names unique across restarts within the
	// same timestamp second.
	s.seq.Store(uint64(time.Now().UnixNano()))

	if err := os.MkdirAll(filepath.Join(baseDir, projectsSubdir), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return s, nil
}

// BaseDir returns the root the static file handler should serve.
func (s *Store) BaseDir() string {
	return s.baseDir
}

// SaveProjectFiles writes each non-empty upload and returns the web-relative
// paths in input order.
func (s *Store) SaveProjectFiles(files []*multipart.FileHeader) ([]string, error) {
	webPaths := make([]string, 0, len(files))

	for _, fh := range files {
		if fh.Size == 0 {
			continue
		}

		name := s.generateName(fh.Filename)
		dst := filepath.Join(s.baseDir, projectsSubdir, name)

		if err := saveFile(fh, dst); err != nil {
			return nil, fmt.Errorf("failed to save %s: %w", fh.Filename, err)
		}

		webPaths = append(webPaths, webPrefix+projectsSubdir+"/"+name)
	}

	return webPaths, nil
}

// Delete removes the file a web path points at. Paths outside the upload
// base are rejected.
func (s *Store) Delete(webPath string) error {
	full, err := s.resolve(webPath)
	if err != nil {
		return err
	}

	if err := os.Remove(full); err != nil {
		if os.IsNotExist(err) {
			log.Printf("file already absent: %s", full)
			return nil
		}
		return err
	}
	return nil
}

// Verify reports whether a web path resolves to a readable file.
func (s *Store) Verify(webPath string) (FileInfo, error) {
	full, err := s.resolve(webPath)
	if err != nil {
		return FileInfo{}, err
	}

	info := FileInfo{ResolvedPath: full}

	stat, err := os.Stat(full)
	if err != nil {
		if os.IsNotExist(err) {
			return info, nil
		}
		return info, err
	}

	info.Exists = true
	info.Size = stat.Size()
	if f, err := os.Open(full); err == nil {
		info.Readable = true
		f.Close()
	}

	return info, nil
}

// generateName builds <sanitized base>_<timestamp>_<counter><ext>.
func (s *Store) generateName(original string) string {
	clean := original
	if clean == "" {
		clean = "file"
	}
	clean = unsafeChars.ReplaceAllString(clean, "_")

	ext := filepath.Ext(clean)
	base := strings.TrimSuffix(clean, ext)

	timestamp := time.Now().Format("20060102_150405")
	return fmt.Sprintf("%s_%s_%d%s", base, timestamp, s.seq.Add(1), ext)
}

// resolve maps a web path like /uploads/projects/x.png onto the filesystem,
// refusing anything that escapes the base directory.
func (s *Store) resolve(webPath string) (string, error) {
	rel := strings.TrimPrefix(webPath, webPrefix)
	rel = filepath.Clean(rel)
	if rel == "." || strings.HasPrefix(rel, "..") || filepath.IsAbs(rel) {
		return "", fmt.Errorf("invalid file path: %s", webPath)
	}
	return filepath.Join(s.baseDir, rel), nil
}

func saveFile(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, src)
	return err
}
