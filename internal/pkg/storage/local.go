package storage

import (
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

// PublicPrefix is the URL namespace all stored files are served under.
const PublicPrefix = "/uploads"

// LocalStore persists uploaded binary content below a single injected upload
// root and hands out relative paths of the form
// /uploads/<basename>-<timestamp>-<random>.<ext>. Collision avoidance is the
// timestamp+random suffix; there is no content hashing or deduplication.
type LocalStore struct {
	root   string
	mirror *Mirror
}

// NewLocalStore creates the store and makes sure the upload root exists.
func NewLocalStore(root string) (*LocalStore, error) {
	if root == "" {
		return nil, fmt.Errorf("upload root must not be empty")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload root: %w", err)
	}
	return &LocalStore{root: root}, nil
}

// WithMirror attaches an optional object-storage mirror. Mirroring is
// best-effort and never fails the local write.
func (s *LocalStore) WithMirror(m *Mirror) *LocalStore {
	s.mirror = m
	return s
}

// Root returns the filesystem directory backing the store.
func (s *LocalStore) Root() string {
	return s.root
}

// Save streams the payload into a uniquely named file and returns its
// relative public path.
func (s *LocalStore) Save(r io.Reader, originalName string) (string, error) {
	name := uniqueName(originalName)
	abs := filepath.Join(s.root, name)

	f, err := os.OpenFile(abs, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(abs)
		return "", fmt.Errorf("write upload file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close upload file: %w", err)
	}

	rel := PublicPrefix + "/" + name
	s.mirrorUp(rel, abs)
	return rel, nil
}

// SaveBytes persists an in-memory payload (decoded base64 images).
func (s *LocalStore) SaveBytes(data []byte, originalName string) (string, error) {
	return s.Save(bytes.NewReader(data), originalName)
}

// Delete unlinks a previously stored file. A missing file is not an error;
// deletion is best-effort by contract.
func (s *LocalStore) Delete(relPath string) error {
	abs, ok := s.resolve(relPath)
	if !ok {
		return nil
	}
	if err := os.Remove(abs); err != nil && !os.IsNotExist(err) {
		return err
	}
	if s.mirror != nil {
		if err := s.mirror.Remove(relPath); err != nil {
			log.Warnf("[Storage] mirror delete failed for %s: %v", relPath, err)
		}
	}
	return nil
}

// Exists reports whether the stored file is still on disk.
func (s *LocalStore) Exists(relPath string) bool {
	abs, ok := s.resolve(relPath)
	if !ok {
		return false
	}
	_, err := os.Stat(abs)
	return err == nil
}

// AbsPath maps a stored relative path back to its filesystem location.
func (s *LocalStore) AbsPath(relPath string) (string, bool) {
	return s.resolve(relPath)
}

// resolve maps /uploads/<name> to the filesystem and refuses anything that
// would escape the root.
func (s *LocalStore) resolve(relPath string) (string, bool) {
	if relPath == "" {
		return "", false
	}
	// Accept both /uploads/<name> and bare <name>.
	name := strings.TrimPrefix(relPath, PublicPrefix+"/")
	name = filepath.Clean(name)
	if name == "." || strings.HasPrefix(name, "..") || filepath.IsAbs(name) {
		return "", false
	}
	return filepath.Join(s.root, name), true
}

func (s *LocalStore) mirrorUp(relPath, absPath string) {
	if s.mirror == nil {
		return
	}
	if err := s.mirror.Put(relPath, absPath); err != nil {
		log.Warnf("[Storage] mirror upload failed for %s: %v", relPath, err)
	}
}

func uniqueName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	base := strings.TrimSuffix(filepath.Base(originalName), filepath.Ext(originalName))
	base = sanitizeBase(base)
	return fmt.Sprintf("%s-%d-%09d%s", base, time.Now().UnixMilli(), rand.Intn(1_000_000_000), ext)
}

// sanitizeBase keeps the original basename recognizable while making it safe
// as a path segment.
func sanitizeBase(base string) string {
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := b.String()
	if out == "" {
		out = "file"
	}
	if len(out) > 64 {
		out = out[:64]
	}
	return out
}
