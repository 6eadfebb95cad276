package uploads

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

var (
	ErrFileTooLarge   = errors.New("file exceeds the 5 MB limit")
	ErrTypeNotAllowed = errors.New("file type must be PDF, DOC or DOCX")
	ErrObjectNotFound = errors.New("stored object not found")
)

// MaxObjectSize is enforced at the storage boundary regardless of what the
// client declared.
const MaxObjectSize = 5 * 1024 * 1024

var allowedContentTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

type FileMeta struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// Store holds write-once document objects in private storage. Keys are
// opaque; a key never resolves to a filesystem path outside the store.
type Store interface {
	Save(ctx context.Context, r io.Reader, meta FileMeta) (string, error)
	Open(ctx context.Context, key string) (io.ReadCloser, FileMeta, error)
}

type diskStore struct {
	root string
}

// NewDiskStore creates a store rooted at a private directory. The directory
// must never be served by the web layer.
func NewDiskStore(root string) (Store, error) {
	if err := os.MkdirAll(root, 0o700); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &diskStore{root: root}, nil
}

// Save checks the declared type and size, then writes the object. The byte
// count is verified against the actual stream, not the declared size. On any
// violation nothing is written. The write goes through a temp file and a
// rename so a partial object is never visible under its key.
func (s *diskStore) Save(ctx context.Context, r io.Reader, meta FileMeta) (string, error) {
	if !allowedContentTypes[meta.ContentType] {
		return "", ErrTypeNotAllowed
	}
	if meta.Size > MaxObjectSize {
		return "", ErrFileTooLarge
	}

	key := uuid.NewString()
	tmpPath := filepath.Join(s.root, key+".tmp")

	out, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return "", fmt.Errorf("create object: %w", err)
	}

	written, err := io.Copy(out, io.LimitReader(r, MaxObjectSize+1))
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("write object: %w", err)
	}
	if written > MaxObjectSize {
		os.Remove(tmpPath)
		return "", ErrFileTooLarge
	}

	meta.Size = written
	if err := s.writeMeta(key, meta); err != nil {
		os.Remove(tmpPath)
		return "", err
	}

	if err := os.Rename(tmpPath, filepath.Join(s.root, key)); err != nil {
		os.Remove(tmpPath)
		os.Remove(s.metaPath(key))
		return "", fmt.Errorf("finalize object: %w", err)
	}

	return key, nil
}

func (s *diskStore) Open(ctx context.Context, key string) (io.ReadCloser, FileMeta, error) {
	// Keys are UUIDs; anything else is rejected before touching the
	// filesystem so a key can never traverse out of the store root.
	if _, err := uuid.Parse(key); err != nil {
		return nil, FileMeta{}, ErrObjectNotFound
	}

	meta, err := s.readMeta(key)
	if err != nil {
		return nil, FileMeta{}, err
	}

	f, err := os.Open(filepath.Join(s.root, key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, FileMeta{}, ErrObjectNotFound
		}
		return nil, FileMeta{}, fmt.Errorf("open object: %w", err)
	}

	return f, meta, nil
}

func (s *diskStore) metaPath(key string) string {
	return filepath.Join(s.root, key+".meta")
}

func (s *diskStore) writeMeta(key string, meta FileMeta) error {
	data, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("encode object metadata: %w", err)
	}
	if err := os.WriteFile(s.metaPath(key), data, 0o600); err != nil {
		return fmt.Errorf("write object metadata: %w", err)
	}
	return nil
}

func (s *diskStore) readMeta(key string) (FileMeta, error) {
	data, err := os.ReadFile(s.metaPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return FileMeta{}, ErrObjectNotFound
		}
		return FileMeta{}, fmt.Errorf("read object metadata: %w", err)
	}

	var meta FileMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return FileMeta{}, fmt.Errorf("decode object metadata: %w", err)
	}
	return meta, nil
}
