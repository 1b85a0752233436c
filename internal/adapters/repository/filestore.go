package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/okian/shaftdb/internal/domain/model"
	"github.com/okian/shaftdb/pkg/logger"
	"github.com/okian/shaftdb/pkg/metrics"
)

const defaultFileMode os.FileMode = 0o644

// FileStore keeps the catalog as one pretty-printed JSON array. Saves go
// through a temporary file in the same directory and a rename, so readers
// see either the old catalog or the new one.
type FileStore struct {
	path   string
	mode   os.FileMode
	logger logger.Logger
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates a store backed by the file at path.
func NewFileStore(path string, opts ...Option) *FileStore {
	s := &FileStore{path: path, mode: defaultFileMode}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	return s
}

// Path returns the catalog file location.
func (s *FileStore) Path() string { return s.path }

// Save writes specs as a JSON array with two-space indentation.
func (s *FileStore) Save(ctx context.Context, specs []model.ShaftSpec) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()

	if specs == nil {
		specs = []model.ShaftSpec{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(specs); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Chmod(tmp.Name(), s.mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("rename into place: %w", err)
	}

	metrics.RecordStoreSave(float64(time.Since(start).Milliseconds()))
	s.logger.Info(ctx, "saved catalog",
		logger.String("path", s.path),
		logger.Int("records", len(specs)))
	return nil
}

// Load reads and re-validates the catalog. A missing file loads as an empty
// catalog; anything unreadable is reported as a *CorruptionError.
func (s *FileStore) Load(ctx context.Context) ([]model.ShaftSpec, error) {
	c, err := s.Read(ctx)
	if err != nil {
		return nil, err
	}
	return c.Specs, nil
}

// Read loads the catalog and reports whether the file existed when it was read.
func (s *FileStore) Read(ctx context.Context) (Catalog, error) {
	if err := ctx.Err(); err != nil {
		return Catalog{}, err
	}
	start := time.Now()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Warn(ctx, "no catalog found; run ingestion first", logger.String("path", s.path))
		return Catalog{Specs: []model.ShaftSpec{}}, nil
	}
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Catalog{}, &CorruptionError{Path: s.path, Index: -1, Err: err}
	}
	if raw == nil {
		return Catalog{}, &CorruptionError{Path: s.path, Index: -1, Err: ErrNotArray}
	}
	specs := make([]model.ShaftSpec, 0, len(raw))
	for i, r := range raw {
		var f model.Fields
		if err := json.Unmarshal(r, &f); err != nil {
			return Catalog{}, &CorruptionError{Path: s.path, Index: i, Err: err}
		}
		spec, err := model.New(f)
		if err != nil {
			return Catalog{}, &CorruptionError{Path: s.path, Index: i, Err: err}
		}
		specs = append(specs, spec)
	}

	metrics.RecordStoreLoad(float64(time.Since(start).Milliseconds()))
	s.logger.Debug(ctx, "loaded catalog",
		logger.String("path", s.path),
		logger.Int("records", len(specs)))
	return Catalog{Specs: specs, Initialized: true}, nil
}

// Initialized reports whether the catalog file exists.
func (s *FileStore) Initialized() (bool, error) {
	_, err := os.Stat(s.path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("stat catalog: %w", err)
	}
}
