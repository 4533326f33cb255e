package driven

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/alorle/ace-launcher/internal/metrics"
	"github.com/alorle/ace-launcher/internal/port/driven"
	"github.com/alorle/ace-launcher/internal/source"
)

// SourceJSONRepository implements the SourceRepository port on a JSON array file.
// Every write rewrites the whole file; the mutex makes read-modify-write a
// critical section within the process. Concurrent writers in other processes
// are not supported and the last writer wins.
type SourceJSONRepository struct {
	path   string
	logger *slog.Logger
	mu     sync.Mutex
}

// NewSourceJSONRepository creates a repository backed by the file at path.
// The parent directory is created if needed; the file itself is created lazily.
func NewSourceJSONRepository(path string, logger *slog.Logger) (*SourceJSONRepository, error) {
	if path == "" {
		return nil, errors.New("source list path cannot be empty")
	}
	if logger == nil {
		logger = slog.Default()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create source list directory: %w", err)
	}

	return &SourceJSONRepository{path: path, logger: logger}, nil
}

// Path returns the file backing the repository.
func (r *SourceJSONRepository) Path() string {
	return r.path
}

// sourceDTO is the on-disk representation of a source.
type sourceDTO struct {
	Name   string `json:"name"`
	URL    string `json:"url"`
	IsFile bool   `json:"isFile"`
}

func sourceToDTO(src source.Source) sourceDTO {
	return sourceDTO{
		Name:   src.Name(),
		URL:    src.Location(),
		IsFile: src.IsFile(),
	}
}

// FindAll reads every source from the file.
// A missing file is created empty. Corrupt JSON, or entries that fail
// validation, are logged and skipped instead of failing the call. Any other
// read error is returned as source.ErrPersistenceFailed.
func (r *SourceJSONRepository) FindAll(ctx context.Context) ([]source.Source, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load()
}

// Save appends src and rewrites the file.
func (r *SourceJSONRepository) Save(ctx context.Context, src source.Source) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.load()
	if err != nil {
		metrics.RecordRegistryWrite("save", "error")
		return err
	}

	sources := append(current, src)
	if err := r.write(sources); err != nil {
		metrics.RecordRegistryWrite("save", "error")
		return err
	}

	metrics.RecordRegistryWrite("save", "success")
	r.logger.Info("source added", "name", src.Name(), "location", src.Location(), "total", len(sources))
	return nil
}

// Delete removes every source with location and rewrites the file.
// Deleting an unknown location still rewrites the file and is not an error.
func (r *SourceJSONRepository) Delete(ctx context.Context, location string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.load()
	if err != nil {
		metrics.RecordRegistryWrite("delete", "error")
		return err
	}

	remaining := source.Without(current, location)
	if err := r.write(remaining); err != nil {
		metrics.RecordRegistryWrite("delete", "error")
		return err
	}

	metrics.RecordRegistryWrite("delete", "success")
	r.logger.Info("source deleted", "location", location, "removed", len(current)-len(remaining), "total", len(remaining))
	return nil
}

// load reads the file. Only a missing file or corrupt JSON yields an empty
// list; other read errors must not be mistaken for an empty registry, or the
// next write would drop every source. Callers must hold r.mu.
func (r *SourceJSONRepository) load() ([]source.Source, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			r.logger.Error("failed to read source list", "path", r.path, "error", err)
			return nil, fmt.Errorf("%w: %w", source.ErrPersistenceFailed, err)
		}
		if writeErr := r.write(nil); writeErr != nil {
			r.logger.Warn("failed to create empty source list", "path", r.path, "error", writeErr)
		}
		return []source.Source{}, nil
	}

	var dtos []sourceDTO
	if err := json.Unmarshal(data, &dtos); err != nil {
		r.logger.Warn("corrupt source list, treating as empty", "path", r.path, "error", err)
		return []source.Source{}, nil
	}

	sources := make([]source.Source, 0, len(dtos))
	for i, dto := range dtos {
		src, err := source.NewSource(dto.Name, dto.URL, dto.IsFile)
		if err != nil {
			r.logger.Warn("skipping invalid source entry", "path", r.path, "index", i, "error", err)
			continue
		}
		sources = append(sources, src)
	}

	return sources, nil
}

// write replaces the file with sources. Callers must hold r.mu.
func (r *SourceJSONRepository) write(sources []source.Source) error {
	dtos := make([]sourceDTO, 0, len(sources))
	for _, src := range sources {
		dtos = append(dtos, sourceToDTO(src))
	}

	data, err := json.MarshalIndent(dtos, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", source.ErrPersistenceFailed, err)
	}

	if err := replaceFile(r.path, data); err != nil {
		return fmt.Errorf("%w: %w", source.ErrPersistenceFailed, err)
	}

	return nil
}

// Ensure SourceJSONRepository implements the driven.SourceRepository interface
var _ driven.SourceRepository = (*SourceJSONRepository)(nil)
