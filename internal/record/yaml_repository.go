package record

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	CheckInsFileName = "check_ins.yml"
	JournalsFileName = "journals.yml"
)

// YAMLRepository stores each sequence as a YAML list in its own file under one directory.
type YAMLRepository struct {
	directory string
	mu        sync.Mutex
}

// NewYAMLRepository creates a new YAMLRepository rooted at directory.
func NewYAMLRepository(directory string) *YAMLRepository {
	return &YAMLRepository{directory: directory}
}

// LoadCheckIns reads check_ins.yml. A missing or empty file yields no check-ins.
func (r *YAMLRepository) LoadCheckIns(ctx context.Context) ([]CheckIn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return readYamlList[CheckIn](filepath.Join(r.directory, CheckInsFileName))
}

// LoadJournals reads journals.yml. A missing or empty file yields no journals.
func (r *YAMLRepository) LoadJournals(ctx context.Context) ([]Journal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return readYamlList[Journal](filepath.Join(r.directory, JournalsFileName))
}

// AppendCheckIn appends one check-in to check_ins.yml.
func (r *YAMLRepository) AppendCheckIn(ctx context.Context, c CheckIn) error {
	return r.BatchAppendCheckIns(ctx, []CheckIn{c})
}

// AppendJournal appends one journal to journals.yml.
func (r *YAMLRepository) AppendJournal(ctx context.Context, j Journal) error {
	return r.BatchAppendJournals(ctx, []Journal{j})
}

// BatchAppendCheckIns rewrites check_ins.yml with checkIns appended, creating the directory if needed.
func (r *YAMLRepository) BatchAppendCheckIns(ctx context.Context, checkIns []CheckIn) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return appendYamlList(filepath.Join(r.directory, CheckInsFileName), checkIns)
}

// BatchAppendJournals rewrites journals.yml with journals appended, creating the directory if needed.
func (r *YAMLRepository) BatchAppendJournals(ctx context.Context, journals []Journal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return appendYamlList(filepath.Join(r.directory, JournalsFileName), journals)
}

func readYamlList[T any](path string) ([]T, error) {
	result := make([]T, 0)

	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return result, nil
	}
	if err != nil {
		return nil, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := yaml.NewDecoder(file).Decode(&result); err != nil {
		// An empty file decodes to io.EOF
		if errors.Is(err, io.EOF) {
			return make([]T, 0), nil
		}
		return nil, fmt.Errorf("yaml.NewDecoder().Decode(%s) > %w", path, err)
	}
	if result == nil {
		result = make([]T, 0)
	}
	return result, nil
}

func appendYamlList[T any](path string, items []T) error {
	if len(items) == 0 {
		return nil
	}
	existing, err := readYamlList[T](path)
	if err != nil {
		return err
	}
	return WriteYamlFile(path, append(existing, items...))
}

// WriteYamlFile replaces path with data through a temporary file in the same directory.
func WriteYamlFile[T any](path string, data T) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("os.CreateTemp(%s) > %w", dir, err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	encoder := yaml.NewEncoder(tmp)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("yaml.NewEncoder().Encode() > %w", err)
	}
	if err := encoder.Close(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("encoder.Close() > %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("tmp.Close() > %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("os.Rename(%s) > %w", path, err)
	}
	return nil
}
