package score

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the file used when no path is configured
const DefaultFileName = "highscore.yaml"

// record is the on-disk format
type record struct {
	Best    int       `yaml:"best"`
	SavedAt time.Time `yaml:"saved_at"`
}

// FileStore keeps the best score in a small YAML file
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by path
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultFileName
	}
	return &FileStore{path: path}
}

// Path returns the backing file path
func (s *FileStore) Path() string {
	return s.path
}

// Load returns the stored best score. A missing file is not an error and
// yields 0.
func (s *FileStore) Load() (int, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read best score: %w", err)
	}

	var rec record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return 0, fmt.Errorf("failed to parse best score %s: %w", s.path, err)
	}
	if rec.Best < 0 {
		return 0, fmt.Errorf("invalid best score %d in %s", rec.Best, s.path)
	}
	return rec.Best, nil
}

// Save replaces the stored record by writing a temp file and renaming it
func (s *FileStore) Save(score int) error {
	rec := record{
		Best:    score,
		SavedAt: time.Now().UTC().Truncate(time.Second),
	}
	data, err := yaml.Marshal(&rec)
	if err != nil {
		return fmt.Errorf("failed to encode best score: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".highscore-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write best score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write best score: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}
	return nil
}
