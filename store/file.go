package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"studylab/models"
)

// FileStorage keeps the deck document in a single JSON file. Writes go to a
// temp file in the same directory followed by a rename, so a crash mid-write
// leaves the previous document intact.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (f *FileStorage) Load() ([]models.Deck, bool, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read %s: %w", f.path, err)
	}

	var decks []models.Deck
	if err := json.Unmarshal(data, &decks); err != nil {
		return nil, false, fmt.Errorf("parse %s: %w", f.path, err)
	}
	return decks, true, nil
}

func (f *FileStorage) Save(decks []models.Deck) error {
	data, err := json.MarshalIndent(decks, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".decks-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), f.path)
}
