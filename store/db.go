package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"studylab/models"
)

// StorageKey is the fixed identifier the deck document is stored under.
const StorageKey = "flashcard_decks"

// StorageEntry is the single key/value row holding the serialized deck list.
type StorageEntry struct {
	Key   string `gorm:"primaryKey;size:100"`
	Value string `gorm:"not null"`
}

// DBStorage persists the deck document as one row in a relational database.
// The whole document is rewritten in a single statement per save, so readers
// never observe a partially written deck list.
type DBStorage struct {
	db *gorm.DB
}

func NewDBStorage(db *gorm.DB) (*DBStorage, error) {
	if err := db.AutoMigrate(&StorageEntry{}); err != nil {
		return nil, fmt.Errorf("migrate storage entries: %w", err)
	}
	return &DBStorage{db: db}, nil
}

func (s *DBStorage) Load() ([]models.Deck, bool, error) {
	var entry StorageEntry
	err := s.db.Where("key = ?", StorageKey).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load deck document: %w", err)
	}

	var decks []models.Deck
	if err := json.Unmarshal([]byte(entry.Value), &decks); err != nil {
		return nil, false, fmt.Errorf("parse deck document: %w", err)
	}
	return decks, true, nil
}

func (s *DBStorage) Save(decks []models.Deck) error {
	data, err := json.Marshal(decks)
	if err != nil {
		return err
	}

	entry := StorageEntry{Key: StorageKey, Value: string(data)}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry).Error
}
