package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"comanda_manager/internal/apperrors"
	"comanda_manager/internal/database"
)

// PostgresStore persists each collection as a single JSON document row,
// keeping the same wholesale get/set contract as the file store.
type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Load(collection string, dest interface{}) error {
	var record database.CollectionRecord
	err := s.db.First(&record, "name = ?", collection).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load collection %s: %w", collection, err)
	}
	if record.Data == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(record.Data), dest); err != nil {
		return apperrors.NewCorruptState(collection, err)
	}
	return nil
}

func (s *PostgresStore) Save(collection string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal collection %s: %w", collection, err)
	}

	record := database.CollectionRecord{Name: collection, Data: string(data)}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("failed to save collection %s: %w", collection, err)
	}
	return nil
}

func (s *PostgresStore) SaveAll(collections map[string]interface{}) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		txStore := &PostgresStore{db: tx}
		for name, value := range collections {
			if err := txStore.Save(name, value); err != nil {
				return err
			}
		}
		return nil
	})
}
