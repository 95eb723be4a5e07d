package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVRecord is one stored blob. The key carries its own namespace prefix
// ("subs:", "meta:", "snap:").
type KVRecord struct {
	Key       string         `gorm:"primaryKey"`
	Value     datatypes.JSON `gorm:"type:jsonb"`
	UpdatedAt time.Time
}

func (KVRecord) TableName() string { return "kv_records" }

type kvStore struct {
	db *gorm.DB
}

func NewKVStore(db *gorm.DB) *kvStore {
	return &kvStore{db: db}
}

func (s *kvStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var rec KVRecord
	err := s.db.WithContext(ctx).First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(rec.Value), true, nil
}

func (s *kvStore) Put(ctx context.Context, key string, value []byte) error {
	rec := KVRecord{
		Key:       key,
		Value:     datatypes.JSON(value),
		UpdatedAt: time.Now(),
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(&rec).Error
}
