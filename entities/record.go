package entities

import "time"

// StoredRecord is one serialized value under a fixed storage key.
type StoredRecord struct {
	Key       string `gorm:"column:record_key;primaryKey;size:128"`
	Value     string `gorm:"type:text"`
	UpdatedAt time.Time
}
