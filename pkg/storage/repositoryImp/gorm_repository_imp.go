package repositoryImp

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vyaas/entities"
	"vyaas/pkg/storage/repository"
)

type gormRepo struct{ db *gorm.DB }

func NewGorm(db *gorm.DB) repository.RecordRepository { return &gormRepo{db} }

func (r *gormRepo) Name() string { return "sqlite" }

func (r *gormRepo) Get(ctx context.Context, key string) ([]byte, error) {
	var rec entities.StoredRecord
	if err := r.db.WithContext(ctx).Where("record_key = ?", key).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return []byte(rec.Value), nil
}

func (r *gormRepo) Put(ctx context.Context, key string, value []byte) error {
	rec := entities.StoredRecord{Key: key, Value: string(value)}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "record_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
}

func (r *gormRepo) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Where("record_key = ?", key).Delete(&entities.StoredRecord{}).Error
}

func (r *gormRepo) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("db.DB(): %w", err)
	}
	return sqlDB.PingContext(ctx)
}
