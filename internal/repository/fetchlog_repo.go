package repository

import (
	"context"

	"SurebetStats/internal/model"

	"gorm.io/gorm"
)

// FetchLogRepository journals upstream spreadsheet reads.
type FetchLogRepository interface {
	Insert(ctx context.Context, entry *model.FetchLog) error
	// ListRecent returns the newest entries first, at most limit. Callers
	// bound limit; the repository applies it as given.
	ListRecent(ctx context.Context, limit int) ([]*model.FetchLog, error)
}

type fetchLogRepository struct {
	db *gorm.DB
}

func NewFetchLogRepository(db *gorm.DB) FetchLogRepository {
	return &fetchLogRepository{db: db}
}

func (r *fetchLogRepository) Insert(ctx context.Context, entry *model.FetchLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *fetchLogRepository) ListRecent(ctx context.Context, limit int) ([]*model.FetchLog, error) {
	var entries []*model.FetchLog
	if err := r.db.WithContext(ctx).Order("id DESC").Limit(limit).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
