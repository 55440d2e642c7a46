package repository

import (
	"context"

	"SurebetStats/internal/model"

	"gorm.io/gorm"
)

// SheetRepository is the registry of spreadsheet registrations.
type SheetRepository interface {
	Insert(ctx context.Context, sheet *model.RegisteredSheet) error
	// ListAll returns every registration, newest first.
	ListAll(ctx context.Context) ([]*model.RegisteredSheet, error)
	GetByID(ctx context.Context, id uint64) (*model.RegisteredSheet, error)
	// DeleteByID returns gorm.ErrRecordNotFound when id does not exist.
	DeleteByID(ctx context.Context, id uint64) error
}

type sheetRepository struct {
	db *gorm.DB
}

func NewSheetRepository(db *gorm.DB) SheetRepository {
	return &sheetRepository{db: db}
}

func (r *sheetRepository) Insert(ctx context.Context, sheet *model.RegisteredSheet) error {
	return r.db.WithContext(ctx).Create(sheet).Error
}

func (r *sheetRepository) ListAll(ctx context.Context) ([]*model.RegisteredSheet, error) {
	var sheets []*model.RegisteredSheet
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&sheets).Error; err != nil {
		return nil, err
	}
	return sheets, nil
}

func (r *sheetRepository) GetByID(ctx context.Context, id uint64) (*model.RegisteredSheet, error) {
	var sheet model.RegisteredSheet
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&sheet).Error; err != nil {
		return nil, err
	}
	return &sheet, nil
}

func (r *sheetRepository) DeleteByID(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.RegisteredSheet{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
