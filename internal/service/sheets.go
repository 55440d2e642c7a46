package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"SurebetStats/internal/apperr"
	"SurebetStats/internal/cache"
	"SurebetStats/internal/model"
	"SurebetStats/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DefaultRange is applied when a registration does not name a range.
const DefaultRange = "NOVEMBRO!A1:Z1000"

// SheetService manages the registry of spreadsheet registrations and keeps
// the row cache consistent with it.
type SheetService struct {
	repo   repository.SheetRepository
	cache  *cache.RowCache
	logger *logrus.Logger
}

func NewSheetService(repo repository.SheetRepository, rowCache *cache.RowCache, logger *logrus.Logger) *SheetService {
	return &SheetService{repo: repo, cache: rowCache, logger: logger}
}

// CreateSheetRequest is the registration payload.
type CreateSheetRequest struct {
	Name          string `json:"name"`
	GoogleSheetID string `json:"googleSheetId"`
	Range         string `json:"range"`
}

// SheetInfo is the wire representation of a registration.
type SheetInfo struct {
	ID            uint64    `json:"id"`
	Name          string    `json:"name"`
	GoogleSheetID string    `json:"googleSheetId"`
	Range         string    `json:"range"`
	CreatedAt     time.Time `json:"createdAt"`
}

func toSheetInfo(m *model.RegisteredSheet) SheetInfo {
	return SheetInfo{
		ID:            m.ID,
		Name:          m.Name,
		GoogleSheetID: m.GoogleSheetID,
		Range:         m.SheetRange,
		CreatedAt:     m.CreatedAt,
	}
}

// List returns every registration, newest first.
func (s *SheetService) List(ctx context.Context) ([]SheetInfo, error) {
	sheets, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, apperr.Persistence(err, "list registered sheets")
	}
	infos := make([]SheetInfo, 0, len(sheets))
	for _, m := range sheets {
		infos = append(infos, toSheetInfo(m))
	}
	return infos, nil
}

// Create registers a spreadsheet and clears the whole row cache so the next
// aggregation recomputes against the new registry state.
func (s *SheetService) Create(ctx context.Context, req CreateSheetRequest) (SheetInfo, error) {
	name := strings.TrimSpace(req.Name)
	sheetID := strings.TrimSpace(req.GoogleSheetID)
	if name == "" || sheetID == "" {
		return SheetInfo{}, apperr.Validation("name and googleSheetId are required")
	}
	rangeSpec := strings.TrimSpace(req.Range)
	if rangeSpec == "" {
		rangeSpec = DefaultRange
	}

	sheet := &model.RegisteredSheet{
		Name:          name,
		GoogleSheetID: sheetID,
		SheetRange:    rangeSpec,
	}
	if err := s.repo.Insert(ctx, sheet); err != nil {
		return SheetInfo{}, apperr.Persistence(err, "insert registration")
	}
	s.cache.Clear()
	s.logger.WithFields(logrus.Fields{"id": sheet.ID, "name": sheet.Name}).Info("sheet registered, cache cleared")
	return toSheetInfo(sheet), nil
}

// Delete removes a registration and evicts only that sheet's cache entry.
func (s *SheetService) Delete(ctx context.Context, id uint64) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("sheet %d not found", id)
		}
		return apperr.Persistence(err, "delete registration %d", id)
	}
	s.cache.Invalidate(id)
	s.logger.WithField("id", id).Info("sheet deleted, cache entry evicted")
	return nil
}
