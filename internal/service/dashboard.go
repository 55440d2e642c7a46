package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"SurebetStats/internal/apperr"
	"SurebetStats/internal/cache"
	"SurebetStats/internal/interfaces"
	"SurebetStats/internal/model"
	"SurebetStats/internal/repository"
	"SurebetStats/internal/sheetdata"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DashboardService composes the row cache, the upstream fetcher and the
// aggregator into the overview operations.
type DashboardService struct {
	sheetRepo repository.SheetRepository
	logRepo   repository.FetchLogRepository
	fetcher   interfaces.SheetFetcher
	cache     *cache.RowCache
	logger    *logrus.Logger
}

func NewDashboardService(
	sheetRepo repository.SheetRepository,
	logRepo repository.FetchLogRepository,
	fetcher interfaces.SheetFetcher,
	rowCache *cache.RowCache,
	logger *logrus.Logger,
) *DashboardService {
	return &DashboardService{
		sheetRepo: sheetRepo,
		logRepo:   logRepo,
		fetcher:   fetcher,
		cache:     rowCache,
		logger:    logger,
	}
}

// Overview computes the statistics of one registered sheet. cacheHit reports
// whether the rows came from the cache.
func (s *DashboardService) Overview(ctx context.Context, sheetDbID uint64, filter StatsFilter) (stats *Stats, cacheHit bool, err error) {
	sheet, err := s.sheetRepo.GetByID(ctx, sheetDbID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, apperr.NotFound("sheet %d not found", sheetDbID)
		}
		return nil, false, apperr.Persistence(err, "load registration %d", sheetDbID)
	}

	entry, hit, err := s.cache.GetOrFetch(ctx, sheet.ID, s.fetchFunc(sheet))
	if err != nil {
		return nil, false, err
	}

	records := FilterRecords(normalizeRecords(entry.Rows, sheet.Name), filter)
	return BuildStats(records, GroupEntries(records)), hit, nil
}

// OverviewAll computes the statistics across every registered sheet. The
// operator filter selects whole sheets by display name; sheets are fetched
// sequentially and grouped as one record set.
func (s *DashboardService) OverviewAll(ctx context.Context, filter StatsFilter) (*Stats, error) {
	sheets, err := s.sheetRepo.ListAll(ctx)
	if err != nil {
		return nil, apperr.Persistence(err, "list registered sheets")
	}
	if len(sheets) == 0 {
		return nil, apperr.Validation("no sheets registered")
	}

	var all []model.NormalizedRecord
	for _, sheet := range sheets {
		if filter.Operador != "" && sheet.Name != filter.Operador {
			continue
		}
		entry, _, err := s.cache.GetOrFetch(ctx, sheet.ID, s.fetchFunc(sheet))
		if err != nil {
			return nil, err
		}
		all = append(all, normalizeRecords(entry.Rows, sheet.Name)...)
	}

	records := FilterRecords(all, StatsFilter{From: filter.From, To: filter.To})
	return BuildStats(records, GroupEntries(records)), nil
}

// RefreshResult is the response of an explicit cache refresh.
type RefreshResult struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// Refresh drops every cached sheet; the next overview refetches everything.
func (s *DashboardService) Refresh() RefreshResult {
	n := s.cache.Len()
	s.cache.Clear()
	s.logger.WithField("cleared", n).Info("row cache cleared")
	return RefreshResult{OK: true, Message: fmt.Sprintf("cache cleared, %d sheet(s) evicted", n)}
}

// FetchLogInfo is the wire representation of one fetch-journal entry.
type FetchLogInfo struct {
	ID         uint64         `json:"id"`
	SheetID    uint64         `json:"sheetId"`
	Tabs       datatypes.JSON `json:"tabs"`
	RowCount   int            `json:"rowCount"`
	DurationMS int64          `json:"durationMs"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// ListFetchLogs returns the newest journal entries. A non-positive limit
// falls back to 50 and anything above 200 is capped there.
func (s *DashboardService) ListFetchLogs(ctx context.Context, limit int) ([]FetchLogInfo, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	entries, err := s.logRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, apperr.Persistence(err, "list fetch logs")
	}
	infos := make([]FetchLogInfo, 0, len(entries))
	for _, e := range entries {
		infos = append(infos, FetchLogInfo{
			ID:         e.ID,
			SheetID:    e.SheetID,
			Tabs:       e.Tabs,
			RowCount:   e.RowCount,
			DurationMS: e.DurationMS,
			CreatedAt:  e.CreatedAt,
		})
	}
	return infos, nil
}

// fetchFunc adapts one registration into a cache fetch callback that reads
// the spreadsheet and journals the round trip.
func (s *DashboardService) fetchFunc(sheet *model.RegisteredSheet) cache.FetchFunc {
	return func(ctx context.Context) ([]sheetdata.Record, error) {
		start := time.Now()
		res, err := s.fetcher.FetchRows(ctx, sheet.GoogleSheetID, sheet.SheetRange)
		if err != nil {
			return nil, err
		}
		s.journal(ctx, sheet.ID, res, time.Since(start))
		return res.Rows, nil
	}
}

func (s *DashboardService) journal(ctx context.Context, sheetID uint64, res interfaces.FetchResult, took time.Duration) {
	tabs, err := json.Marshal(res.Tabs)
	if err != nil || res.Tabs == nil {
		tabs = []byte("[]")
	}
	entry := &model.FetchLog{
		SheetID:    sheetID,
		Tabs:       datatypes.JSON(tabs),
		RowCount:   len(res.Rows),
		DurationMS: took.Milliseconds(),
	}
	// Journaling must never fail the fetch itself.
	if err := s.logRepo.Insert(ctx, entry); err != nil {
		s.logger.WithError(err).WithField("sheet_id", sheetID).Warn("record fetch log failed")
	}
}

// normalizeRecords converts raw rows into records, dropping any row without
// a parseable bet date.
func normalizeRecords(rows []sheetdata.Record, operador string) []model.NormalizedRecord {
	records := make([]model.NormalizedRecord, 0, len(rows))
	for _, row := range rows {
		if r, ok := model.NewNormalizedRecord(row, operador); ok {
			records = append(records, r)
		}
	}
	return records
}
