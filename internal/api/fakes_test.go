package api

import (
	"context"
	"io"
	"sort"
	"sync"
	"time"

	"SurebetStats/internal/cache"
	"SurebetStats/internal/interfaces"
	"SurebetStats/internal/model"
	"SurebetStats/internal/service"
	"SurebetStats/internal/sheetdata"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type memSheetRepo struct {
	mu     sync.Mutex
	sheets map[uint64]*model.RegisteredSheet
	nextID uint64
}

func newMemSheetRepo() *memSheetRepo {
	return &memSheetRepo{sheets: make(map[uint64]*model.RegisteredSheet)}
}

func (m *memSheetRepo) Insert(_ context.Context, sheet *model.RegisteredSheet) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	sheet.ID = m.nextID
	sheet.CreatedAt = time.Now()
	cp := *sheet
	m.sheets[sheet.ID] = &cp
	return nil
}

func (m *memSheetRepo) ListAll(_ context.Context) ([]*model.RegisteredSheet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*model.RegisteredSheet, 0, len(m.sheets))
	for _, s := range m.sheets {
		cp := *s
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memSheetRepo) GetByID(_ context.Context, id uint64) (*model.RegisteredSheet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sheets[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *memSheetRepo) DeleteByID(_ context.Context, id uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sheets[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.sheets, id)
	return nil
}

type memFetchLogRepo struct {
	mu      sync.Mutex
	entries []*model.FetchLog
}

func (m *memFetchLogRepo) Insert(_ context.Context, entry *model.FetchLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry.ID = uint64(len(m.entries) + 1)
	entry.CreatedAt = time.Now()
	cp := *entry
	m.entries = append(m.entries, &cp)
	return nil
}

func (m *memFetchLogRepo) ListRecent(_ context.Context, limit int) ([]*model.FetchLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*model.FetchLog, 0, len(m.entries))
	for i := len(m.entries) - 1; i >= 0 && len(out) < limit; i-- {
		cp := *m.entries[i]
		out = append(out, &cp)
	}
	return out, nil
}

type stubFetcher struct {
	rows []sheetdata.Record
	err  error
}

func (s *stubFetcher) FetchRows(context.Context, string, string) (interfaces.FetchResult, error) {
	if s.err != nil {
		return interfaces.FetchResult{}, s.err
	}
	return interfaces.FetchResult{Rows: s.rows, Tabs: []string{"NOVEMBRO"}}, nil
}

// testEnv wires handlers around in-memory collaborators, mirroring the
// production composition in cmd/main.go.
type testEnv struct {
	router    *gin.Engine
	sheetRepo *memSheetRepo
	logRepo   *memFetchLogRepo
	fetcher   *stubFetcher
	rowCache  *cache.RowCache
	logger    *logrus.Logger
}

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)
	logger := testLogger()

	env := &testEnv{
		sheetRepo: newMemSheetRepo(),
		logRepo:   &memFetchLogRepo{},
		fetcher:   &stubFetcher{},
		rowCache:  cache.New(),
		logger:    logger,
	}

	sheetHandler := &SheetHandler{
		sheetService: service.NewSheetService(env.sheetRepo, env.rowCache, logger),
		logger:       logger,
	}
	dashboardHandler := &DashboardHandler{
		dashboardService: service.NewDashboardService(env.sheetRepo, env.logRepo, env.fetcher, env.rowCache, logger),
		logger:           logger,
	}

	r := gin.New()
	r.Use(RequestID())
	r.GET("/api/sheets", sheetHandler.ListSheets)
	r.POST("/api/sheets", sheetHandler.CreateSheet)
	r.DELETE("/api/sheets/:id", sheetHandler.DeleteSheet)
	r.GET("/api/fetch-logs", dashboardHandler.ListFetchLogs)
	r.POST("/api/dashboard/refresh-sheets", dashboardHandler.RefreshSheets)
	r.GET("/api/dashboard/overview", dashboardHandler.Overview)
	r.GET("/api/dashboard/overview-all", dashboardHandler.OverviewAll)
	r.GET("/api/dashboard/export", dashboardHandler.ExportXLSX)
	env.router = r
	return env
}
