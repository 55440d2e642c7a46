package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"SurebetStats/internal/interfaces"
	"SurebetStats/internal/model"

	"gorm.io/gorm"
)

type fakeSheetRepo struct {
	mu     sync.Mutex
	sheets map[uint64]*model.RegisteredSheet
	nextID uint64
	err    error
}

func newFakeSheetRepo() *fakeSheetRepo {
	return &fakeSheetRepo{sheets: make(map[uint64]*model.RegisteredSheet)}
}

func (f *fakeSheetRepo) Insert(_ context.Context, sheet *model.RegisteredSheet) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.nextID++
	sheet.ID = f.nextID
	sheet.CreatedAt = time.Now()
	cp := *sheet
	f.sheets[sheet.ID] = &cp
	return nil
}

func (f *fakeSheetRepo) ListAll(_ context.Context) ([]*model.RegisteredSheet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*model.RegisteredSheet, 0, len(f.sheets))
	for _, s := range f.sheets {
		cp := *s
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeSheetRepo) GetByID(_ context.Context, id uint64) (*model.RegisteredSheet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.sheets[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSheetRepo) DeleteByID(_ context.Context, id uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if _, ok := f.sheets[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.sheets, id)
	return nil
}

type fakeFetchLogRepo struct {
	mu      sync.Mutex
	entries []*model.FetchLog
	err     error
}

func (f *fakeFetchLogRepo) Insert(_ context.Context, entry *model.FetchLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	entry.ID = uint64(len(f.entries) + 1)
	entry.CreatedAt = time.Now()
	cp := *entry
	f.entries = append(f.entries, &cp)
	return nil
}

func (f *fakeFetchLogRepo) ListRecent(_ context.Context, limit int) ([]*model.FetchLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*model.FetchLog, 0, len(f.entries))
	for i := len(f.entries) - 1; i >= 0 && len(out) < limit; i-- {
		cp := *f.entries[i]
		out = append(out, &cp)
	}
	return out, nil
}

type fakeFetcher struct {
	mu      sync.Mutex
	results map[string]interfaces.FetchResult
	err     error
	calls   int
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{results: make(map[string]interfaces.FetchResult)}
}

func (f *fakeFetcher) FetchRows(_ context.Context, spreadsheetID, _ string) (interfaces.FetchResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return interfaces.FetchResult{}, f.err
	}
	return f.results[spreadsheetID], nil
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}
