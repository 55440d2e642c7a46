package model

import (
	"time"

	"gorm.io/datatypes"
)

// RegisteredSheet is one spreadsheet registration. Rows are immutable after
// creation; the only lifecycle operations are insert and delete.
type RegisteredSheet struct {
	ID            uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	Name          string    `gorm:"column:name;type:varchar(128);not null"`
	GoogleSheetID string    `gorm:"column:google_sheet_id;type:varchar(128);not null"`
	SheetRange    string    `gorm:"column:sheet_range;type:varchar(128);not null"`
	CreatedAt     time.Time `gorm:"column:created_at;type:timestamp;default:now()"`
}

func (RegisteredSheet) TableName() string { return "registered_sheets" }

// FetchLog journals one upstream spreadsheet read: which tabs were consumed,
// how many rows came back and how long the round trip took.
type FetchLog struct {
	ID         uint64         `gorm:"column:id;primaryKey;autoIncrement"`
	SheetID    uint64         `gorm:"column:sheet_id;type:bigint;not null;index"`
	Tabs       datatypes.JSON `gorm:"column:tabs;type:jsonb"`
	RowCount   int            `gorm:"column:row_count;type:int;default:0"`
	DurationMS int64          `gorm:"column:duration_ms;type:bigint;default:0"`
	CreatedAt  time.Time      `gorm:"column:created_at;type:timestamp;default:now()"`
}

func (FetchLog) TableName() string { return "fetch_logs" }
