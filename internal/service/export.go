package service

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"
)

// Workbook sheet names of an exported stats file.
const (
	sheetResumo      = "Resumo"
	sheetLucroPorDia = "Lucro por Dia"
	sheetPorOperador = "Por Operador"
	sheetPorCasa     = "Por Casa"
	sheetPorEsporte  = "Por Esporte"
)

// BuildWorkbook renders a stats result as an xlsx workbook, one sheet per
// breakdown. The caller owns the returned file and must Close it.
func BuildWorkbook(stats *Stats) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetResumo); err != nil {
		return nil, fmt.Errorf("rename summary sheet: %w", err)
	}

	ov := stats.Overview
	summary := [][]any{
		{"Total Lucro", ov.TotalLucro},
		{"Total Stake", ov.TotalStake},
		{"Total Apostas", ov.TotalApostas},
		{"Yield (%)", ov.YieldPercent},
		{"Greens", ov.Greens},
		{"Reds", ov.Reds},
		{"Green (%)", ov.GreenPercent},
		{"Red (%)", ov.RedPercent},
	}
	for i, row := range summary {
		if err := writeRow(f, sheetResumo, i+1, row); err != nil {
			return nil, err
		}
	}

	if _, err := f.NewSheet(sheetLucroPorDia); err != nil {
		return nil, fmt.Errorf("create sheet %q: %w", sheetLucroPorDia, err)
	}
	if err := writeRow(f, sheetLucroPorDia, 1, []any{"Data", "Lucro"}); err != nil {
		return nil, err
	}
	days := make([]string, 0, len(stats.LucroPorDia))
	for day := range stats.LucroPorDia {
		days = append(days, day)
	}
	sort.Strings(days)
	for i, day := range days {
		if err := writeRow(f, sheetLucroPorDia, i+2, []any{day, stats.LucroPorDia[day]}); err != nil {
			return nil, err
		}
	}

	if err := writeGroupSheet(f, sheetPorOperador, "Operador", "Entradas", stats.PorOperador); err != nil {
		return nil, err
	}
	if err := writeGroupSheet(f, sheetPorCasa, "Casa", "Apostas", stats.PorCasa); err != nil {
		return nil, err
	}
	if err := writeGroupSheet(f, sheetPorEsporte, "Esporte", "Apostas", stats.PorEsporte); err != nil {
		return nil, err
	}

	f.SetActiveSheet(0)
	return f, nil
}

func writeGroupSheet(f *excelize.File, sheet, keyHeader, countHeader string, groups map[string]GroupStats) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %q: %w", sheet, err)
	}
	if err := writeRow(f, sheet, 1, []any{keyHeader, countHeader, "Lucro", "Stake", "Yield (%)"}); err != nil {
		return err
	}

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for i, key := range keys {
		g := groups[key]
		if err := writeRow(f, sheet, i+2, []any{key, g.Count, g.Lucro, g.Stake, g.YieldPercent}); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return fmt.Errorf("cell name (%d,%d): %w", i+1, row, err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("write %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}
