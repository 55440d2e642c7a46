package service

import (
	"bytes"
	"testing"

	"SurebetStats/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBuildWorkbookRoundTrip(t *testing.T) {
	records := []model.NormalizedRecord{
		rec("2025-11-01", "A x B", "Op1", "Bet365", "Futebol", 100, 10),
		rec("2025-11-02", "C x D", "Op1", "Pinnacle", "Tênis", 50, -5),
		rec("2025-11-02", "C x D", "Op2", "Bet365", "Tênis", 30, 3),
	}
	stats := BuildStats(records, GroupEntries(records))

	f, err := BuildWorkbook(stats)
	require.NoError(t, err)
	defer f.Close()

	var buf bytes.Buffer
	_, err = f.WriteTo(&buf)
	require.NoError(t, err)

	r, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer r.Close()

	assert.Equal(t, []string{sheetResumo, sheetLucroPorDia, sheetPorOperador, sheetPorCasa, sheetPorEsporte}, r.GetSheetList())

	resumo, err := r.GetRows(sheetResumo)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(resumo), 8)
	assert.Equal(t, "Total Lucro", resumo[0][0])
	assert.Equal(t, "8", resumo[0][1])
	assert.Equal(t, "Total Apostas", resumo[2][0])
	assert.Equal(t, "3", resumo[2][1])

	days, err := r.GetRows(sheetLucroPorDia)
	require.NoError(t, err)
	require.Len(t, days, 3)
	assert.Equal(t, []string{"Data", "Lucro"}, days[0])
	assert.Equal(t, "2025-11-01", days[1][0], "days are sorted ascending")
	assert.Equal(t, "2025-11-02", days[2][0])

	casas, err := r.GetRows(sheetPorCasa)
	require.NoError(t, err)
	require.Len(t, casas, 3)
	assert.Equal(t, []string{"Casa", "Apostas", "Lucro", "Stake", "Yield (%)"}, casas[0])
	assert.Equal(t, "Bet365", casas[1][0], "group keys are sorted")
	assert.Equal(t, "2", casas[1][1])
	assert.Equal(t, "13", casas[1][2])
	assert.Equal(t, "Pinnacle", casas[2][0])
}
