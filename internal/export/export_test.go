package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gosas/internal/material"
	"github.com/alexiusacademia/gosas/internal/stress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func steel(t *testing.T) (stress.Curve, material.Material) {
	t.Helper()
	m, err := material.Get(material.Steel)
	require.NoError(t, err)
	c, err := stress.SampleCurve(m, 0.004, 5)
	require.NoError(t, err)
	return c, m
}

func TestWriteCurveCSV(t *testing.T) {
	c, m := steel(t)
	path := filepath.Join(t.TempDir(), "out", "curve.csv")
	require.NoError(t, WriteCurve(path, c, m, nil))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 6)
	assert.Equal(t, header, records[0])
	assert.Equal(t, []string{"0", "0"}, records[1])
	assert.Equal(t, "840", records[5][1])
}

func TestWriteCurveExcel(t *testing.T) {
	c, m := steel(t)
	res, err := stress.Compute(m, 80000, 50000)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "curve.xlsx")
	require.NoError(t, WriteCurve(path, c, m, res))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(curveSheet)
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, header, rows[0])
	assert.Equal(t, "420", rows[3][1])

	name, err := f.GetCellValue(summarySheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, "Mild Steel", name)

	stressCell, err := f.GetCellValue(summarySheet, "B7")
	require.NoError(t, err)
	assert.Equal(t, "0.625", stressCell)
}

func TestWriteCurveExcelWithoutSummary(t *testing.T) {
	c, m := steel(t)
	path := filepath.Join(t.TempDir(), "curve.xlsx")
	require.NoError(t, WriteCurve(path, c, m, nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{curveSheet}, f.GetSheetList())
}
