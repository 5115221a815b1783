// Package export writes stress-strain samples to spreadsheet files.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gosas/internal/material"
	"github.com/alexiusacademia/gosas/internal/stress"
	"github.com/xuri/excelize/v2"
)

const (
	curveSheet   = "StressStrain"
	summarySheet = "Summary"
)

var header = []string{"Strain", "Stress (MPa)"}

// WriteCurve saves the sample of m to path. ".csv" writes plain CSV; every
// other extension writes an Excel workbook. When res is not nil the workbook
// gets a summary sheet with the computed section response.
func WriteCurve(path string, c stress.Curve, m material.Material, res *stress.Result) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	if strings.ToLower(filepath.Ext(path)) == ".csv" {
		return writeCSV(path, c)
	}
	return writeExcel(path, c, m, res)
}

func writeCSV(path string, c stress.Curve) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(file)
	if err := w.Write(header); err != nil {
		return err
	}
	for strain, sigma := range c.All() {
		record := []string{
			strconv.FormatFloat(strain, 'g', -1, 64),
			strconv.FormatFloat(sigma, 'g', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeExcel(path string, c stress.Curve, m material.Material, res *stress.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", curveSheet); err != nil {
		return err
	}

	sw, err := f.NewStreamWriter(curveSheet)
	if err != nil {
		return err
	}
	if err := sw.SetRow("A1", []interface{}{header[0], header[1]}); err != nil {
		return err
	}

	row := 2
	for strain, sigma := range c.All() {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, []interface{}{strain, sigma}); err != nil {
			return err
		}
		row++
	}
	if err := sw.Flush(); err != nil {
		return err
	}

	if res != nil {
		if err := writeSummary(f, m, res); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func writeSummary(f *excelize.File, m material.Material, res *stress.Result) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Material", m.Name},
		{"Young's Modulus (MPa)", m.Young},
		{"Poisson's Ratio", m.Poisson},
		{"Density (kg/m³)", m.Density},
		{"Area (mm²)", res.Area},
		{"Force (N)", res.Force},
		{"Stress (MPa)", res.Stress},
		{"Strain", res.Strain},
		{"Lateral Strain", res.LateralStrain},
		{"Mass per Length (kg/m)", res.MassPerLength},
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &r); err != nil {
			return err
		}
	}
	return nil
}
