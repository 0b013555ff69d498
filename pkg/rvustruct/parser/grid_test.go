package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadCSVRagged(t *testing.T) {
	input := "\ufeffa,b,c\n1\n, x ,,4\n"

	grid, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, grid, 3)
	assert.Equal(t, "a", grid.Cell(0, 0))
	assert.Equal(t, "1", grid.Cell(1, 0))
	assert.Equal(t, "", grid.Cell(1, 2), "missing cell in a short row")
	assert.Equal(t, "x", grid.Cell(2, 1), "cells are trimmed")
	assert.Equal(t, "4", grid.Cell(2, 3))
	assert.Equal(t, "", grid.Cell(10, 10), "outside the grid")
	assert.Equal(t, "", grid.Cell(-1, 0))
	assert.Equal(t, 4, grid.Width())
}

func TestReadGridXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Department")
	f.SetCellValue(sheetName, "B3", 100)
	f.SetCellValue(sheetName, "D3", 200.5)

	tmpFile := filepath.Join(t.TempDir(), "revenue.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	grid, err := ReadGrid(tmpFile, "")
	require.NoError(t, err)

	assert.Equal(t, "Department", grid.Cell(0, 0))
	assert.Equal(t, "", grid.Cell(1, 0))
	assert.Equal(t, "100", grid.Cell(2, 1))
	assert.Equal(t, "200.5", grid.Cell(2, 3))

	_, err = ReadGrid(tmpFile, "Missing")
	assert.Error(t, err)
}

func TestReadGridCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "revenue.csv")
	require.NoError(t, os.WriteFile(path, []byte("Dept,1.5\n,2\n"), 0644))

	grid, err := ReadGrid(path, "")
	require.NoError(t, err)
	assert.Equal(t, "1.5", grid.Cell(0, 1))
	assert.Equal(t, "2", grid.Cell(1, 1))
}

func TestReadGridErrors(t *testing.T) {
	_, err := ReadGrid(filepath.Join(t.TempDir(), "missing.csv"), "")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = ReadGrid(filepath.Join(t.TempDir(), "missing.xlsx"), "")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = ReadGrid("revenue.json", "")
	assert.ErrorContains(t, err, "unsupported file type")
}
