package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/rvustruct/internal/testutil"
	"github.com/ukaji3/rvustruct/pkg/rvustruct/models"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Flag variables are package-level; start every run from their defaults.
	configPath, layoutPath, outputPath, format, department, addr = "", "", "", "text", "", ""
	lenient, pretty = false, false

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestExtractCommand(t *testing.T) {
	path := testutil.WriteCSV(t, testutil.RevenueGrid(), "revenue1.csv")

	out, err := execute(t, "extract", path)
	require.NoError(t, err)

	var tables models.Tables
	require.NoError(t, json.Unmarshal([]byte(out), &tables))
	assert.Len(t, tables.Departments, 6)
	assert.Len(t, tables.Services, 8)
}

func TestExtractCommandOutputFile(t *testing.T) {
	path := testutil.WriteCSV(t, testutil.RevenueGrid(), "revenue1.csv")
	dest := filepath.Join(t.TempDir(), "tables.json")

	_, err := execute(t, "extract", path, "-o", dest, "--pretty")
	require.NoError(t, err)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"layout\": \"revenue1-v1\"")
}

func TestReportCommand(t *testing.T) {
	path := testutil.WriteCSV(t, testutil.RevenueGrid(), "revenue1.csv")

	out, err := execute(t, "report", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Total Pre-RC RVU:")
	assert.Contains(t, out, "15.90")

	out, err = execute(t, "report", path, "--department", "Cardiology", "--format", "json")
	require.NoError(t, err)
	var services []models.ServiceDetail
	require.NoError(t, json.Unmarshal([]byte(out), &services))
	assert.Len(t, services, 3)

	_, err = execute(t, "report", path, "--department", "Oncology")
	assert.ErrorContains(t, err, "unknown department")

	_, err = execute(t, "report", path, "--format", "xml")
	assert.ErrorContains(t, err, "invalid format")
}

func TestMissingFileFails(t *testing.T) {
	_, err := execute(t, "extract", filepath.Join(t.TempDir(), "revenue1.csv"))
	assert.ErrorContains(t, err, "file not found")
}

func TestLenientFlag(t *testing.T) {
	path := testutil.WriteCSV(t, testutil.RevenueGrid()[:20], "short.csv")

	_, err := execute(t, "extract", path)
	assert.ErrorContains(t, err, "region out of bounds")

	out, err := execute(t, "extract", path, "--lenient")
	require.NoError(t, err)
	var tables models.Tables
	require.NoError(t, json.Unmarshal([]byte(out), &tables))
	assert.Empty(t, tables.Departments)
}
