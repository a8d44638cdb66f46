package services

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleanpro/internal/config"
	"cleanpro/internal/runstore"
)

const sampleCSV = "a,b\n1,x\n2,\nn/a,y\n2,x\n1,x\n"

func testService(t *testing.T, store *runstore.Store) (*CleanService, config.PathsConfig) {
	t.Helper()
	base := t.TempDir()
	paths := config.PathsConfig{
		DataDir:      base,
		RawDir:       filepath.Join(base, "raw"),
		ProcessedDir: filepath.Join(base, "processed"),
		ReportsDir:   filepath.Join(base, "reports"),
	}
	defaults := config.CleaningConfig{DropDuplicates: true, BatchConcurrency: 2}
	return NewCleanService(nil, paths, defaults, store), paths
}

func writeSample(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCleanFile(t *testing.T) {
	svc, paths := testService(t, nil)
	input := writeSample(t, "input.csv", sampleCSV)

	result, err := svc.CleanFile(context.Background(), CleanRequest{InputPath: input})
	require.NoError(t, err)

	assert.Len(t, result.RunID, 8)
	assert.Equal(t, input, result.RawFile)
	assert.FileExists(t, result.CleanedFile)
	assert.FileExists(t, result.ReportFile)
	assert.FileExists(t, result.JSONSummary)
	assert.Equal(t, filepath.Dir(result.CleanedFile), paths.ProcessedDir)

	assert.Equal(t, 5, result.Summary.Rows)
	assert.Equal(t, 2, result.Summary.Columns)
	assert.Equal(t, 1, result.Summary.NumericCols, `column a is numeric despite the "n/a" cell`)
	assert.Equal(t, 1, result.Summary.CategoricalCols)
	assert.Equal(t, 5, result.Summary.OriginalRows)
	assert.Equal(t, 4, result.Summary.CleanedRows)
	assert.Equal(t, 1, result.Summary.DroppedDuplicates)
	assert.Equal(t, 0, result.Summary.MissingAfterTotal)

	// The JSON artifact matches the in-memory summary.
	data, err := os.ReadFile(result.JSONSummary)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, float64(4), decoded["cleaned_rows"])
}

func TestCleanFileKeepDuplicates(t *testing.T) {
	svc, _ := testService(t, nil)
	input := writeSample(t, "input.csv", sampleCSV)

	keep := false
	result, err := svc.CleanFile(context.Background(), CleanRequest{
		InputPath:      input,
		DropDuplicates: &keep,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Summary.DroppedDuplicates)
	assert.Equal(t, result.Summary.OriginalRows, result.Summary.CleanedRows)
}

func TestCleanFileValidation(t *testing.T) {
	svc, _ := testService(t, nil)
	_, err := svc.CleanFile(context.Background(), CleanRequest{})
	assert.Error(t, err)
}

func TestCleanFileRecordsHistory(t *testing.T) {
	store, err := runstore.Open(filepath.Join(t.TempDir(), "runs.db"), nil)
	require.NoError(t, err)
	defer store.Close()

	svc, _ := testService(t, store)
	input := writeSample(t, "input.csv", sampleCSV)

	result, err := svc.CleanFile(context.Background(), CleanRequest{InputPath: input})
	require.NoError(t, err)

	records, err := store.List(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, result.RunID, records[0].RunID)
	assert.Equal(t, "input.csv", records[0].UploadedFilename)
	assert.Contains(t, records[0].Summary, `"cleaned_rows":4`)
}

func TestCleanBatch(t *testing.T) {
	svc, _ := testService(t, nil)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "one.csv"), []byte(sampleCSV), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "two.csv"), []byte("c\n1\n2\n"), 0644))
	// A broken file is logged and skipped, not fatal.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.csv"), []byte(""), 0644))

	results, err := svc.CleanBatch(context.Background(), dir)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestProfile(t *testing.T) {
	svc, _ := testService(t, nil)
	input := writeSample(t, "input.csv", "status\nActive\nN/A\nInactive\nna\n")

	profiles, err := svc.Profile(context.Background(), input)
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "status", profiles[0].Column)
	assert.Equal(t, 2, profiles[0].MissingCount)

	// Profiling writes nothing.
	entries, err := os.ReadDir(filepath.Dir(input))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
