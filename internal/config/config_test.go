package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 16, c.CopyCount)
	assert.Equal(t, "Case Number", c.CaseNumberColumn)
	assert.Equal(t, "bar", c.ChartType)
	assert.Equal(t, "osc52", c.Clipboard)
	assert.Equal(t, 2000, c.CopiedResetMs)
	assert.Equal(t, DefaultPalette, c.Palette)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte("copy_count: 12\nchart_type: pie\ncase_number_column: Ticket\n"), 0o644))
	t.Setenv("CSVTALLY_CHART_TYPE", "bar")

	c, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 12, c.CopyCount)
	assert.Equal(t, "Ticket", c.CaseNumberColumn)
	assert.Equal(t, "bar", c.ChartType, "env overrides file")
}

func TestSaveRoundTrip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "config.yaml")
	c, err := Load(p)
	require.NoError(t, err)
	require.NoError(t, c.Set("copy_count", "20"))
	require.NoError(t, c.Set("palette", "#111111, #222222,#333333"))
	require.NoError(t, Save(c, p))

	again, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 20, again.CopyCount)
	assert.Equal(t, []string{"#111111", "#222222", "#333333"}, again.Palette)
}

func TestSetValidation(t *testing.T) {
	c := &Global{}
	assert.Error(t, c.Set("copy_count", "0"))
	assert.Error(t, c.Set("copy_count", "many"))
	assert.Error(t, c.Set("chart_type", "donut"))
	assert.Error(t, c.Set("clipboard", "pasteboard"))
	assert.Error(t, c.Set("osc52_mode", "kitty"))
	assert.Error(t, c.Set("palette", "#111111"))
	assert.Error(t, c.Set("seed", "-1"))
	assert.Error(t, c.Set("nope", "1"))

	require.NoError(t, c.Set("include_case_number", "true"))
	assert.True(t, c.IncludeCaseNumber)
	require.NoError(t, c.Set("seed", "42"))
	assert.Equal(t, uint64(42), c.Seed)
}
