package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/delivery-atlas/pkg/services/report"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "output/reports", cfg.Report.ReportsDir)
	assert.Equal(t, "output/temp", cfg.Report.TempDir)
	assert.Equal(t, report.DefaultTitle, cfg.Report.Title)
	assert.False(t, cfg.Report.CleanupTempImages)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, "8080", cfg.Server.Port)
}

func TestLoad_File(t *testing.T) {
	content := `
report:
  reports_dir: /tmp/reports
  author: Analytics Team
  cleanup_temp_images: true
server:
  port: "9090"
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/reports", cfg.Report.ReportsDir)
	assert.Equal(t, "Analytics Team", cfg.Report.Author)
	assert.True(t, cfg.Report.CleanupTempImages)
	assert.Equal(t, "9090", cfg.Server.Port)
	// Unset keys keep their defaults.
	assert.Equal(t, "output/temp", cfg.Report.TempDir)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestReportSettings(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	settings := cfg.ReportSettings()
	assert.Equal(t, cfg.Report.ReportsDir, settings.ReportsDir)
	assert.Equal(t, cfg.Report.Author, settings.Author)
}
