package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zooyer/dxfrw"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, dxfrw.DXF_R2010, cfg.FileType())
}

func TestParse(t *testing.T) {
	cfg, err := Parse(strings.NewReader(`
output:
  format: dxb12
app_id: PLAN
log:
  ops: false
  diag: true
report: convert.csv
default_color: 3
`))
	require.NoError(t, err)
	assert.Equal(t, "dxb12", cfg.Output.Format)
	assert.Equal(t, "_out", cfg.Output.Suffix, "missing fields keep defaults")
	assert.Equal(t, "PLAN", cfg.AppID)
	assert.Equal(t, Log{Diag: true}, cfg.Log)
	assert.Equal(t, "convert.csv", cfg.Report)
	require.NotNil(t, cfg.DefaultColor)
	assert.Equal(t, 3, *cfg.DefaultColor)
	assert.Equal(t, dxfrw.DXB_R12, cfg.FileType())

	var sb strings.Builder
	lw := cfg.LogWriters(&sb)
	assert.Nil(t, lw.Ops)
	assert.NotNil(t, lw.Diag)
	assert.Nil(t, lw.Trace)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"format", "output: {format: dwg}", `unknown output.format "dwg"`},
		{"app id", `app_id: ""`, "app_id must not be empty"},
		{"color", "default_color: 256", "default_color must be between 1 and 255"},
		{"yaml", "output: [", "failed to parse config YAML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dxfrw.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: dxf12\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, dxfrw.DXF_R12, cfg.FileType())

	_, err = Load(filepath.Join(dir, "dxfrw.json"))
	assert.ErrorContains(t, err, "must have .yaml extension")

	_, err = Load(filepath.Join(dir, "missing.yml"))
	assert.ErrorContains(t, err, "failed to stat config file")
}
