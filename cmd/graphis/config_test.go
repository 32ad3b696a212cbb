package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/vasalvit/graphis"
)

const yamlChart = `
width: 500
height: 400
center: [250, 200]
innerRadius: 80
radialWidth: 100
initialRotation: 0.25
data:
  - value: 3
    color: "#ff0000"
  - value: 1
    color: steelblue
  - value: 2
`

func TestParseChartFile_YAML(t *testing.T) {
	data, cfg, err := parseChartFile([]byte(yamlChart))
	require.NoError(t, err)

	require.Equal(t, graphis.PieChartConfig{
		Width:           500,
		Height:          400,
		Center:          graphis.Tuple{250, 200},
		InnerRadius:     80,
		RadialWidth:     100,
		InitialRotation: 0.25,
	}, cfg)

	require.Len(t, data, 3)
	require.Equal(t, 3.0, data[0].Value)
	require.Equal(t, "#ff0000", data[0].Color.Literal())
	require.Equal(t, "#4682b4", data[1].Color.Literal())
	require.True(t, data[2].Color.IsZero())
}

func TestParseChartFile_JSON(t *testing.T) {
	raw := `{"width": 100, "height": 100, "center": [50, 50], "radialWidth": 40,
		"data": [{"value": 1, "color": "#00ff0080"}]}`

	data, cfg, err := parseChartFile([]byte(raw))
	require.NoError(t, err)
	require.Equal(t, 40.0, cfg.OuterRadius())
	require.Equal(t, "#00ff0080", data[0].Color.Literal())
}

func TestParseChartFile_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"bad center", "center: [1]\n"},
		{"bad color", "center: [1, 1]\ndata:\n  - value: 1\n    color: \"#zzz\"\n"},
		{"unknown name", "center: [1, 1]\ndata:\n  - value: 1\n    color: notacolor\n"},
		{"not yaml", "center: [1, 1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := parseChartFile([]byte(tt.raw))
			require.Error(t, err)
		})
	}
}

func TestLoadChartFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlChart), 0o644))

	data, _, err := loadChartFile(path)
	require.NoError(t, err)
	require.Len(t, data, 3)

	_, _, err = loadChartFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestWriteSummary(t *testing.T) {
	chart := &graphis.Chart{
		Width:  500,
		Height: 500,
		Sectors: []graphis.Sector{
			{Fill: "#ff0000", Percent: 50},
			{Fill: "#0000ff80", Percent: 50},
		},
	}

	var buf bytes.Buffer
	writeSummary(&buf, chart, language.English)

	out := buf.String()
	require.Contains(t, out, "2 sectors, 500x500")
	require.Contains(t, out, "#ff0000")
	require.Contains(t, out, "#0000ff80")
	require.Contains(t, out, "#2 50.00%")
}

func TestOpaque(t *testing.T) {
	require.Equal(t, "#0000ff", opaque("#0000ff80"))
	require.Equal(t, "#0000ff", opaque("#0000ff"))
}
