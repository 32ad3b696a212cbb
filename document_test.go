package graphis

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func testChart(t *testing.T, values ...float64) *Chart {
	t.Helper()
	chart, err := NewPieChartGenerator(points(values...), testConfig(), seeded()).GenerateGraph()
	require.NoError(t, err)
	return chart
}

func TestRender(t *testing.T) {
	chart := testChart(t, 1, 2, 3)
	out := string(Render(chart))

	require.Contains(t, out, `xmlns="`+NamespaceURL+`"`)
	require.Contains(t, out, `<style`)
	require.Contains(t, out, `width="500"`)
	require.NotContains(t, out, `<g id=`)

	svg, err := ParseSvg(out, "chart", 0)
	require.NoError(t, err)
	require.Equal(t, "500", svg.Width)
	require.Equal(t, "500", svg.Height)
	require.Contains(t, svg.Style, "path:hover")

	paths := svg.Paths()
	require.Len(t, paths, len(chart.Sectors))
	for i, p := range paths {
		require.Equal(t, chart.Sectors[i].PathData, p.D)
		require.Equal(t, chart.Sectors[i].Fill, p.Fill)
	}
}

func TestPage_MultipleCharts(t *testing.T) {
	page := NewPage(1000, 500).
		Add(testChart(t, 1, 1)).
		Add(nil).
		Add(testChart(t, 1, 2, 3))
	require.Len(t, page.Charts(), 2)

	var buf bytes.Buffer
	n, err := page.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(buf.Len()), n)

	out := buf.String()
	require.Contains(t, out, `<g id="chart-0"`)
	require.Contains(t, out, `<g id="chart-1"`)

	svg, err := ParseSvg(out, "page", 0)
	require.NoError(t, err)
	require.Len(t, svg.Elements, 2)
	require.Len(t, svg.Paths(), 5)
}

func TestSave_CreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "graph.svg")
	chart := testChart(t, 1, 1)

	require.NoError(t, Save(path, chart))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, Render(chart), b)
}

func TestSave_Error(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	err := Save(filepath.Join(file, "graph.svg"), testChart(t, 1))
	require.Error(t, err)
}

func TestGeneratePieChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "pie.svg")

	chart, err := GeneratePieChart(points(5, 3, 2), testConfig(), path, seeded())
	require.NoError(t, err)
	require.Len(t, chart.Sectors, 3)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, 3, strings.Count(string(b), "<path "))
}

func TestGeneratePieChart_InvalidDataWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pie.svg")

	chart, err := GeneratePieChart(points(5, 0), testConfig(), path)
	require.ErrorIs(t, err, ErrInvalidData)
	require.Nil(t, chart)

	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err))
}
