package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vasalvit/graphis"
)

// chartFile is the on-disk description of a chart. JSON files are read
// too, JSON being valid YAML.
type chartFile struct {
	Width           int         `yaml:"width"`
	Height          int         `yaml:"height"`
	Center          []float64   `yaml:"center"`
	InnerRadius     float64     `yaml:"innerRadius"`
	RadialWidth     float64     `yaml:"radialWidth"`
	InitialRotation float64     `yaml:"initialRotation"`
	Data            []dataEntry `yaml:"data"`
}

type dataEntry struct {
	Value float64 `yaml:"value"`
	// Color is a #rrggbb[aa] literal or a color name; empty picks one.
	Color string `yaml:"color"`
}

func loadChartFile(path string) ([]graphis.DataPoint, graphis.PieChartConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, graphis.PieChartConfig{}, err
	}
	return parseChartFile(raw)
}

func parseChartFile(raw []byte) ([]graphis.DataPoint, graphis.PieChartConfig, error) {
	var f chartFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, graphis.PieChartConfig{}, fmt.Errorf("decode chart file: %w", err)
	}
	if len(f.Center) != 2 {
		return nil, graphis.PieChartConfig{}, fmt.Errorf("center must be [x, y], got %v", f.Center)
	}

	cfg := graphis.PieChartConfig{
		Width:           f.Width,
		Height:          f.Height,
		Center:          graphis.Tuple{f.Center[0], f.Center[1]},
		InnerRadius:     f.InnerRadius,
		RadialWidth:     f.RadialWidth,
		InitialRotation: f.InitialRotation,
	}

	data := make([]graphis.DataPoint, 0, len(f.Data))
	for i, d := range f.Data {
		c, err := parseColor(d.Color)
		if err != nil {
			return nil, cfg, fmt.Errorf("data point %d: %w", i, err)
		}
		data = append(data, graphis.DataPoint{Value: d.Value, Color: c})
	}
	return data, cfg, nil
}

func parseColor(s string) (graphis.Color, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return graphis.Color{}, nil
	case strings.HasPrefix(s, "#"):
		return graphis.ParseColor(s)
	default:
		return graphis.NamedColor(s)
	}
}
