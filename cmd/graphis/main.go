// Command graphis renders a pie or donut chart described in a YAML or JSON
// file into an SVG document, and optionally a PNG preview.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"golang.org/x/text/language"

	"github.com/vasalvit/graphis"
	"github.com/vasalvit/graphis/raster"
)

func main() {
	var (
		config  = flag.String("config", "chart.yaml", "chart file (YAML or JSON)")
		output  = flag.String("out", graphis.DefaultOutput, "SVG output file")
		pngOut  = flag.String("png", "", "optional PNG preview file")
		seed    = flag.Int64("seed", 0, "seed for random sector colors, 0 uses the clock")
		palette = flag.String("palette", "random", "colors for sectors without one: random or alternate")
		lang    = flag.String("lang", "en", "language used to format the summary")
		inspect = flag.String("inspect", "", "print the sectors of an existing SVG file and exit")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	graphis.SetLogger(logger)

	tag, err := language.Parse(*lang)
	if err != nil {
		tag = language.English
	}

	if *inspect != "" {
		err = runInspect(*inspect)
	} else {
		err = run(*config, *output, *pngOut, *palette, *seed, tag)
	}
	if err != nil {
		logger.Error("graphis failed", "err", err)
		os.Exit(1)
	}
}

func run(config, output, pngOut, palette string, seed int64, tag language.Tag) error {
	data, cfg, err := loadChartFile(config)
	if err != nil {
		return err
	}
	source, err := colorSource(palette, seed)
	if err != nil {
		return err
	}

	chart, err := graphis.GeneratePieChart(data, cfg, output, graphis.WithColorSource(source))
	if err != nil {
		return err
	}
	graphis.Logger().Debug("chart written", "path", output)

	if pngOut != "" {
		img, err := raster.Rasterize(bytes.NewReader(graphis.Render(chart)))
		if err != nil {
			return err
		}
		if err := raster.SavePNG(pngOut, img); err != nil {
			return err
		}
	}

	writeSummary(os.Stdout, chart, tag)
	return nil
}

func runInspect(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := graphis.ParseSvgFromReader(f, path, 0)
	if err != nil {
		return err
	}
	return writeInspection(os.Stdout, doc)
}

func colorSource(name string, seed int64) (graphis.ColorSource, error) {
	switch name {
	case "random":
		if seed == 0 {
			return graphis.RandomColors(nil), nil
		}
		return graphis.RandomColors(rand.New(rand.NewSource(seed))), nil
	case "alternate":
		return graphis.AlternatePalette(), nil
	}
	return nil, fmt.Errorf("unknown palette %q", name)
}
