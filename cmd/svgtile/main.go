// Command svgtile renders a YAML tile sheet into an SVG file.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/vasalvit/svgpath/internal/config"
	"github.com/vasalvit/svgpath/internal/log"
	"github.com/vasalvit/svgpath/internal/render"
)

func main() {
	configPath := flag.String("config", "sheet.yaml", "tile sheet to render")
	outPath := flag.String("out", "", "output file (default stdout)")
	logLevel := flag.String("log-level", "", "debug, info, warn or error (overrides the sheet)")
	flag.Parse()

	if err := run(context.Background(), *configPath, *outPath, *logLevel); err != nil {
		fmt.Fprintln(os.Stderr, "svgtile:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath, outPath, logLevel string) error {
	sheet, err := config.LoadFile(configPath)
	if err != nil {
		return err
	}

	if logLevel == "" {
		logLevel = sheet.LogLevel
	}
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	logger := log.New(level)
	defer logger.Sync() //nolint:errcheck

	logger.Info("loaded sheet",
		log.String("path", configPath),
		log.Int("fragments", len(sheet.Fragments)),
	)

	doc, err := render.Render(ctx, sheet, logger)
	if err != nil {
		logger.Error("render failed", log.Err(err))
		return err
	}

	var w io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return errors.Wrap(err, "failed to create output")
		}
		defer f.Close()
		w = f
	}

	if err := doc.Encode(w); err != nil {
		return err
	}
	logger.Info("wrote document", log.String("out", outPath))
	return nil
}
