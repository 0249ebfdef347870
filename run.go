/*
	TopMap, top-down renderer for block game maps
	Copyright (C) 2022 Maxim Zhuchkov

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU Affero General Public License as published
	by the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU Affero General Public License for more details.

	You should have received a copy of the GNU Affero General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.

	Contact me via mail: q3.max.2011@yandex.ru or Discord: MaX#6717
*/

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/mem"
	"github.com/topmap/TopMap/blacklist"
	"github.com/topmap/TopMap/colors"
	"github.com/topmap/TopMap/lib/clog"
	"github.com/topmap/TopMap/output"
	"github.com/topmap/TopMap/render"
	"github.com/topmap/TopMap/worldReader"
	"go.uber.org/atomic"
)

func openWorld(cfg *TopMapConfig, logger *clog.Logger) (worldReader.Reader, error) {
	switch cfg.WorldSource {
	case sourcePostgres:
		r, err := worldReader.NewPostgresReader(context.Background(), cfg.PostgresDSN, cfg.MapPath)
		if err != nil {
			return nil, err
		}
		count, err := r.ChunkCount(context.Background(), cfg.Dimension)
		if err != nil {
			logger.Warnf("Failed to count stored chunks: %v", err)
		} else {
			logger.Infof("World %s has %s stored chunks in %s", cfg.MapPath, humanize.Comma(int64(count)), cfg.Dimension)
		}
		return r, nil
	default:
		r, err := worldReader.NewFilesystemReader(cfg.MapPath, logger)
		if err != nil {
			return nil, err
		}
		regions, err := r.ListRegions(cfg.Dimension)
		if err != nil {
			logger.Warnf("Failed to list region files: %v", err)
		} else {
			logger.Infof("World %s has %d region files in %s", cfg.MapPath, len(regions), cfg.Dimension)
		}
		return r, nil
	}
}

// checkMemory warns when the canvas alone would not fit in free memory.
func checkMemory(w, h int, logger *clog.Logger) {
	need := uint64(w) * uint64(h) * 4
	vm, err := mem.VirtualMemory()
	if err != nil {
		logger.Warnf("Failed to read memory stats: %v", err)
		return
	}
	if need > vm.Available {
		logger.Warnf("Canvas needs %s but only %s is available", humanize.Bytes(need), humanize.Bytes(vm.Available))
	}
}

// progressPrinter reports once per percent of finished columns.
func progressPrinter(logger *clog.Logger) func(done, total int) {
	last := -1
	return func(done, total int) {
		pct := done * 100 / total
		if pct == last {
			return
		}
		last = pct
		logger.Progressf("%s/%s columns (%d%%)", humanize.Comma(int64(done)), humanize.Comma(int64(total)), pct)
	}
}

// interruptOnSignal sets the returned flag on the first SIGINT or SIGTERM.
// Later signals get the default behavior so a second Ctrl-C kills the process.
func interruptOnSignal(sigs chan os.Signal, logger *clog.Logger) (*atomic.Bool, func()) {
	interrupt := atomic.NewBool(false)
	done := make(chan struct{})
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigs:
			signal.Stop(sigs)
			logger.Warnf("Interrupted, saving what was rendered so far. Interrupt again to quit")
			interrupt.Store(true)
		case <-done:
		}
	}()
	return interrupt, func() {
		signal.Stop(sigs)
		close(done)
	}
}

func runRender(cfg *TopMapConfig, palette colors.Palette, bl *blacklist.Blacklist, logger *clog.Logger) error {
	area := render.NormalizeArea(render.Area{X1: cfg.X1, Z1: cfg.Z1, X2: cfg.X2, Z2: cfg.Z2})
	if area.Width() <= 0 || area.Height() <= 0 {
		return fmt.Errorf("%s: %w", area, render.ErrInvalidArea)
	}
	reader, err := openWorld(cfg, logger)
	if err != nil {
		return fmt.Errorf("opening world: %w", err)
	}
	defer func() {
		if err := reader.Close(); err != nil {
			logger.Errorf("Failed to close world: %v", err)
		}
	}()
	imgW, imgH := render.ImageSize(area, cfg.OutputWidth)
	checkMemory(imgW, imgH, logger)
	logger.Infof("Rendering %s of %s (%s columns) into %dx%d", area, cfg.Dimension, humanize.Comma(int64(area.Width()*area.Height())), imgW, imgH)

	interrupt, stopInterrupt := interruptOnSignal(make(chan os.Signal, 1), logger)
	defer stopInterrupt()

	opts := render.Options{OutputWidth: cfg.OutputWidth, Interrupt: interrupt}
	if cfg.ProgressText {
		opts.Progress = progressPrinter(logger)
	}
	scanner := render.NewScanner(reader, palette, bl, cfg.DefaultColor, cfg.Dimension, logger)
	res, err := render.RenderMap(scanner, area, opts)
	if err != nil {
		return err
	}
	if cfg.ProgressText {
		logger.Donef("%s/%s columns", humanize.Comma(int64(res.Columns)), humanize.Comma(int64(res.Total)))
	}
	return saveResult(cfg, res, logger)
}

func saveResult(cfg *TopMapConfig, res *render.Result, logger *clog.Logger) error {
	p, err := output.SaveImage(res.Image, cfg.OutputDir, output.MapFilename)
	if err != nil {
		return err
	}
	if res.Interrupted {
		logger.Warnf("Partial map with %d of %d columns saved to %s", res.Columns, res.Total, p)
	} else {
		logger.Successf("Map saved to %s", p)
	}
	if p, err = output.SaveThumbnail(res.Image, cfg.OutputDir, cfg.ThumbnailWidth); err != nil {
		return err
	} else if p != "" {
		logger.Infof("Thumbnail saved to %s", p)
	}
	unknown := res.Unknown.Sorted()
	if p, err = output.SaveUnknownReport(unknown, cfg.OutputDir); err != nil {
		return err
	} else if p != "" {
		logger.Warnf("%d unknown blocks listed in %s", len(unknown), p)
	}
	return nil
}
