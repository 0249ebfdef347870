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
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/davecgh/go-spew/spew"
	"github.com/joho/godotenv"
	"github.com/topmap/TopMap/blacklist"
	"github.com/topmap/TopMap/colors"
	"github.com/topmap/TopMap/lib/clog"
)

var (
	BuildTime  = "00000000.000000"
	CommitHash = "0000000"
	GoVersion  = "0.0"
	GitTag     = "0.0"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	serve := flag.Bool("serve", false, "serve the palette browser instead of rendering a map")
	flag.Parse()
	buildinfo, ok := debug.ReadBuildInfo()
	if ok {
		GoVersion = buildinfo.GoVersion
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatal("Error loading .env file: " + err.Error())
	}
	cfg, err := loadConfig(os.LookupEnv, !*serve)
	if err != nil {
		log.Fatal("Error loading config: " + err.Error())
	}
	logfile := setupLogging(cfg.LogsPath)
	defer logfile.Close()
	logger := clog.Std()
	log.Println()
	log.Println("TopMap is starting up...")
	log.Printf("Built %s, Ver %s (%s) with %s\n", BuildTime, GitTag, CommitHash, GoVersion)
	log.Println()
	if cfg.Debug {
		log.Print(spew.Sdump(cfg))
	}

	if *serve {
		store, err := newPaletteStore(cfg.ColorFile, cfg.BlacklistFile, cfg.OutputDir)
		if err != nil {
			logger.Fatalf("Failed to load palette: %v", err)
		}
		exitchan := make(chan struct{})
		go func() {
			c := make(chan os.Signal, 1)
			signal.Notify(c, os.Interrupt, syscall.SIGTERM)
			<-c
			close(exitchan)
		}()
		runWeb(cfg.WebListen, store, exitchan)
		return
	}

	palette, err := colors.LoadPalette(cfg.ColorFile)
	if err != nil {
		logger.Fatalf("Failed to load palette %s: %v", cfg.ColorFile, err)
	}
	bl, err := blacklist.Load(cfg.BlacklistFile)
	if err != nil {
		logger.Fatalf("Failed to load blacklist %s: %v", cfg.BlacklistFile, err)
	}
	logger.Infof("Loaded %d colors from %s", len(palette), cfg.ColorFile)
	if err := runRender(cfg, palette, bl, logger); err != nil {
		logger.Fatalf("Render failed: %v", err)
	}
}
