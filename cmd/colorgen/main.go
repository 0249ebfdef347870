package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"github.com/topmap/TopMap/blacklist"
	"github.com/topmap/TopMap/colorgen"
	"github.com/topmap/TopMap/colors"
	"github.com/topmap/TopMap/lib/clog"
)

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatal("Error loading .env file: " + err.Error())
	}
	var (
		jarPath  = flag.String("jar", os.Getenv("MC_VERSION_FILE"), "Path to Minecraft client jar")
		blPath   = flag.String("blacklist", envOr("BLACKLIST_FILE", "data/blacklist.json"), "Path to blacklist")
		outPath  = flag.String("out", envOr("COLOR_FILE", "data/colors.json"), "Where to write the palette")
		defColor = flag.String("default", envOr("DEFAULT_COLOR", "255,0,255"), "Color for unknown blocks, r,g,b")
	)
	flag.Parse()
	logger := clog.Std()
	if *jarPath == "" {
		logger.Fatalf("No jar given, set MC_VERSION_FILE or pass -jar")
	}
	def, err := colors.ParseRGB(*defColor)
	if err != nil {
		logger.Fatalf("Bad default color: %v", err)
	}
	bl, err := blacklist.Load(*blPath)
	if err != nil {
		logger.Fatalf("Failed to load blacklist %s: %v", *blPath, err)
	}
	jar, err := colorgen.OpenJar(*jarPath)
	if err != nil {
		logger.Fatalf("Failed to open %s: %v", *jarPath, err)
	}
	defer jar.Close()
	p, err := colorgen.Generate(jar, bl, colorgen.Options{Default: def, Logger: logger})
	if err != nil {
		var merr *multierror.Error
		if errors.As(err, &merr) {
			logger.Warnf("%d textures failed to process", len(merr.Errors))
		} else {
			logger.Warnf("Textures failed to process: %v", err)
		}
	}
	if err := p.Save(*outPath); err != nil {
		logger.Fatalf("Failed to save palette: %v", err)
	}
	logger.Successf("Saved %d colors to %s", len(p), *outPath)
}
