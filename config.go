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
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/maxsupermanhd/lac"
	"github.com/topmap/TopMap/colors"
)

var (
	ErrMissingSetting = errors.New("required setting missing")
	ErrBadSetting     = errors.New("bad setting value")
)

const (
	sourceFilesystem = "filesystem"
	sourcePostgres   = "postgres"
)

type TopMapConfig struct {
	MapPath        string
	X1, Z1, X2, Z2 int
	OutputWidth    int
	OutputDir      string
	BlacklistFile  string
	ColorFile      string
	DefaultColor   colors.RGB
	ProgressText   bool
	Dimension      string
	WorldSource    string
	PostgresDSN    string
	ThumbnailWidth int
	LogsPath       string
	WebListen      string
	Debug          bool
}

// settings resolves a key from the environment first and the JSON config
// file second. Keys in the file are the lower case environment names.
type settings struct {
	file   *lac.Conf
	lookup func(string) (string, bool)
}

func configFilePath(lookup func(string) (string, bool)) string {
	if p, ok := lookup("TOPMAP_CONFIG"); ok && p != "" {
		return p
	}
	return "config.json"
}

// openConfigFile returns nil when there is no config file.
func openConfigFile(fpath string) (*lac.Conf, error) {
	if _, err := os.Stat(fpath); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return lac.FromFileJSON(fpath)
}

func (s settings) str(def, key string) string {
	if v, ok := s.lookup(key); ok {
		return v
	}
	if s.file != nil {
		return s.file.GetDSString(def, strings.ToLower(key))
	}
	return def
}

func (s settings) integer(def int, key string) (int, error) {
	if v, ok := s.lookup(key); ok {
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrBadSetting, key, v)
		}
		return i, nil
	}
	if s.file != nil {
		return s.fileInt(def, key)
	}
	return def, nil
}

// fileInt reads a JSON number, which the config file holds as float64.
func (s settings) fileInt(def int, key string) (int, error) {
	f, ok := s.file.GetFloat64(strings.ToLower(key))
	if !ok {
		return def, nil
	}
	if f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %s=%v is not an integer", ErrBadSetting, strings.ToLower(key), f)
	}
	return int(f), nil
}

func (s settings) required(key string) (int, error) {
	v, err := s.integer(math.MinInt, key)
	if err != nil {
		return 0, err
	}
	if v == math.MinInt {
		return 0, fmt.Errorf("%w: %s", ErrMissingSetting, key)
	}
	return v, nil
}

func (s settings) boolean(def bool, key string) (bool, error) {
	if v, ok := s.lookup(key); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, fmt.Errorf("%w: %s=%q is not a boolean", ErrBadSetting, key, v)
		}
		return b, nil
	}
	if s.file != nil {
		return s.file.GetDSBool(def, strings.ToLower(key)), nil
	}
	return def, nil
}

// loadConfig reads all settings. World and area settings are only
// required and checked when forRender is set.
func loadConfig(lookup func(string) (string, bool), forRender bool) (*TopMapConfig, error) {
	file, err := openConfigFile(configFilePath(lookup))
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return parseConfig(settings{file: file, lookup: lookup}, forRender)
}

func parseConfig(s settings, forRender bool) (*TopMapConfig, error) {
	c := &TopMapConfig{
		MapPath:       s.str("", "MAP_PATH"),
		OutputDir:     s.str("output", "OUTPUT_DIR"),
		BlacklistFile: s.str("data/blacklist.json", "BLACKLIST_FILE"),
		ColorFile:     s.str("data/colors.json", "COLOR_FILE"),
		Dimension:     s.str("minecraft:overworld", "DIMENSION"),
		WorldSource:   strings.ToLower(s.str(sourceFilesystem, "WORLD_SOURCE")),
		PostgresDSN:   s.str("", "POSTGRES_DSN"),
		LogsPath:      s.str("logs/TopMap.log", "LOGS_PATH"),
		WebListen:     s.str("127.0.0.1:3002", "WEB_LISTEN"),
		Debug:         s.str("", "DEBUG") != "",
	}
	var err error
	if c.OutputWidth, err = s.integer(1920, "OUTPUT_WIDTH"); err != nil {
		return nil, err
	}
	if c.OutputWidth <= 0 {
		return nil, fmt.Errorf("%w: OUTPUT_WIDTH must be positive", ErrBadSetting)
	}
	if c.ThumbnailWidth, err = s.integer(0, "THUMBNAIL_WIDTH"); err != nil {
		return nil, err
	}
	if c.ProgressText, err = s.boolean(true, "PROGRESS_TEXT"); err != nil {
		return nil, err
	}
	if c.DefaultColor, err = colors.ParseRGB(s.str("255,0,255", "DEFAULT_COLOR")); err != nil {
		return nil, fmt.Errorf("DEFAULT_COLOR: %w", err)
	}
	if !forRender {
		return c, nil
	}
	for _, r := range []struct {
		key string
		to  *int
	}{{"X1", &c.X1}, {"Z1", &c.Z1}, {"X2", &c.X2}, {"Z2", &c.Z2}} {
		if *r.to, err = s.required(r.key); err != nil {
			return nil, err
		}
	}
	if c.MapPath == "" {
		return nil, fmt.Errorf("%w: MAP_PATH", ErrMissingSetting)
	}
	switch c.WorldSource {
	case sourceFilesystem:
		fi, err := os.Stat(c.MapPath)
		if err != nil {
			return nil, fmt.Errorf("world path: %w", err)
		}
		if !fi.IsDir() {
			return nil, fmt.Errorf("%w: world path %s is not a directory", ErrBadSetting, c.MapPath)
		}
	case sourcePostgres:
		if c.PostgresDSN == "" {
			return nil, fmt.Errorf("%w: POSTGRES_DSN", ErrMissingSetting)
		}
	default:
		return nil, fmt.Errorf("%w: unknown WORLD_SOURCE %q", ErrBadSetting, c.WorldSource)
	}
	return c, nil
}
