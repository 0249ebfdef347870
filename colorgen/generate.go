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

package colorgen

import (
	"fmt"
	"path"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-multierror"
	"github.com/topmap/TopMap/blacklist"
	"github.com/topmap/TopMap/colors"
	"github.com/topmap/TopMap/lib/clog"
)

const TexturePrefix = "assets/minecraft/textures/block/"

// TextureSource enumerates archive entries and reads them on demand.
type TextureSource interface {
	Names() []string
	Read(name string) ([]byte, error)
}

type Options struct {
	Default colors.RGB
	Logger  *clog.Logger
}

// BlockTextures filters names down to block texture images.
func BlockTextures(names []string) []string {
	ret := []string{}
	for _, n := range names {
		if strings.HasPrefix(n, TexturePrefix) && strings.HasSuffix(n, ".png") {
			ret = append(ret, n)
		}
	}
	return ret
}

// Generate averages every block texture of src into a palette. Textures that
// fail to read or decode are left out and reported together in the returned
// error, the palette is usable either way.
func Generate(src TextureSource, bl *blacklist.Blacklist, opts Options) (colors.Palette, error) {
	logger := opts.Logger
	if logger == nil {
		logger = clog.Discard()
	}
	files := BlockTextures(src.Names())
	logger.Infof("%s block textures found. Processing...", humanize.Comma(int64(len(files))))
	p := colors.Palette{}
	var errs error
	skipped, transparent := 0, 0
	for i, fpath := range files {
		logger.Progressf("%d/%d", i+1, len(files))
		filename := path.Base(fpath)
		if bl.MatchesTexture(filename) {
			skipped++
			continue
		}
		data, err := src.Read(fpath)
		if err != nil {
			logger.Errorf("Error reading %s: %v", fpath, err)
			errs = multierror.Append(errs, fmt.Errorf("reading %s: %w", fpath, err))
			continue
		}
		c, ok, err := AverageColor(data, filename)
		if err != nil {
			logger.Errorf("Error processing image %s: %v", filename, err)
			errs = multierror.Append(errs, err)
			continue
		}
		if !ok {
			transparent++
			continue
		}
		p.Set(Stem(filename), c)
	}
	logger.Donef("%d/%d", len(files), len(files))
	logger.Infof("Skipped %d blacklisted and %d transparent textures", skipped, transparent)
	p.AddReserved(opts.Default)
	return p, errs
}
