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
	"log"
	"net/http"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/gorilla/mux"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/topmap/TopMap/blacklist"
	"github.com/topmap/TopMap/blocks"
	"github.com/topmap/TopMap/colors"
)

// paletteStore holds the palette and blacklist served over http and swaps
// them when their files change on disk.
type paletteStore struct {
	lock          sync.RWMutex
	palette       colors.Palette
	blacklist     *blacklist.Blacklist
	colorFile     string
	blacklistFile string
	outputDir     string
}

func newPaletteStore(colorFile, blacklistFile, outputDir string) (*paletteStore, error) {
	s := &paletteStore{
		colorFile:     colorFile,
		blacklistFile: blacklistFile,
		outputDir:     outputDir,
	}
	return s, s.reload()
}

func (s *paletteStore) reload() error {
	p, err := colors.LoadPalette(s.colorFile)
	if err != nil {
		return err
	}
	bl, err := blacklist.Load(s.blacklistFile)
	if err != nil {
		return err
	}
	s.lock.Lock()
	s.palette = p
	s.blacklist = bl
	s.lock.Unlock()
	return nil
}

func (s *paletteStore) get() (colors.Palette, *blacklist.Blacklist) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.palette, s.blacklist
}

func (s *paletteStore) watch(ctx context.Context) {
	log.Println("Starting filesystem watcher for palette and blacklist")
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Println("Failed to create watcher: ", err)
		return
	}
	defer watcher.Close()
	watched := map[string]bool{
		filepath.Clean(s.colorFile):     true,
		filepath.Clean(s.blacklistFile): true,
	}
	for f := range watched {
		dir := filepath.Dir(f)
		if err := watcher.Add(dir); err != nil {
			log.Printf("Failed to add watcher path %s: %v", dir, err)
		}
	}
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				log.Println("Palette watcher failed to read from events channel")
				return
			}
			if !watched[filepath.Clean(event.Name)] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				log.Println("Reloading palette and blacklist after", event)
				if err := s.reload(); err != nil {
					log.Println("Error while reloading palette:", err.Error())
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				log.Println("Palette watcher failed to read from error channel")
				return
			}
			log.Println("Palette watcher error:", err)
		case <-ctx.Done():
			log.Println("Palette watcher stopped")
			return
		}
	}
}

func hexColor(c colors.RGB) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}

type paletteEntry struct {
	Name  string     `json:"name"`
	Color colors.RGB `json:"color"`
	Hex   string     `json:"hex"`
}

func (s *paletteStore) colorsHandlerGET(w http.ResponseWriter, r *http.Request) (int, string) {
	setContentTypeJson(w)
	offset, err := queryInt(r, "o", 0)
	if err != nil {
		return marshalOrFail(400, map[string]any{"error": "Failed to parse offset: " + err.Error()})
	}
	count, err := queryInt(r, "c", 1000)
	if err != nil {
		return marshalOrFail(400, map[string]any{"error": "Failed to parse count: " + err.Error()})
	}
	p, _ := s.get()
	keys := p.Keys()
	ret := []paletteEntry{}
	for i := offset; i >= 0 && i < len(keys) && i < offset+count; i++ {
		ret = append(ret, paletteEntry{Name: keys[i], Color: p[keys[i]], Hex: hexColor(p[keys[i]])})
	}
	return marshalOrFail(200, map[string]any{
		"offset": offset,
		"count":  len(ret),
		"total":  len(keys),
		"colors": ret,
	})
}

// colorLookupHandler resolves a block the way a render would, query
// parameters become block properties.
func (s *paletteStore) colorLookupHandler(w http.ResponseWriter, r *http.Request) (int, string) {
	setContentTypeJson(w)
	props := map[string]any{}
	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			props[k] = v[0]
		}
	}
	b, err := blocks.New(blocks.Ref{BaseName: mux.Vars(r)["name"], Properties: props})
	if err != nil {
		return marshalOrFail(400, map[string]any{"error": err.Error()})
	}
	p, bl := s.get()
	key, c, ok := colors.ResolveKey(b, p)
	if !ok {
		return marshalOrFail(404, map[string]any{
			"block":       b,
			"blacklisted": bl.MatchesBlock(b.BaseName),
			"error":       "no color for block",
		})
	}
	return marshalOrFail(200, map[string]any{
		"block":       b,
		"blacklisted": bl.MatchesBlock(b.BaseName),
		"key":         key,
		"color":       c,
		"hex":         hexColor(c),
	})
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}
