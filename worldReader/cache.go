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

package worldReader

import (
	"container/list"
	"sync"
)

const DefaultChunkCacheSize = 256

type chunkLocator struct {
	dim    string
	cx, cz int
}

func locateChunk(x, z int, dim string) chunkLocator {
	return chunkLocator{dim: TrimNamespace(dim), cx: x >> 4, cz: z >> 4}
}

type cachedChunk struct {
	loc   chunkLocator
	chunk *decodedChunk
	err   error
}

// chunkCache keeps the most recently used decoded chunks, failed loads
// included so a missing chunk is not looked up again for every y.
type chunkCache struct {
	lock    sync.Mutex
	size    int
	entries map[chunkLocator]*list.Element
	backlog *list.List
	load    func(chunkLocator) (*decodedChunk, error)
}

func newChunkCache(size int, load func(chunkLocator) (*decodedChunk, error)) *chunkCache {
	if size <= 0 {
		size = DefaultChunkCacheSize
	}
	return &chunkCache{
		size:    size,
		entries: map[chunkLocator]*list.Element{},
		backlog: list.New(),
		load:    load,
	}
}

func (c *chunkCache) get(loc chunkLocator) (*decodedChunk, error) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if e, ok := c.entries[loc]; ok {
		c.backlog.MoveToFront(e)
		v := e.Value.(*cachedChunk)
		return v.chunk, v.err
	}
	chunk, err := c.load(loc)
	c.entries[loc] = c.backlog.PushFront(&cachedChunk{loc: loc, chunk: chunk, err: err})
	for c.backlog.Len() > c.size {
		last := c.backlog.Back()
		c.backlog.Remove(last)
		delete(c.entries, last.Value.(*cachedChunk).loc)
	}
	return chunk, err
}

func (c *chunkCache) len() int {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.backlog.Len()
}
