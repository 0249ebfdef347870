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

package render

import (
	"sort"
	"sync"

	"github.com/topmap/TopMap/blocks"
)

// UnknownBlocks collects blocks that had no palette entry, keyed by their
// JSON form.
type UnknownBlocks struct {
	lock  sync.Mutex
	lines map[string]struct{}
}

func NewUnknownBlocks() *UnknownBlocks {
	return &UnknownBlocks{lines: map[string]struct{}{}}
}

func (u *UnknownBlocks) Add(b blocks.Block) {
	u.lock.Lock()
	u.lines[b.JSON()] = struct{}{}
	u.lock.Unlock()
}

func (u *UnknownBlocks) Len() int {
	u.lock.Lock()
	defer u.lock.Unlock()
	return len(u.lines)
}

func (u *UnknownBlocks) Sorted() []string {
	u.lock.Lock()
	defer u.lock.Unlock()
	ret := make([]string, 0, len(u.lines))
	for l := range u.lines {
		ret = append(ret, l)
	}
	sort.Strings(ret)
	return ret
}
