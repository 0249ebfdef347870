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
	"io"

	"github.com/klauspost/compress/zip"
)

// Jar is a TextureSource over a game jar or any zip archive.
type Jar struct {
	files  []*zip.File
	byName map[string]*zip.File
	closer io.Closer
}

func OpenJar(fpath string) (*Jar, error) {
	r, err := zip.OpenReader(fpath)
	if err != nil {
		return nil, err
	}
	j := newJar(r.File)
	j.closer = r
	return j, nil
}

func NewJar(r io.ReaderAt, size int64) (*Jar, error) {
	z, err := zip.NewReader(r, size)
	if err != nil {
		return nil, err
	}
	return newJar(z.File), nil
}

func newJar(files []*zip.File) *Jar {
	j := &Jar{files: files, byName: make(map[string]*zip.File, len(files))}
	for _, f := range files {
		j.byName[f.Name] = f
	}
	return j
}

func (j *Jar) Names() []string {
	ret := make([]string, len(j.files))
	for i, f := range j.files {
		ret[i] = f.Name
	}
	return ret
}

func (j *Jar) Read(name string) ([]byte, error) {
	f, ok := j.byName[name]
	if !ok {
		return nil, fmt.Errorf("%s not in archive", name)
	}
	r, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

func (j *Jar) Close() error {
	if j.closer == nil {
		return nil
	}
	return j.closer.Close()
}
