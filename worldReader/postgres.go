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
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/topmap/TopMap/blocks"
)

const newestChunkQuery = `
		select data
		from chunks
		where x = $1 AND z = $2 AND
			dim = (select dimensions.id
			 from dimensions
			 where dimensions.world = $3 and dimensions.name = $4)
		order by created_at desc
		limit 1;`

// PostgresReader reads the newest stored version of every chunk of one world
// from a WebChunk database.
type PostgresReader struct {
	World  string
	dbpool *pgxpool.Pool
	chunks *chunkCache
}

func NewPostgresReader(ctx context.Context, connection, world string) (*PostgresReader, error) {
	p, err := pgxpool.Connect(ctx, connection)
	if err != nil {
		return nil, err
	}
	r := &PostgresReader{World: world, dbpool: p}
	r.chunks = newChunkCache(DefaultChunkCacheSize, r.loadChunk)
	return r, nil
}

func (r *PostgresReader) GetBlock(x, y, z int, dim string) (blocks.Ref, error) {
	c, err := r.chunks.get(locateChunk(x, z, dim))
	if err != nil {
		return blocks.Ref{}, err
	}
	return c.blockAt(x&15, y, z&15)
}

func (r *PostgresReader) Bounds(dim string) (int, int) {
	return DimensionBounds(dim)
}

func (r *PostgresReader) Close() error {
	r.dbpool.Close()
	return nil
}

// ChunkCount returns how many chunk rows are stored for dim.
func (r *PostgresReader) ChunkCount(ctx context.Context, dim string) (count uint64, err error) {
	err = r.dbpool.QueryRow(ctx, `
		select count(id)
		from chunks
		where dim = (select dimensions.id
			 from dimensions
			 where dimensions.world = $1 and dimensions.name = $2);`, r.World, TrimNamespace(dim)).Scan(&count)
	return count, err
}

func (r *PostgresReader) loadChunk(loc chunkLocator) (*decodedChunk, error) {
	var d []byte
	err := r.dbpool.QueryRow(context.Background(), newestChunkQuery, loc.cx, loc.cz, r.World, loc.dim).Scan(&d)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("chunk %d %d: %w", loc.cx, loc.cz, ErrChunkNotFound)
		}
		return nil, fmt.Errorf("querying chunk %d %d: %w", loc.cx, loc.cz, err)
	}
	c, err := decodeRawChunk(d)
	if err != nil {
		return nil, fmt.Errorf("chunk %d %d: %w", loc.cx, loc.cz, err)
	}
	return c, nil
}
