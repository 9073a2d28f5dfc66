package source

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/midbel/speedchart/animal"
)

const onceKey = "fetch"

// Once wraps a Source so that it is fetched at most once successfully.
// Concurrent calls share the same fetch. A failed fetch is not cached.
type Once struct {
	src   Source
	group singleflight.Group

	mu   sync.Mutex
	rows []animal.RawRow
	done bool
}

func NewOnce(src Source) *Once {
	return &Once{
		src: src,
	}
}

func (o *Once) Fetch(ctx context.Context) ([]animal.RawRow, error) {
	if rows, ok := o.cached(); ok {
		return rows, nil
	}
	ch := o.group.DoChan(onceKey, func() (interface{}, error) {
		if rows, ok := o.cached(); ok {
			return rows, nil
		}
		rows, err := o.src.Fetch(ctx)
		if err != nil {
			return nil, err
		}
		o.mu.Lock()
		defer o.mu.Unlock()
		o.rows, o.done = rows, true
		return rows, nil
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]animal.RawRow), nil
	}
}

func (o *Once) cached() ([]animal.RawRow, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.rows, o.done
}
