package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// maxTxRetries bounds optimistic retries when a watched key changes mid-unit.
const maxTxRetries = 5

// hashReader is the read surface of a *redis.Tx.
type hashReader interface {
	HGet(ctx context.Context, key, field string) *redis.StringCmd
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
}

type redisRepository struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisRepository stores each table as one hash named "<prefix>:<table>".
func NewRedisRepository(rdb *redis.Client, prefix string) Repository {
	if prefix == "" {
		prefix = "multiai"
	}
	return &redisRepository{rdb: rdb, prefix: prefix}
}

// Key Generation Helpers
func (r *redisRepository) tableKey(table Table) string { return fmt.Sprintf("%s:%s", r.prefix, table) }

func (r *redisRepository) allKeys() []string {
	keys := make([]string, len(Tables))
	for i, t := range Tables {
		keys[i] = r.tableKey(t)
	}
	return keys
}

// View watches every table hash while fn reads, then confirms with a read-only
// MULTI/EXEC that nothing changed. A concurrent Update aborts the check and fn
// runs again, so fn always sees one consistent state across tables.
func (r *redisRepository) View(ctx context.Context, fn func(tx Tx) error) error {
	return r.watch(ctx, func(rtx *redis.Tx) error {
		fnErr := fn(&redisTx{repo: r, reader: rtx, readOnly: true})
		_, err := rtx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Exists(ctx, r.tableKey(Settings))
			return nil
		})
		// A failure seen on a torn read is retried like any other.
		if errors.Is(err, redis.TxFailedErr) {
			return err
		}
		if fnErr != nil {
			return fnErr
		}
		return err
	})
}

// Update watches every table hash, lets fn read and buffer writes, then applies
// the buffered writes in one MULTI/EXEC. A concurrent change aborts EXEC and the
// whole unit is retried.
func (r *redisRepository) Update(ctx context.Context, fn func(tx Tx) error) error {
	txf := func(rtx *redis.Tx) error {
		t := &redisTx{repo: r, reader: rtx}
		if err := fn(t); err != nil {
			return err
		}
		if len(t.writes) == 0 {
			return nil
		}
		_, err := rtx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for _, w := range t.writes {
				key := r.tableKey(w.table)
				if w.deleted {
					pipe.HDel(ctx, key, w.id)
				} else {
					pipe.HSet(ctx, key, w.id, w.value)
				}
			}
			return nil
		})
		return err
	}

	return r.watch(ctx, txf)
}

func (r *redisRepository) watch(ctx context.Context, txf func(*redis.Tx) error) error {
	for i := 0; i < maxTxRetries; i++ {
		err := r.rdb.Watch(ctx, txf, r.allKeys()...)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return fmt.Errorf("redis transaction failed after %d attempts: %w", maxTxRetries, redis.TxFailedErr)
}

func (r *redisRepository) Close() error {
	return r.rdb.Close()
}

type pendingWrite struct {
	table   Table
	id      string
	value   []byte
	deleted bool
}

// redisTx buffers writes and overlays them on reads so fn sees its own changes.
type redisTx struct {
	repo     *redisRepository
	reader   hashReader
	readOnly bool
	writes   []pendingWrite
}

func (t *redisTx) pending(table Table, id string) (pendingWrite, bool) {
	for i := len(t.writes) - 1; i >= 0; i-- {
		w := t.writes[i]
		if w.table == table && w.id == id {
			return w, true
		}
	}
	return pendingWrite{}, false
}

func (t *redisTx) Get(ctx context.Context, table Table, id string) ([]byte, error) {
	if !table.valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}
	if w, ok := t.pending(table, id); ok {
		if w.deleted {
			return nil, ErrNotFound
		}
		return w.value, nil
	}
	value, err := t.reader.HGet(ctx, t.repo.tableKey(table), id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return value, nil
}

func (t *redisTx) List(ctx context.Context, table Table) (map[string][]byte, error) {
	if !table.valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}
	all, err := t.reader.HGetAll(ctx, t.repo.tableKey(table)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}
	out := make(map[string][]byte, len(all))
	for id, value := range all {
		out[id] = []byte(value)
	}
	for _, w := range t.writes {
		if w.table != table {
			continue
		}
		if w.deleted {
			delete(out, w.id)
		} else {
			out[w.id] = w.value
		}
	}
	return out, nil
}

func (t *redisTx) Put(ctx context.Context, table Table, id string, value []byte) error {
	if t.readOnly {
		return ErrReadOnly
	}
	if !table.valid() {
		return fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}
	t.writes = append(t.writes, pendingWrite{table: table, id: id, value: value})
	return nil
}

func (t *redisTx) Delete(ctx context.Context, table Table, id string) error {
	if t.readOnly {
		return ErrReadOnly
	}
	if _, err := t.Get(ctx, table, id); err != nil {
		return err
	}
	t.writes = append(t.writes, pendingWrite{table: table, id: id, deleted: true})
	return nil
}
