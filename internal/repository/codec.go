package repository

import (
	"context"
	"encoding/json"
	"fmt"
)

// GetJSON loads one record and decodes it into a new T.
func GetJSON[T any](ctx context.Context, tx Tx, table Table, id string) (*T, error) {
	data, err := tx.Get(ctx, table, id)
	if err != nil {
		return nil, err
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("could not decode %s/%s: %w", table, id, err)
	}
	return &v, nil
}

// ListJSON loads every record of a table keyed by id.
func ListJSON[T any](ctx context.Context, tx Tx, table Table) (map[string]*T, error) {
	raw, err := tx.List(ctx, table)
	if err != nil {
		return nil, err
	}
	out := make(map[string]*T, len(raw))
	for id, data := range raw {
		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("could not decode %s/%s: %w", table, id, err)
		}
		out[id] = &v
	}
	return out, nil
}

// PutJSON encodes v and writes it as the whole record for id.
func PutJSON(ctx context.Context, tx Tx, table Table, id string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("could not encode %s/%s: %w", table, id, err)
	}
	return tx.Put(ctx, table, id, data)
}
