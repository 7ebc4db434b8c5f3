package repository

import (
	"context"
)

// Table names one logical collection of the key-value store.
type Table string

const (
	Conversations Table = "conversations"
	Folders       Table = "folders"
	Templates     Table = "templates"
	Settings      Table = "settings"
)

// Tables lists every table of the schema.
var Tables = []Table{Conversations, Folders, Templates, Settings}

func (t Table) valid() bool {
	for _, known := range Tables {
		if t == known {
			return true
		}
	}
	return false
}

// Tx is a view of the store inside one atomic unit of work. Values are the
// serialized records; callers own the encoding (see GetJSON / PutJSON).
type Tx interface {
	Get(ctx context.Context, table Table, id string) ([]byte, error)
	List(ctx context.Context, table Table) (map[string][]byte, error)
	Put(ctx context.Context, table Table, id string, value []byte) error
	Delete(ctx context.Context, table Table, id string) error
}

// Repository defines the interface for the persistent key-value store.
// Every multi-record mutation goes through Update so readers never observe a
// half-applied change.
type Repository interface {
	View(ctx context.Context, fn func(tx Tx) error) error
	Update(ctx context.Context, fn func(tx Tx) error) error
	Close() error
}
