package store

import (
	"context"
)

// KVTable is the subset of the Postgres access layer the store needs.
type KVTable interface {
	GetValue(ctx context.Context, key string) ([]byte, error)
	PutValue(ctx context.Context, key string, value []byte) error
	DeleteValue(ctx context.Context, key string) error
	Close()
}

// Postgres adapts a key-value table to Store. GetValue returns nil, nil for missing keys.
type Postgres struct {
	table KVTable
}

// NewPostgres wraps a connected key-value table.
func NewPostgres(table KVTable) *Postgres {
	return &Postgres{table: table}
}

func (p *Postgres) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := p.table.GetValue(ctx, key)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrNotFound
	}
	return v, nil
}

func (p *Postgres) Set(ctx context.Context, key string, value []byte) error {
	return p.table.PutValue(ctx, key, value)
}

func (p *Postgres) Delete(ctx context.Context, key string) error {
	return p.table.DeleteValue(ctx, key)
}

func (p *Postgres) Close() error {
	p.table.Close()
	return nil
}
