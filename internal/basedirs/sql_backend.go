package basedirs

import (
	"context"
	"errors"

	"styr/internal/storage/records"
)

// RecordStore is the subset of the records repository the SQL backend needs.
type RecordStore interface {
	Get(ctx context.Context, name string) (records.Record, error)
	Put(ctx context.Context, name string, payload []byte) error
	Close() error
}

// SQLBackend keeps the record as a named row in the records table.
type SQLBackend struct {
	repo RecordStore
	name string
}

func NewSQLBackend(repo RecordStore, name string) *SQLBackend {
	if name == "" {
		name = DefaultRecordName
	}
	return &SQLBackend{repo: repo, name: name}
}

func (b *SQLBackend) Load(ctx context.Context) (Record, error) {
	rec, err := b.repo.Get(ctx, b.name)
	if err != nil {
		if errors.Is(err, records.ErrNotFound) {
			return Record{BaseDirs: []string{}}, nil
		}
		return Record{}, err
	}
	return decodeRecord(rec.Payload)
}

func (b *SQLBackend) Save(ctx context.Context, rec Record) error {
	payload, err := encodeRecord(rec)
	if err != nil {
		return err
	}
	return b.repo.Put(ctx, b.name, payload)
}

func (b *SQLBackend) Close() error { return b.repo.Close() }
