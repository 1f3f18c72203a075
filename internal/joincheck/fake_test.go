package joincheck_test

import (
	"context"
	"database/sql"
	"sync"

	"join-checker/internal/schema"
)

// fakeSource is an in-memory catalog. A nil entry in types means the
// column exists with a NULL data type.
type fakeSource struct {
	mu        sync.Mutex
	types     map[schema.ColumnRef]*string
	columns   map[string][]*schema.Column
	lookupErr error
	alterErr  error

	lookups []schema.ColumnRef
	alters  []schema.ColumnRef
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		types:   make(map[schema.ColumnRef]*string),
		columns: make(map[string][]*schema.Column),
	}
}

func (f *fakeSource) set(table, column, dataType string) *fakeSource {
	f.types[schema.ColumnRef{Table: table, Column: column}] = &dataType
	f.columns[table] = append(f.columns[table], &schema.Column{
		Name:     column,
		DataType: dataType,
		Position: len(f.columns[table]) + 1,
		Class:    schema.ClassifyString(dataType),
	})
	return f
}

func (f *fakeSource) setNull(table, column string) *fakeSource {
	f.types[schema.ColumnRef{Table: table, Column: column}] = nil
	return f
}

func (f *fakeSource) ColumnDataType(ctx context.Context, ref schema.ColumnRef) (sql.NullString, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lookups = append(f.lookups, ref)

	if f.lookupErr != nil {
		return sql.NullString{}, f.lookupErr
	}
	t, ok := f.types[ref]
	if !ok {
		return sql.NullString{}, schema.ErrColumnNotFound
	}
	if t == nil {
		return sql.NullString{}, nil
	}
	return sql.NullString{String: *t, Valid: true}, nil
}

func (f *fakeSource) AlterColumnToVarchar(ctx context.Context, ref schema.ColumnRef) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.alters = append(f.alters, ref)
	return f.alterErr
}

func (f *fakeSource) TableColumns(ctx context.Context, table string) ([]*schema.Column, error) {
	cols, ok := f.columns[table]
	if !ok {
		return nil, schema.ErrColumnNotFound
	}
	return cols, nil
}

func (f *fakeSource) lookupCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.lookups)
}
