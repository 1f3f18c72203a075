package schema

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"join-checker/internal/dialect"
)

// ErrColumnNotFound is returned when the catalog has no row for a column.
var ErrColumnNotFound = errors.New("column not found")

// Catalog answers column metadata questions from the database's own
// information schema. Every call acquires its own connection and releases
// it before returning, so a Catalog is safe for concurrent use.
type Catalog struct {
	db      *sql.DB
	dialect dialect.Dialect
	schema  string
}

func NewCatalog(db *sql.DB, d dialect.Dialect, schemaName string) *Catalog {
	return &Catalog{
		db:      db,
		dialect: d,
		// [Interface-First]: Delegate schema resolution to the dialect
		schema: d.GetSchemaName(schemaName),
	}
}

// Schema returns the resolved schema the catalog queries.
func (c *Catalog) Schema() string {
	return c.schema
}

// ColumnDataType returns the declared data type of ref exactly as the
// catalog reports it. A NULL data_type comes back as an invalid NullString.
func (c *Catalog) ColumnDataType(ctx context.Context, ref ColumnRef) (sql.NullString, error) {
	var dataType sql.NullString

	conn, err := c.db.Conn(ctx)
	if err != nil {
		return dataType, fmt.Errorf("failed to connect to db: %w", err)
	}
	defer func() { _ = conn.Close() }()

	err = conn.QueryRowContext(ctx, c.dialect.ColumnTypeQuery(), c.schema, ref.Table, ref.Column).Scan(&dataType)
	if errors.Is(err, sql.ErrNoRows) {
		return dataType, fmt.Errorf("%s: %w", ref, ErrColumnNotFound)
	}
	if err != nil {
		return dataType, fmt.Errorf("failed to query data type of %s: %w", ref, err)
	}
	return dataType, nil
}

// TableColumns lists the columns of table in ordinal order.
func (c *Catalog) TableColumns(ctx context.Context, table string) ([]*Column, error) {
	conn, err := c.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}
	defer func() { _ = conn.Close() }()

	rows, err := conn.QueryContext(ctx, c.dialect.ColumnsQuery(), c.schema, table)
	if err != nil {
		return nil, fmt.Errorf("failed to query columns of %s: %w", table, err)
	}
	defer rows.Close()

	var columns []*Column
	for rows.Next() {
		var name, dataType sql.NullString
		var position sql.NullInt64
		if err := rows.Scan(&name, &dataType, &position); err != nil {
			return nil, fmt.Errorf("failed to scan column (table: %s): %w", table, err)
		}
		if !name.Valid {
			continue // Skip invalid rows
		}
		columns = append(columns, &Column{
			Name:     name.String,
			DataType: dataType.String,
			Position: int(position.Int64),
			Class:    Classify(dataType),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating columns: %w", err)
	}

	if len(columns) == 0 {
		return nil, fmt.Errorf("table %s not found in schema %s", table, c.schema)
	}
	return columns, nil
}

// AlterColumnToVarchar changes ref's type to a 255-wide character type,
// reinterpreting existing values as text. The error names the statement.
func (c *Catalog) AlterColumnToVarchar(ctx context.Context, ref ColumnRef) error {
	stmt := c.dialect.AlterColumnToVarcharStmt(ref.Table, ref.Column)

	conn, err := c.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to db for %q: %w", stmt, err)
	}
	defer func() { _ = conn.Close() }()

	if _, err := conn.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("failed to execute %q: %w", stmt, err)
	}
	return nil
}
