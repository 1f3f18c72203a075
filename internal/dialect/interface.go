package dialect

// Dialect abstracts database-specific catalog and DDL statements.
type Dialect interface {
	// Metadata Queries (Schema Introspection)
	// ColumnTypeQuery binds (schema, table, column) and yields one data_type row.
	ColumnTypeQuery() string
	// ColumnsQuery binds (schema, table) and yields (column_name, data_type, ordinal_position).
	ColumnsQuery() string

	// Schema Mutation
	AlterColumnToVarcharStmt(table, column string) string

	// Helpers
	GetSchemaName(input string) string
}
