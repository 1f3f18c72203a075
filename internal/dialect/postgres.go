package dialect

import (
	"fmt"
)

type PostgresDialect struct{}

func (d *PostgresDialect) ColumnTypeQuery() string {
	// data_type, not udt_name: the classification works on the SQL-standard
	// spellings ("character varying", "double precision").
	return `SELECT data_type FROM information_schema.columns WHERE table_schema = $1 AND table_name = $2 AND column_name = $3`
}

func (d *PostgresDialect) ColumnsQuery() string {
	return `SELECT column_name, data_type, ordinal_position FROM information_schema.columns WHERE table_schema = $1 AND table_name = $2 ORDER BY ordinal_position`
}

func (d *PostgresDialect) AlterColumnToVarcharStmt(table, column string) string {
	return fmt.Sprintf("ALTER TABLE %s ALTER COLUMN %s TYPE varchar(%d) USING %s::varchar", table, column, VarcharLength, column)
}

func (d *PostgresDialect) GetSchemaName(input string) string {
	if input == "" {
		return "public"
	}
	return input
}
