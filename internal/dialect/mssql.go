package dialect

import (
	"fmt"

	_ "github.com/denisenkom/go-mssqldb" // SQL Server Driver
)

type MSSQLDialect struct{}

// go-mssqldb prefers @p1, @p2 named parameters over ?.

func (d *MSSQLDialect) ColumnTypeQuery() string {
	return `SELECT DATA_TYPE FROM INFORMATION_SCHEMA.COLUMNS WHERE TABLE_SCHEMA = @p1 AND TABLE_NAME = @p2 AND COLUMN_NAME = @p3`
}

func (d *MSSQLDialect) ColumnsQuery() string {
	return `SELECT COLUMN_NAME, DATA_TYPE, ORDINAL_POSITION FROM INFORMATION_SCHEMA.COLUMNS WHERE TABLE_SCHEMA = @p1 AND TABLE_NAME = @p2 ORDER BY ORDINAL_POSITION`
}

func (d *MSSQLDialect) AlterColumnToVarcharStmt(table, column string) string {
	return fmt.Sprintf("ALTER TABLE %s ALTER COLUMN %s VARCHAR(%d)", table, column, VarcharLength)
}

func (d *MSSQLDialect) GetSchemaName(input string) string {
	if input == "" {
		return "dbo"
	}
	return input
}
