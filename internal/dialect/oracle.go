package dialect

import (
	"fmt"
)

type OracleDialect struct{}

// USER_TAB_COLUMNS only covers the current user's tables, so the schema
// bind is consumed by a dummy clause to keep the (schema, table, column)
// argument order shared with the other dialects.

func (d *OracleDialect) ColumnTypeQuery() string {
	return `SELECT LOWER(DATA_TYPE) FROM USER_TAB_COLUMNS WHERE :1 IS NOT NULL AND TABLE_NAME = UPPER(:2) AND COLUMN_NAME = UPPER(:3)`
}

func (d *OracleDialect) ColumnsQuery() string {
	return `SELECT LOWER(COLUMN_NAME), LOWER(DATA_TYPE), COLUMN_ID FROM USER_TAB_COLUMNS WHERE :1 IS NOT NULL AND TABLE_NAME = UPPER(:2) ORDER BY COLUMN_ID`
}

func (d *OracleDialect) AlterColumnToVarcharStmt(table, column string) string {
	return fmt.Sprintf("ALTER TABLE %s MODIFY (%s VARCHAR2(%d))", table, column, VarcharLength)
}

func (d *OracleDialect) GetSchemaName(input string) string {
	if input == "" {
		return "USER"
	}
	return input
}
