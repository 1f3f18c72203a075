package dialect

import (
	"fmt"
)

type MysqlDialect struct{}

func (d *MysqlDialect) ColumnTypeQuery() string {
	return `SELECT DATA_TYPE FROM information_schema.COLUMNS WHERE TABLE_SCHEMA = ? AND TABLE_NAME = ? AND COLUMN_NAME = ?`
}

func (d *MysqlDialect) ColumnsQuery() string {
	return `SELECT COLUMN_NAME, DATA_TYPE, ORDINAL_POSITION FROM information_schema.COLUMNS WHERE TABLE_SCHEMA = ? AND TABLE_NAME = ? ORDER BY ORDINAL_POSITION`
}

func (d *MysqlDialect) AlterColumnToVarcharStmt(table, column string) string {
	return fmt.Sprintf("ALTER TABLE %s MODIFY COLUMN %s VARCHAR(%d)", table, column, VarcharLength)
}

func (d *MysqlDialect) GetSchemaName(input string) string {
	return DefaultGetSchemaName(input)
}
