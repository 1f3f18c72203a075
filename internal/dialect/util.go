package dialect

// VarcharLength is the width used when a column is converted to a character type.
const VarcharLength = 255

// DefaultGetSchemaName is a default implementation for Getting Schema Name (identity).
func DefaultGetSchemaName(input string) string {
	return input
}
