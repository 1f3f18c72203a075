package schema

// ColumnRef identifies a column by table and column name.
type ColumnRef struct {
	Table  string
	Column string
}

func (r ColumnRef) String() string {
	return r.Table + "." + r.Column
}

// Column is one row of a table's catalog listing.
type Column struct {
	Name     string
	DataType string
	Position int
	Class    TypeClass
}
