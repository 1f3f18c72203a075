package schema

import "database/sql"

// TypeClass is the join-compatibility class of a Postgres data_type.
type TypeClass int

const (
	// Unknown means no data type was reported at all.
	Unknown TypeClass = iota
	Character
	Numeric
	Other
)

// Matched verbatim against information_schema.columns.data_type: no case
// folding, no trimming, no "(n)" suffixes.
var typeClasses = map[string]TypeClass{
	"character varying": Character,
	"varchar":           Character,
	"character":         Character,
	"char":              Character,
	"text":              Character,

	"smallint":         Numeric,
	"integer":          Numeric,
	"bigint":           Numeric,
	"decimal":          Numeric,
	"numeric":          Numeric,
	"real":             Numeric,
	"double precision": Numeric,
	"smallserial":      Numeric,
	"serial":           Numeric,
	"bigserial":        Numeric,
}

// Classify maps a possibly-NULL data type to its TypeClass.
func Classify(dataType sql.NullString) TypeClass {
	if !dataType.Valid {
		return Unknown
	}
	return ClassifyString(dataType.String)
}

// ClassifyString maps a present data type to Character, Numeric or Other.
func ClassifyString(dataType string) TypeClass {
	if c, ok := typeClasses[dataType]; ok {
		return c
	}
	return Other
}

func (c TypeClass) String() string {
	switch c {
	case Character:
		return "character"
	case Numeric:
		return "numeric"
	case Other:
		return "other"
	default:
		return "unknown"
	}
}

// Phrase renders the class for user-facing messages. Unknown renders empty.
func (c TypeClass) Phrase() string {
	switch c {
	case Character:
		return `a "character"`
	case Numeric:
		return `a "numeric"`
	case Other:
		return "neither a character nor a numeric"
	default:
		return ""
	}
}
