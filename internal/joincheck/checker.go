// Package joincheck decides whether a layer column and a DataTable column
// can be SQL-joined directly, and builds the join predicate when they can.
package joincheck

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"join-checker/internal/schema"
)

// castingEnabled gates the experimental path that converts a numeric
// DataTable column to varchar so it can join a character layer column.
// It stays off: ColumnJoinStatement accepts withCasting but never casts.
const castingEnabled = false

const (
	msgMissingParams    = "The table name and column name must be specified."
	msgTargetMissing    = "Sorry, the target column is not available."
	msgCandidateMissing = "The data type of your column was not available."
	msgMutationFailed   = "Error when trying to convert numeric column to character"
)

// Source is the schema catalog a Checker reads column types from and, on
// the casting path, changes them through.
type Source interface {
	ColumnDataType(ctx context.Context, ref schema.ColumnRef) (sql.NullString, error)
	AlterColumnToVarchar(ctx context.Context, ref schema.ColumnRef) error
}

// Checker compares a target (layer) column with a candidate (DataTable)
// column. It holds nothing but the four names; every call re-reads the
// catalog, so one Checker may be shared between goroutines.
type Checker struct {
	src       Source
	target    schema.ColumnRef
	candidate schema.ColumnRef
	logger    *slog.Logger
}

type Option func(*Checker)

// WithLogger sets the logger lookup and mutation failures are recorded to.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Checker) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func New(src Source, targetTable, targetColumn, dtTable, dtColumn string, opts ...Option) *Checker {
	c := &Checker{
		src:       src,
		target:    schema.ColumnRef{Table: targetTable, Column: targetColumn},
		candidate: schema.ColumnRef{Table: dtTable, Column: dtColumn},
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Checker) Target() schema.ColumnRef    { return c.target }
func (c *Checker) Candidate() schema.ColumnRef { return c.candidate }

// LookupColumnType returns the declared data type of table.column exactly as
// the catalog reports it.
func (c *Checker) LookupColumnType(ctx context.Context, table, column string) (string, error) {
	if table == "" || column == "" {
		return "", &Error{Kind: ErrMissingParameter, Message: msgMissingParams}
	}

	ref := schema.ColumnRef{Table: table, Column: column}
	dataType, err := c.src.ColumnDataType(ctx, ref)
	if err == nil && !dataType.Valid {
		err = fmt.Errorf("%s: no data type reported", ref)
	}
	if err != nil {
		c.logger.Error("column type lookup failed",
			slog.String("op", "lookup_column_type"),
			slog.String("table", table),
			slog.String("column", column),
			slog.Any("error", err))
		return "", &Error{
			Kind:    ErrLookupFailed,
			Message: fmt.Sprintf("Error finding data type for column '%s' in table '%s': %v", column, table, err),
			Err:     err,
		}
	}
	return dataType.String, nil
}

// AreJoinColumnsCompatible reports whether the two columns can be joined
// without casting.
func (c *Checker) AreJoinColumnsCompatible(ctx context.Context) Verdict {
	return c.resolve(ctx)
}

// ColumnJoinStatement returns the join predicate for the two columns, or an
// *Error carrying the same user-facing message AreJoinColumnsCompatible
// would give.
func (c *Checker) ColumnJoinStatement(ctx context.Context, withCasting bool) (string, error) {
	v := c.CheckJoin(ctx, withCasting)
	if !v.OK() {
		return "", v.Err()
	}
	return v.JoinClause, nil
}

// CheckJoin is ColumnJoinStatement returning the full Verdict. withCasting
// is accepted for callers but has no effect while castingEnabled is false.
func (c *Checker) CheckJoin(ctx context.Context, withCasting bool) Verdict {
	v := c.resolve(ctx)

	if castingEnabled && withCasting && v.Outcome == Incompatible &&
		v.TargetClass == schema.Character && v.CandidateClass == schema.Numeric {
		if err := c.AlterColumnToVariableCharacter(ctx, c.candidate.Table, c.candidate.Column); err != nil {
			v.Message = err.Error()
			v.err = err
			return v
		}
		v.Outcome = Compatible
	}

	if v.OK() {
		v.JoinClause = c.JoinClause()
	}
	return v
}

// JoinClause renders the equality predicate: table names bare, column names quoted.
func (c *Checker) JoinClause() string {
	return fmt.Sprintf(`%s."%s" = %s."%s"`, c.target.Table, c.target.Column, c.candidate.Table, c.candidate.Column)
}

// AlterColumnToVariableCharacter converts table.column to varchar(255). The
// database error is logged, never returned.
func (c *Checker) AlterColumnToVariableCharacter(ctx context.Context, table, column string) error {
	if table == "" {
		return &Error{Kind: ErrMissingParameter, Message: "table name cannot be empty"}
	}
	if column == "" {
		return &Error{Kind: ErrMissingParameter, Message: "column name cannot be empty"}
	}

	if err := c.src.AlterColumnToVarchar(ctx, schema.ColumnRef{Table: table, Column: column}); err != nil {
		c.logger.Error("column type change failed",
			slog.String("op", "alter_column_to_varchar"),
			slog.String("table", table),
			slog.String("column", column),
			slog.Any("error", err))
		return &Error{Kind: ErrMutationFailed, Message: msgMutationFailed}
	}
	return nil
}

// resolve looks both columns up once and classifies them.
func (c *Checker) resolve(ctx context.Context) Verdict {
	targetType, err := c.LookupColumnType(ctx, c.target.Table, c.target.Column)
	if err != nil {
		return Verdict{
			Outcome: LookupFailed,
			Message: msgTargetMissing,
			err:     &Error{Kind: ErrLookupFailed, Message: msgTargetMissing, Err: err},
		}
	}

	candidateType, err := c.LookupColumnType(ctx, c.candidate.Table, c.candidate.Column)
	if err != nil {
		return Verdict{
			Outcome:    LookupFailed,
			Message:    msgCandidateMissing,
			TargetType: targetType,
			err:        &Error{Kind: ErrLookupFailed, Message: msgCandidateMissing, Err: err},
		}
	}

	v := Verdict{
		TargetType:     targetType,
		CandidateType:  candidateType,
		TargetClass:    schema.ClassifyString(targetType),
		CandidateClass: schema.ClassifyString(candidateType),
	}

	switch {
	case targetType == candidateType:
		v.Outcome = Compatible
	case v.TargetClass == schema.Character && v.CandidateClass == schema.Character:
		v.Outcome = Compatible
	case v.TargetClass == schema.Numeric && v.CandidateClass == schema.Numeric:
		v.Outcome = Compatible
	default:
		v.Outcome = Incompatible
		v.Message = fmt.Sprintf(`Your chosen column "%s" is type %s. However, the chosen layer column "%s" is type %s.`,
			c.candidate.Column, v.CandidateClass.Phrase(), c.target.Column, v.TargetClass.Phrase())
	}
	return v
}
