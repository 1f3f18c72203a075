package joincheck

import "join-checker/internal/schema"

// Outcome is the kind of result a compatibility check produced.
type Outcome int

const (
	Compatible Outcome = iota
	Incompatible
	LookupFailed
)

func (o Outcome) String() string {
	switch o {
	case Compatible:
		return "compatible"
	case Incompatible:
		return "incompatible"
	case LookupFailed:
		return "lookup failed"
	default:
		return "unknown"
	}
}

// Verdict is the result of one compatibility check.
type Verdict struct {
	Outcome Outcome
	// Message explains an Incompatible or LookupFailed outcome to the user.
	Message string
	// JoinClause is only set by ColumnJoinStatement.
	JoinClause string

	TargetType     string
	CandidateType  string
	TargetClass    schema.TypeClass
	CandidateClass schema.TypeClass

	err error
}

// OK reports whether the columns may be joined.
func (v Verdict) OK() bool {
	return v.Outcome == Compatible
}

// Err returns nil for a compatible verdict and an *Error otherwise.
func (v Verdict) Err() error {
	if v.Outcome == Compatible {
		return nil
	}
	if v.err != nil {
		return v.err
	}
	return &Error{Kind: ErrIncompatible, Message: v.Message}
}
