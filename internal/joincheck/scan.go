package joincheck

import (
	"context"
	"fmt"
	"sort"

	"join-checker/internal/schema"
)

// Lister is a Source that can also enumerate a table's columns.
type Lister interface {
	Source
	TableColumns(ctx context.Context, table string) ([]*schema.Column, error)
}

// ScanResult is the verdict for one DataTable column against the target.
type ScanResult struct {
	Column    *schema.Column
	Verdict   Verdict
	NameMatch bool // abbreviation-normalized names agree
}

// Scan checks every column of dtTable against target and returns the
// results joinable-first, then name matches, then in column order.
// onProgress, if set, is called after each checked column.
func Scan(ctx context.Context, src Lister, target schema.ColumnRef, dtTable string, onProgress func(done, total int), opts ...Option) ([]ScanResult, error) {
	if target.Table == "" || target.Column == "" || dtTable == "" {
		return nil, &Error{Kind: ErrMissingParameter, Message: msgMissingParams}
	}

	columns, err := src.TableColumns(ctx, dtTable)
	if err != nil {
		return nil, fmt.Errorf("failed to list columns of %s: %w", dtTable, err)
	}

	results := make([]ScanResult, 0, len(columns))
	for i, col := range columns {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		checker := New(src, target.Table, target.Column, dtTable, col.Name, opts...)
		results = append(results, ScanResult{
			Column:    col,
			Verdict:   checker.CheckJoin(ctx, false),
			NameMatch: schema.SimilarNames(target.Column, col.Name),
		})

		if onProgress != nil {
			onProgress(i+1, len(columns))
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Verdict.OK() != b.Verdict.OK() {
			return a.Verdict.OK()
		}
		if a.NameMatch != b.NameMatch {
			return a.NameMatch
		}
		return a.Column.Position < b.Column.Position
	})
	return results, nil
}
