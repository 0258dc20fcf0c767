// Package record is the boundary to the hosted table store. Rows travel as
// storage-keyed maps so the store stays schema-agnostic; the schema package
// owns every wire/storage translation.
package record

import (
	"context"
	"fmt"
	"maps"
	"slices"
)

const (
	ColumnID        = "id"
	ColumnCreatedAt = "created_at"
	ColumnProfileID = "profile_id"
)

// Row is a single table row keyed by storage column name.
type Row map[string]any

// ID returns the row id rendered as a string, or "" when absent.
func (r Row) ID() string {
	v, ok := r[ColumnID]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// String returns a string column, or "" when absent or not a string.
func (r Row) String(column string) string {
	s, _ := r[column].(string)
	return s
}

// Clone copies the row along with its list and object values.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		switch val := v.(type) {
		case []string:
			out[k] = slices.Clone(val)
		case map[string]any:
			out[k] = maps.Clone(val)
		default:
			out[k] = val
		}
	}
	return out
}

// Filter is an equality match on a single column.
type Filter struct {
	Column string
	Value  any
}

type Query struct {
	Filter *Filter
	// Limit of zero means no limit.
	Limit uint64
}

func All() Query {
	return Query{}
}

func Where(column string, value any) Query {
	return Query{Filter: &Filter{Column: column, Value: value}}
}

func (q Query) First() Query {
	q.Limit = 1
	return q
}

// Client is the contract consumed from the backing store. Implementations
// must be safe for concurrent use.
type Client interface {
	// Select returns matching rows in store-defined order.
	Select(ctx context.Context, table string, q Query) ([]Row, error)
	// Insert returns the inserted row(s) including store-assigned id and created_at.
	Insert(ctx context.Context, table string, row Row) ([]Row, error)
	// Update applies row to the record with the given id. No match yields an empty slice.
	Update(ctx context.Context, table, id string, row Row) ([]Row, error)
	// Delete removes the record with the given id. No match yields an empty slice.
	Delete(ctx context.Context, table, id string) ([]Row, error)
}
