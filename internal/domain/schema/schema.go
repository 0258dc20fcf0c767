// Package schema holds the per-entity mapping tables between the JSON field
// names clients use (wire names) and the column names in the store (storage
// names). The same table drives request decoding, default values and response
// encoding, so aliasing never leaks into handlers.
package schema

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/khoahotran/portfolio-api/internal/domain/record"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

type Kind int

const (
	String Kind = iota
	StringList
	Object
	Bool
)

func (k Kind) String() string {
	switch k {
	case StringList:
		return "a list of strings"
	case Object:
		return "an object"
	case Bool:
		return "a boolean"
	default:
		return "a string"
	}
}

type Mode int

const (
	// ModeCreate enforces required fields and fills defaults.
	ModeCreate Mode = iota
	// ModeUpdate keeps only the fields present in the payload.
	ModeUpdate
)

type Field struct {
	Wire     string
	Column   string
	Kind     Kind
	Required bool
	// Default is applied on create when the field is absent. Nil means null.
	Default any
	// WriteOnly fields are accepted on input and never encoded.
	WriteOnly bool
}

type Schema struct {
	// Resource is the human name used in messages, e.g. "Project".
	Resource string
	Table    string
	Fields   []Field
}

// Decode validates payload and translates it into a storage-keyed row.
// Either the wire name or the storage name is accepted for each field; the
// wire name wins when both are sent. Unknown keys, id and created_at are
// ignored. All field problems are reported together.
func (s Schema) Decode(payload map[string]any, mode Mode) (record.Row, error) {
	row := make(record.Row, len(s.Fields))
	var problems []string

	for _, f := range s.Fields {
		raw, present := lookup(payload, f)
		if !present {
			if mode == ModeUpdate {
				continue
			}
			if f.Required {
				problems = append(problems, fmt.Sprintf("%s is required", f.Wire))
				continue
			}
			row[f.Column] = cloneDefault(f.Default)
			continue
		}

		v, err := coerce(f, raw)
		if err != nil {
			problems = append(problems, err.Error())
			continue
		}
		row[f.Column] = v
	}

	if len(problems) > 0 {
		return nil, apperror.NewInvalidInput(
			fmt.Sprintf("%s payload: %s", strings.ToLower(s.Resource), strings.Join(problems, "; ")),
			nil,
		)
	}
	return row, nil
}

// Encode renders a stored row with wire names. Write-only fields are never
// emitted; null collections and flags fall back to their defaults.
func (s Schema) Encode(row record.Row) map[string]any {
	out := make(map[string]any, len(s.Fields)+2)
	out[record.ColumnID] = row[record.ColumnID]
	out[record.ColumnCreatedAt] = row[record.ColumnCreatedAt]

	for _, f := range s.Fields {
		if f.WriteOnly {
			continue
		}
		v := row[f.Column]
		if v == nil && f.Kind != String {
			v = cloneDefault(f.Default)
		}
		out[f.Wire] = v
	}
	return out
}

// EncodeAll always returns a non-nil slice so empty results render as [].
func (s Schema) EncodeAll(rows []record.Row) []map[string]any {
	out := make([]map[string]any, 0, len(rows))
	for _, r := range rows {
		out = append(out, s.Encode(r))
	}
	return out
}

// Column resolves a wire name to its storage name.
func (s Schema) Column(wire string) (string, bool) {
	for _, f := range s.Fields {
		if f.Wire == wire {
			return f.Column, true
		}
	}
	return "", false
}

func lookup(payload map[string]any, f Field) (any, bool) {
	if v, ok := payload[f.Wire]; ok {
		return v, true
	}
	if f.Column != f.Wire {
		if v, ok := payload[f.Column]; ok {
			return v, true
		}
	}
	return nil, false
}

func coerce(f Field, raw any) (any, error) {
	if raw == nil {
		if f.Required || f.Default != nil || f.Kind != String {
			return nil, fmt.Errorf("%s must not be null", f.Wire)
		}
		return nil, nil
	}

	switch f.Kind {
	case String:
		if s, ok := raw.(string); ok {
			return s, nil
		}
	case Bool:
		if b, ok := raw.(bool); ok {
			return b, nil
		}
	case Object:
		if m, ok := raw.(map[string]any); ok {
			return m, nil
		}
	case StringList:
		switch list := raw.(type) {
		case []string:
			return slices.Clone(list), nil
		case []any:
			out := make([]string, 0, len(list))
			for i, item := range list {
				s, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf("%s[%d] must be a string", f.Wire, i)
				}
				out = append(out, s)
			}
			return out, nil
		}
	}
	return nil, fmt.Errorf("%s must be %s", f.Wire, f.Kind)
}

func cloneDefault(v any) any {
	switch d := v.(type) {
	case []string:
		return slices.Clone(d)
	case map[string]any:
		return maps.Clone(d)
	default:
		return v
	}
}
