package persistence

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/khoahotran/portfolio-api/internal/domain/record"
)

// MemoryRecordClient keeps tables in process. It backs STORE_DRIVER=memory
// for local runs and the handler tests. Rows keep insertion order.
type MemoryRecordClient struct {
	mu     sync.RWMutex
	tables map[string][]record.Row
	now    func() time.Time
}

func NewMemoryRecordClient() *MemoryRecordClient {
	return &MemoryRecordClient{
		tables: make(map[string][]record.Row),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (m *MemoryRecordClient) Select(_ context.Context, table string, q record.Query) ([]record.Row, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]record.Row, 0)
	for _, r := range m.tables[table] {
		if q.Filter != nil && !sameValue(r[q.Filter.Column], q.Filter.Value) {
			continue
		}
		out = append(out, r.Clone())
		if q.Limit > 0 && uint64(len(out)) >= q.Limit {
			break
		}
	}
	return out, nil
}

func (m *MemoryRecordClient) Insert(_ context.Context, table string, row record.Row) ([]record.Row, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := row.Clone()
	stored[record.ColumnID] = uuid.NewString()
	stored[record.ColumnCreatedAt] = m.now().Format(time.RFC3339Nano)
	m.tables[table] = append(m.tables[table], stored)
	return []record.Row{stored.Clone()}, nil
}

func (m *MemoryRecordClient) Update(_ context.Context, table, id string, row record.Row) ([]record.Row, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, stored := range m.tables[table] {
		if stored.ID() != id {
			continue
		}
		for k, v := range row.Clone() {
			if k == record.ColumnID || k == record.ColumnCreatedAt {
				continue
			}
			stored[k] = v
		}
		return []record.Row{stored.Clone()}, nil
	}
	return []record.Row{}, nil
}

func (m *MemoryRecordClient) Delete(_ context.Context, table, id string) ([]record.Row, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rows := m.tables[table]
	for i, stored := range rows {
		if stored.ID() == id {
			m.tables[table] = slices.Delete(rows, i, i+1)
			return []record.Row{stored}, nil
		}
	}
	return []record.Row{}, nil
}

func sameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return fmt.Sprint(a) == fmt.Sprint(b)
}
