package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryCollection is an in-process Collection used by tests and local runs
// without a database. Now is overridable so tests control the stamps.
type MemoryCollection struct {
	mu   sync.Mutex
	docs map[string]Fields
	Now  func() time.Time
}

func NewMemoryCollection() *MemoryCollection {
	return &MemoryCollection{docs: make(map[string]Fields), Now: time.Now}
}

func (m *MemoryCollection) Get(ctx context.Context, id string) (Fields, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneFields(doc), nil
}

func (m *MemoryCollection) Add(ctx context.Context, fields Fields) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := uuid.NewString()
	doc := cloneFields(fields)
	doc["createdAt"] = m.Now().UTC()
	m.docs[id] = doc
	return id, nil
}

func (m *MemoryCollection) Query(ctx context.Context, orderBy string, descending bool) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Record, 0, len(m.docs))
	for id, doc := range m.docs {
		out = append(out, Record{ID: id, Fields: cloneFields(doc)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		c := compareValues(out[i].Fields[orderBy], out[j].Fields[orderBy])
		if descending {
			return c > 0
		}
		return c < 0
	})
	return out, nil
}

func (m *MemoryCollection) Find(ctx context.Context, field string, value any) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Record
	for id, doc := range m.docs {
		if doc[field] == value {
			out = append(out, Record{ID: id, Fields: cloneFields(doc)})
		}
	}
	return out, nil
}

func (m *MemoryCollection) Update(ctx context.Context, id string, fields Fields) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.docs[id]
	if !ok {
		return ErrNotFound
	}
	for k, v := range fields {
		doc[k] = v
	}
	doc["updatedAt"] = m.Now().UTC()
	return nil
}

func (m *MemoryCollection) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[id]; !ok {
		return ErrNotFound
	}
	delete(m.docs, id)
	return nil
}

func cloneFields(f Fields) Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

func compareValues(a, b any) int {
	switch av := a.(type) {
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			switch {
			case av.Before(bv):
				return -1
			case av.After(bv):
				return 1
			}
			return 0
		}
	case string:
		if bv, ok := b.(string); ok {
			return strings.Compare(av, bv)
		}
	case int:
		if bv, ok := toFloat(b); ok {
			return compareFloat(float64(av), bv)
		}
	case int64:
		if bv, ok := toFloat(b); ok {
			return compareFloat(float64(av), bv)
		}
	case float64:
		if bv, ok := toFloat(b); ok {
			return compareFloat(av, bv)
		}
	}
	return 0
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
