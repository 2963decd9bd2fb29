package docstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryEntry struct {
	doc Document
	seq int64
}

// MemoryStore keeps documents in process memory. It backs tests and local
// runs with STORE_BACKEND=memory.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]*memoryEntry
	seq  int64
	now  func() time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs: make(map[string]*memoryEntry),
		now:  time.Now,
	}
}

// Get implements Store.
func (m *MemoryStore) Get(ctx context.Context, path string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := ValidateDocumentPath(path); err != nil {
		return Document{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.docs[path]
	if !ok {
		return Document{}, ErrNotFound
	}
	return copyDoc(e.doc), nil
}

// Query implements Store.
func (m *MemoryStore) Query(ctx context.Context, collectionPath string, q Query) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := ValidateCollectionPath(collectionPath); err != nil {
		return nil, err
	}
	return m.scan(q, func(d Document) bool {
		return d.Parent() == collectionPath
	}), nil
}

// QueryGroup implements Store.
func (m *MemoryStore) QueryGroup(ctx context.Context, collectionID string, q Query) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return m.scan(q, func(d Document) bool {
		_, coll, _ := Split(d.Path)
		return coll == collectionID
	}), nil
}

// Add implements Store.
func (m *MemoryStore) Add(ctx context.Context, collectionPath string, fields Fields) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := ValidateCollectionPath(collectionPath); err != nil {
		return Document{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	path := collectionPath + "/" + id.String()

	m.mu.Lock()
	defer m.mu.Unlock()

	doc := m.put(path, fields.Clone(), nil)
	return copyDoc(doc), nil
}

// Set implements Store.
func (m *MemoryStore) Set(ctx context.Context, path string, fields Fields) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := ValidateDocumentPath(path); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.put(path, fields.Clone(), m.docs[path])
	return nil
}

// Update implements Store.
func (m *MemoryStore) Update(ctx context.Context, path string, fields Fields) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := ValidateDocumentPath(path); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.docs[path]
	if !ok {
		return ErrNotFound
	}
	merged := e.doc.Fields.Clone()
	for k, v := range fields {
		merged[k] = v
	}
	e.doc.Fields = merged
	e.doc.UpdatedAt = m.now()
	return nil
}

// Len returns the number of stored documents.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.docs)
}

// put must be called with the write lock held.
func (m *MemoryStore) put(path string, fields Fields, existing *memoryEntry) Document {
	now := m.now()
	_, _, id := Split(path)
	if existing != nil {
		existing.doc.Fields = fields
		existing.doc.UpdatedAt = now
		return existing.doc
	}
	m.seq++
	doc := Document{Path: path, ID: id, Fields: fields, CreatedAt: now, UpdatedAt: now}
	m.docs[path] = &memoryEntry{doc: doc, seq: m.seq}
	return doc
}

func (m *MemoryStore) scan(q Query, match func(Document) bool) []Document {
	m.mu.RLock()
	entries := make([]*memoryEntry, 0)
	for _, e := range m.docs {
		if !match(e.doc) || !matchesFilters(e.doc.Fields, q.Filters) {
			continue
		}
		entries = append(entries, &memoryEntry{doc: copyDoc(e.doc), seq: e.seq})
	}
	m.mu.RUnlock()

	sort.SliceStable(entries, func(i, j int) bool {
		if q.OrderBy != "" {
			c := compareValues(entries[i].doc.Fields[q.OrderBy], entries[j].doc.Fields[q.OrderBy])
			if c != 0 {
				if q.Direction == Descending {
					return c > 0
				}
				return c < 0
			}
		}
		return entries[i].seq < entries[j].seq
	})

	if q.Limit > 0 && len(entries) > q.Limit {
		entries = entries[:q.Limit]
	}

	out := make([]Document, len(entries))
	for i, e := range entries {
		out[i] = e.doc
	}
	return out
}

func matchesFilters(fields Fields, filters []Filter) bool {
	for _, f := range filters {
		v, ok := fields[f.Field]
		if !ok || !equalValues(v, f.Value) {
			return false
		}
	}
	return true
}

func copyDoc(d Document) Document {
	d.Fields = d.Fields.Clone()
	return d
}
