package docstore

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a document does not exist.
	ErrNotFound = errors.New("document not found")
	// ErrUnavailable is returned when the backend could not serve the call.
	ErrUnavailable = errors.New("document store unavailable")
	// ErrInvalidPath is returned for malformed document or collection paths.
	ErrInvalidPath = errors.New("invalid document path")
)

// Document is a single record addressed by its slash-separated path.
type Document struct {
	Path      string
	ID        string
	Fields    Fields
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Parent returns the path of the collection holding the document.
func (d Document) Parent() string {
	parent, _, _ := Split(d.Path)
	return parent
}

type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Filter matches documents whose field equals Value.
type Filter struct {
	Field string
	Value any
}

// Query narrows a collection read. A zero Query returns every document in
// insertion order.
type Query struct {
	Filters   []Filter
	OrderBy   string
	Direction Direction
	Limit     int
}

// Where returns a copy of q with an extra equality filter.
func (q Query) Where(field string, value any) Query {
	q.Filters = append(append([]Filter(nil), q.Filters...), Filter{Field: field, Value: value})
	return q
}

// Store is the document database the application persists to. Every call is
// a suspension point; implementations must be safe for concurrent use.
type Store interface {
	// Get reads one document. Returns ErrNotFound if absent.
	Get(ctx context.Context, path string) (Document, error)
	// Query reads documents directly under collectionPath.
	Query(ctx context.Context, collectionPath string, q Query) ([]Document, error)
	// QueryGroup reads documents from every collection named collectionID,
	// whatever their parent.
	QueryGroup(ctx context.Context, collectionID string, q Query) ([]Document, error)
	// Add creates a document with a store-assigned id.
	Add(ctx context.Context, collectionPath string, fields Fields) (Document, error)
	// Set creates or fully replaces the document at path.
	Set(ctx context.Context, path string, fields Fields) error
	// Update merges fields into an existing document. Returns ErrNotFound if
	// absent.
	Update(ctx context.Context, path string, fields Fields) error
}
