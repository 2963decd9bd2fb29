package postgresql

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/leavedesk/leave-approval-backend/internal/pkg/database"
	"github.com/leavedesk/leave-approval-backend/internal/pkg/docstore"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS documents (
		path          TEXT PRIMARY KEY,
		parent_path   TEXT NOT NULL,
		collection_id TEXT NOT NULL,
		doc_id        TEXT NOT NULL,
		fields        JSONB NOT NULL DEFAULT '{}'::jsonb,
		seq           BIGSERIAL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_documents_parent ON documents (parent_path, seq)`,
	`CREATE INDEX IF NOT EXISTS idx_documents_collection ON documents (collection_id, seq)`,
	`CREATE INDEX IF NOT EXISTS idx_documents_fields ON documents USING GIN (fields jsonb_path_ops)`,
}

// DocumentStore keeps every document in one JSONB table keyed by path.
type DocumentStore struct {
	db *database.DB
}

func NewDocumentStore(db *database.DB) *DocumentStore {
	return &DocumentStore{db: db}
}

// EnsureSchema creates the documents table and its indexes.
func (s *DocumentStore) EnsureSchema(ctx context.Context) error {
	return WithTransaction(ctx, s.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, s.db)
		for _, stmt := range schemaStatements {
			if _, err := q.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("ensure documents schema: %w", err)
			}
		}
		return nil
	})
}

// Get implements docstore.Store.
func (s *DocumentStore) Get(ctx context.Context, path string) (docstore.Document, error) {
	if err := docstore.ValidateDocumentPath(path); err != nil {
		return docstore.Document{}, err
	}
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT path, doc_id, fields, created_at, updated_at
		FROM documents
		WHERE path = $1
	`

	doc, err := scanDocument(q.QueryRow(ctx, query, path))
	if err != nil {
		return docstore.Document{}, mapStoreErr(err)
	}
	return doc, nil
}

// Query implements docstore.Store.
func (s *DocumentStore) Query(ctx context.Context, collectionPath string, q docstore.Query) ([]docstore.Document, error) {
	if err := docstore.ValidateCollectionPath(collectionPath); err != nil {
		return nil, err
	}
	return s.query(ctx, "parent_path = $1", collectionPath, q)
}

// QueryGroup implements docstore.Store.
func (s *DocumentStore) QueryGroup(ctx context.Context, collectionID string, q docstore.Query) ([]docstore.Document, error) {
	return s.query(ctx, "collection_id = $1", collectionID, q)
}

// Add implements docstore.Store.
func (s *DocumentStore) Add(ctx context.Context, collectionPath string, fields docstore.Fields) (docstore.Document, error) {
	if err := docstore.ValidateCollectionPath(collectionPath); err != nil {
		return docstore.Document{}, err
	}
	id, err := uuid.NewV7()
	if err != nil {
		return docstore.Document{}, fmt.Errorf("%w: %w", docstore.ErrUnavailable, err)
	}
	path := collectionPath + "/" + id.String()

	body, err := encodeFields(fields)
	if err != nil {
		return docstore.Document{}, err
	}

	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO documents (path, parent_path, collection_id, doc_id, fields)
		VALUES ($1, $2, $3, $4, $5::jsonb)
		RETURNING created_at, updated_at
	`

	_, collectionID, _ := docstore.Split(path)
	doc := docstore.Document{Path: path, ID: id.String(), Fields: fields.Clone()}
	if err := q.QueryRow(ctx, query, path, collectionPath, collectionID, doc.ID, body).Scan(&doc.CreatedAt, &doc.UpdatedAt); err != nil {
		return docstore.Document{}, mapStoreErr(err)
	}
	return doc, nil
}

// Set implements docstore.Store.
func (s *DocumentStore) Set(ctx context.Context, path string, fields docstore.Fields) error {
	if err := docstore.ValidateDocumentPath(path); err != nil {
		return err
	}
	body, err := encodeFields(fields)
	if err != nil {
		return err
	}
	parent, collectionID, docID := docstore.Split(path)

	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO documents (path, parent_path, collection_id, doc_id, fields)
		VALUES ($1, $2, $3, $4, $5::jsonb)
		ON CONFLICT (path) DO UPDATE
		SET fields = EXCLUDED.fields, updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, path, parent, collectionID, docID, body); err != nil {
		return mapStoreErr(err)
	}
	return nil
}

// Update implements docstore.Store.
func (s *DocumentStore) Update(ctx context.Context, path string, fields docstore.Fields) error {
	if err := docstore.ValidateDocumentPath(path); err != nil {
		return err
	}
	body, err := encodeFields(fields)
	if err != nil {
		return err
	}

	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE documents
		SET fields = fields || $2::jsonb, updated_at = NOW()
		WHERE path = $1
	`

	tag, err := q.Exec(ctx, query, path, body)
	if err != nil {
		return mapStoreErr(err)
	}
	if tag.RowsAffected() == 0 {
		return docstore.ErrNotFound
	}
	return nil
}

func (s *DocumentStore) query(ctx context.Context, scope string, scopeArg string, dq docstore.Query) ([]docstore.Document, error) {
	args := []interface{}{scopeArg}
	var sb strings.Builder
	sb.WriteString(`
		SELECT path, doc_id, fields, created_at, updated_at
		FROM documents
		WHERE `)
	sb.WriteString(scope)

	for _, f := range dq.Filters {
		body, err := encodeFields(docstore.Fields{f.Field: f.Value})
		if err != nil {
			return nil, err
		}
		args = append(args, body)
		sb.WriteString(fmt.Sprintf(" AND fields @> $%d::jsonb", len(args)))
	}

	if dq.OrderBy != "" {
		args = append(args, dq.OrderBy)
		if dq.Direction == docstore.Descending {
			sb.WriteString(fmt.Sprintf(" ORDER BY fields -> $%d DESC NULLS LAST, seq ASC", len(args)))
		} else {
			sb.WriteString(fmt.Sprintf(" ORDER BY fields -> $%d ASC NULLS FIRST, seq ASC", len(args)))
		}
	} else {
		sb.WriteString(" ORDER BY seq ASC")
	}

	if dq.Limit > 0 {
		args = append(args, dq.Limit)
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))
	}

	q := GetQuerier(ctx, s.db)
	rows, err := q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	defer rows.Close()

	var docs []docstore.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, mapStoreErr(err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, mapStoreErr(err)
	}
	return docs, nil
}

func scanDocument(row pgx.Row) (docstore.Document, error) {
	var (
		doc     docstore.Document
		raw     []byte
		created time.Time
		updated time.Time
	)
	if err := row.Scan(&doc.Path, &doc.ID, &raw, &created, &updated); err != nil {
		return docstore.Document{}, err
	}
	fields, err := decodeFields(raw)
	if err != nil {
		return docstore.Document{}, err
	}
	doc.Fields = fields
	doc.CreatedAt = created
	doc.UpdatedAt = updated
	return doc, nil
}

func encodeFields(fields docstore.Fields) (string, error) {
	if fields == nil {
		fields = docstore.Fields{}
	}
	body, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("encode document fields: %w", err)
	}
	return string(body), nil
}

// decodeFields keeps numbers as json.Number so integer fields such as
// millisecond timestamps survive exactly.
func decodeFields(raw []byte) (docstore.Fields, error) {
	fields := docstore.Fields{}
	if len(raw) == 0 {
		return fields, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&fields); err != nil {
		return nil, fmt.Errorf("decode document fields: %w", err)
	}
	return fields, nil
}

func mapStoreErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return docstore.ErrNotFound
	}
	return fmt.Errorf("%w: %w", docstore.ErrUnavailable, err)
}

var _ docstore.Store = (*DocumentStore)(nil)
