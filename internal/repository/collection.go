package repository

import (
	"context"
	"errors"
)

// Fields is one document's payload, keyed by stored field name. The store
// assigns document ids and the createdAt/updatedAt stamps; callers never
// supply them.
type Fields = map[string]any

// Record is a stored document tagged with its store-assigned id.
type Record struct {
	ID     string
	Fields Fields
}

var ErrNotFound = errors.New("document introuvable")

// Collection is the slice of the document store each workflow depends on.
// One adapter instance per record kind (commandes, reservations, Personne).
type Collection interface {
	Get(ctx context.Context, id string) (Fields, error)
	Add(ctx context.Context, fields Fields) (string, error)
	Query(ctx context.Context, orderBy string, descending bool) ([]Record, error)
	Find(ctx context.Context, field string, value any) ([]Record, error)
	Update(ctx context.Context, id string, fields Fields) error
	Delete(ctx context.Context, id string) error
}
