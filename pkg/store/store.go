// Package store archives generated mazes so they can be fetched and
// re-rendered by ID.
//
// Two backends implement [Store]:
//
//   - [MemoryStore]: a process-local map, the default for `mazegen serve`
//   - [MongoStore]: a MongoDB collection, selected with a mongo URI
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	mazeio "github.com/matzehuels/mazegen/pkg/io"
)

// ErrNotFound is returned when no record has the requested ID.
var ErrNotFound = errors.New("maze not found")

// DefaultListLimit caps List when the caller passes a non-positive limit.
const DefaultListLimit = 50

// Record is one archived maze.
type Record struct {
	ID        string          `json:"id" bson:"_id"`
	CreatedAt time.Time       `json:"created_at" bson:"created_at"`
	Algorithm string          `json:"algorithm" bson:"algorithm"`
	Seed      uint64          `json:"seed" bson:"seed"`
	Columns   int             `json:"columns" bson:"columns"`
	Rows      int             `json:"rows" bson:"rows"`
	Document  mazeio.Document `json:"document" bson:"document"`
}

// NewRecord wraps a maze document in a record with a fresh ID.
func NewRecord(doc mazeio.Document) Record {
	return Record{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
		Algorithm: doc.Algorithm,
		Seed:      doc.Seed,
		Columns:   doc.Columns,
		Rows:      doc.Rows,
		Document:  doc,
	}
}

// Store persists maze records.
type Store interface {
	Save(ctx context.Context, rec Record) error
	// Get returns ErrNotFound for unknown IDs.
	Get(ctx context.Context, id string) (Record, error)
	// List returns the most recent records first. Implementations may omit
	// the cell data of each document.
	List(ctx context.Context, limit int) ([]Record, error)
	// Delete returns ErrNotFound for unknown IDs.
	Delete(ctx context.Context, id string) error
	Close() error
}

func listLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return limit
}
