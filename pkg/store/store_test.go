package store

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mazeio "github.com/matzehuels/mazegen/pkg/io"
	"github.com/matzehuels/mazegen/pkg/maze"
)

func sampleDoc(t *testing.T, seed uint64) mazeio.Document {
	t.Helper()
	g, err := maze.NewGrid(3, 2, nil)
	require.NoError(t, err)
	require.NoError(t, maze.Generate(g, maze.AlgorithmWilson, maze.NewRand(seed)))
	return mazeio.Encode(g, mazeio.Meta{Algorithm: maze.AlgorithmWilson, Seed: seed})
}

func TestNewRecord(t *testing.T) {
	rec := NewRecord(sampleDoc(t, 1))
	_, err := uuid.Parse(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "wilson", rec.Algorithm)
	assert.Equal(t, uint64(1), rec.Seed)
	assert.Equal(t, 3, rec.Columns)
	assert.Equal(t, 2, rec.Rows)
	assert.False(t, rec.CreatedAt.IsZero())
}

// exercise runs the shared Store contract.
func exercise(t *testing.T, s Store) {
	ctx := context.Background()

	older := NewRecord(sampleDoc(t, 1))
	older.CreatedAt = older.CreatedAt.Add(-time.Minute)
	newer := NewRecord(sampleDoc(t, 2))
	require.NoError(t, s.Save(ctx, older))
	require.NoError(t, s.Save(ctx, newer))
	assert.Error(t, s.Save(ctx, newer), "duplicate IDs are rejected")

	got, err := s.Get(ctx, older.ID)
	require.NoError(t, err)
	assert.Equal(t, older.Seed, got.Seed)
	assert.Equal(t, older.Document.Cells, got.Document.Cells)

	g, _, err := mazeio.Decode(got.Document)
	require.NoError(t, err)
	assert.True(t, g.IsPerfect())

	list, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, older.ID, list[1].ID)

	list, err = s.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, s.Delete(ctx, older.ID))
	_, err = s.Get(ctx, older.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.ErrorIs(t, s.Delete(ctx, older.ID), ErrNotFound)
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	exercise(t, s)
}

func TestMemoryStoreGetUnknown(t *testing.T) {
	_, err := NewMemoryStore().Get(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMongoStore(t *testing.T) {
	uri := os.Getenv("MAZEGEN_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("MAZEGEN_TEST_MONGO_URI not set")
	}
	ctx := context.Background()
	s, err := NewMongoStore(ctx, MongoOptions{
		URI:        uri,
		Database:   "mazegen_test",
		Collection: "mazes_" + uuid.NewString()[:8],
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.collection.Drop(context.Background())
		_ = s.Close()
	})
	exercise(t, s)
}
