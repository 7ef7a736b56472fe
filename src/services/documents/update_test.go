package documents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRemovedIDs(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	c := primitive.NewObjectID()

	removed := removedIDs([]primitive.ObjectID{a, b, c}, []primitive.ObjectID{a, c})
	require.Len(t, removed, 1)
	assert.Equal(t, b, removed[0])
}

func TestRemovedIDsNothingRemoved(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()

	assert.Empty(t, removedIDs([]primitive.ObjectID{a, b}, []primitive.ObjectID{b, a}))
}

func TestRemovedIDsAllRemoved(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()

	removed := removedIDs([]primitive.ObjectID{a, b}, nil)
	assert.Len(t, removed, 2)
}

func TestRemovedIDsKeepsNewEntriesOut(t *testing.T) {
	// Items created during reconciliation are in kept but not stored;
	// they must never appear as removals.
	stored := []primitive.ObjectID{primitive.NewObjectID()}
	kept := append([]primitive.ObjectID{primitive.NewObjectID()}, stored...)

	assert.Empty(t, removedIDs(stored, kept))
}
