package corpus

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"ai-legalaid-be/internal/entity"
)

func TestStoreLoadAndLookup(t *testing.T) {
	store := NewStore()
	assert.False(t, store.Ready())
	assert.Equal(t, 0, store.Count())

	units := SampleUnits()
	err := store.Load(units)
	assert.NoError(t, err)
	assert.True(t, store.Ready())
	assert.Equal(t, len(units), store.Count())

	got, ok := store.Lookup(units[0].Id)
	assert.True(t, ok)
	assert.Equal(t, units[0].Title, got.Title)

	_, ok = store.Lookup(uuid.New())
	assert.False(t, ok)
}

func TestStoreLoadRejectsMissingId(t *testing.T) {
	store := NewStore()
	err := store.Load([]*entity.ReferenceUnit{
		{Title: "Orphan unit"},
	})
	assert.Error(t, err)
	assert.False(t, store.Ready())
}

func TestStoreLoadRejectsDuplicateIds(t *testing.T) {
	id := uuid.New()
	store := NewStore()
	err := store.Load([]*entity.ReferenceUnit{
		{Id: id, Title: "First"},
		{Id: id, Title: "Second"},
	})
	assert.Error(t, err)
	assert.False(t, store.Ready())
}

func TestStoreAllPreservesLoadOrder(t *testing.T) {
	store := NewStore()
	units := SampleUnits()
	assert.NoError(t, store.Load(units))

	all := store.All()
	assert.Equal(t, len(units), len(all))
	for i := range units {
		assert.Equal(t, units[i].Id, all[i].Id)
	}
}

func TestSampleUnitIdsAreDeterministic(t *testing.T) {
	first := SampleUnits()
	second := SampleUnits()
	assert.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Id, second[i].Id)
	}
}
