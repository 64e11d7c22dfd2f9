package intake

import (
	"testing"

	"checkingo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedLead(id, name string) models.TravelerProfile {
	p := models.NewTravelerProfile()
	p.ID = id
	p.Name = name
	return p
}

func TestMemoryLeadStore_NewestFirst(t *testing.T) {
	store := NewMemoryLeadStore()
	store.Append(storedLead("1", "first"))
	store.Append(storedLead("2", "second"))
	store.Append(storedLead("3", "third"))

	leads := store.List()
	require.Len(t, leads, 3)
	assert.Equal(t, "3", leads[0].ID)
	assert.Equal(t, "2", leads[1].ID)
	assert.Equal(t, "1", leads[2].ID)
	assert.Equal(t, 3, store.Len())
}

func TestMemoryLeadStore_Get(t *testing.T) {
	store := NewMemoryLeadStore()
	store.Append(storedLead("42", "Ana"))

	lead, ok := store.Get("42")
	require.True(t, ok)
	assert.Equal(t, "Ana", lead.Name)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestMemoryLeadStore_ListIsACopy(t *testing.T) {
	store := NewMemoryLeadStore()
	store.Append(storedLead("1", "Ana"))

	leads := store.List()
	leads[0].Name = "mutated"

	fresh := store.List()
	assert.Equal(t, "Ana", fresh[0].Name)
}
