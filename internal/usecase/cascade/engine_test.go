package cascade

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arabyads/influencer-service/internal/domain"
	"github.com/arabyads/influencer-service/internal/usecase"
)

type capturingSink struct {
	changes []domain.EntityChange
}

func (s *capturingSink) Record(change domain.EntityChange) error {
	s.changes = append(s.changes, change)
	return nil
}

// memStore is a tiny live-row table keyed by id, with parent links used to
// derive children.
type memStore struct {
	rows    map[string]bool
	parents map[string]string
}

func newMemStore(ids ...string) *memStore {
	store := &memStore{rows: make(map[string]bool), parents: make(map[string]string)}
	for _, id := range ids {
		store.rows[id] = true
	}
	return store
}

func (s *memStore) load(id string) (any, error) {
	if !s.rows[id] {
		return nil, domain.ErrNotFound
	}
	return id, nil
}

func (s *memStore) delete(id string) error {
	if !s.rows[id] {
		return domain.ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

func (s *memStore) childrenOf(parentID string) []string {
	var ids []string
	for id, parent := range s.parents {
		if parent == parentID && s.rows[id] {
			ids = append(ids, id)
		}
	}
	return ids
}

func newTestEngine(sink *capturingSink, clients, offers, campaigns *memStore) *Engine {
	e := NewEngine(usecase.NewAuditEmitter(sink))
	e.Register("client", Rule{
		Load:   clients.load,
		Delete: clients.delete,
		Children: func(id string) (map[string][]string, error) {
			return map[string][]string{"offer": offers.childrenOf(id)}, nil
		},
	})
	e.Register("offer", Rule{
		Load:   offers.load,
		Delete: offers.delete,
		Children: func(id string) (map[string][]string, error) {
			return map[string][]string{"campaign": campaigns.childrenOf(id)}, nil
		},
	})
	e.Register("campaign", Rule{
		Load:   campaigns.load,
		Delete: campaigns.delete,
	})
	return e
}

func TestSoftDelete_CascadesChildrenFirst(t *testing.T) {
	sink := &capturingSink{}
	clients := newMemStore("client-1")
	offers := newMemStore("offer-1", "offer-2")
	offers.parents["offer-1"] = "client-1"
	offers.parents["offer-2"] = "client-1"
	campaigns := newMemStore("campaign-1")
	campaigns.parents["campaign-1"] = "offer-1"

	e := newTestEngine(sink, clients, offers, campaigns)

	err := e.SoftDelete("client", "client-1", "actor-1")

	require.NoError(t, err)
	assert.Empty(t, clients.rows)
	assert.Empty(t, offers.rows)
	assert.Empty(t, campaigns.rows)

	// Dependents are tombstoned before their parent.
	require.Len(t, sink.changes, 4)
	last := sink.changes[len(sink.changes)-1]
	assert.Equal(t, "client", last.EntityType)
	assert.Equal(t, domain.AuditSoftDelete, last.Action)
	assert.Equal(t, "actor-1", last.ActorID)
	for _, change := range sink.changes[:3] {
		assert.NotEqual(t, "client", change.EntityType)
	}
}

func TestSoftDelete_LeafWithoutChildren(t *testing.T) {
	sink := &capturingSink{}
	clients := newMemStore("client-1")
	offers := newMemStore()
	campaigns := newMemStore("campaign-1")

	e := newTestEngine(sink, clients, offers, campaigns)

	require.NoError(t, e.SoftDelete("campaign", "campaign-1", "actor-1"))
	assert.Empty(t, campaigns.rows)
	require.Len(t, sink.changes, 1)
	assert.Equal(t, "campaign", sink.changes[0].EntityType)
}

func TestSoftDelete_MissingRootReturnsNotFound(t *testing.T) {
	sink := &capturingSink{}
	e := newTestEngine(sink, newMemStore(), newMemStore(), newMemStore())

	err := e.SoftDelete("client", "missing", "actor-1")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, sink.changes)
}

func TestSoftDelete_UnknownEntityType(t *testing.T) {
	e := NewEngine(usecase.NewAuditEmitter(&capturingSink{}))

	err := e.SoftDelete("widget", "id", "actor-1")

	require.Error(t, err)
}

func TestSoftDelete_ChildFailureStopsParentDelete(t *testing.T) {
	sink := &capturingSink{}
	clients := newMemStore("client-1")
	e := NewEngine(usecase.NewAuditEmitter(sink))
	e.Register("client", Rule{
		Load:   clients.load,
		Delete: clients.delete,
		Children: func(id string) (map[string][]string, error) {
			return map[string][]string{"offer": {"offer-1"}}, nil
		},
	})
	e.Register("offer", Rule{
		Load:   func(id string) (any, error) { return id, nil },
		Delete: func(id string) error { return errors.New("db down") },
	})

	err := e.SoftDelete("client", "client-1", "actor-1")

	require.Error(t, err)
	// Parent row survives so a retry resumes the walk.
	assert.True(t, clients.rows["client-1"])
}
