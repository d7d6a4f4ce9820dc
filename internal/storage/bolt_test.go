package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talkincode/grocerstore/internal/store"
)

func testRepo(t *testing.T) *Repository {
	t.Helper()
	return NewRepository(filepath.Join(t.TempDir(), "storedata.db"))
}

func testStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.New()
	_, err := s.AddProduct("Milk", "P1", 10, 2.50, 5)
	require.NoError(t, err)
	member := s.EnrollMember("Alice", "1 Main St", "555-1234", 20.00, time.Now())
	_, err = s.CheckoutMember(member.ID, "P1", 3)
	require.NoError(t, err)
	return s
}

func TestLoadMissingFile(t *testing.T) {
	repo := testRepo(t)
	_, found, err := repo.Load()
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	repo := testRepo(t)
	s := testStore(t)
	require.NoError(t, repo.Save(s.Snapshot()))

	snap, found, err := repo.Load()
	require.NoError(t, err)
	require.True(t, found)

	restored := store.New()
	require.NoError(t, restored.Restore(snap))

	products := restored.ListProducts()
	require.Len(t, products, 1)
	assert.Equal(t, 7, products[0].Stock)

	members := restored.ListMembers()
	require.Len(t, members, 1)
	require.Len(t, members[0].Transactions, 1)
	assert.InDelta(t, 2.50, members[0].Transactions[0].Item.Price, 1e-9)

	// pending orders are re-linked to the restored catalog entry
	orders := restored.ListOrders()
	require.Len(t, orders, 1)
	product, err := restored.ProcessShipment(orders[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 17, product.Stock)
}

func TestSaveReplacesPreviousSnapshot(t *testing.T) {
	repo := testRepo(t)
	s := testStore(t)
	require.NoError(t, repo.Save(s.Snapshot()))

	_, err := s.AddProduct("Bread", "P2", 8, 3.25, 4)
	require.NoError(t, err)
	require.NoError(t, repo.Save(s.Snapshot()))

	snap, found, err := repo.Load()
	require.NoError(t, err)
	require.True(t, found)
	assert.Len(t, snap.Products, 2)
	assert.Len(t, snap.Orders, 2)
}

func TestLoadFailsClosedOnCorruptFile(t *testing.T) {
	repo := testRepo(t)
	require.NoError(t, os.WriteFile(repo.Path(), []byte("not a bolt file"), 0o600))

	_, found, err := repo.Load()
	assert.Error(t, err)
	assert.False(t, found)
}

func TestRoundTripPreservesSequences(t *testing.T) {
	repo := testRepo(t)
	s := testStore(t)
	require.NoError(t, repo.Save(s.Snapshot()))

	snap, _, err := repo.Load()
	require.NoError(t, err)

	restored := store.New()
	require.NoError(t, restored.Restore(snap))
	member := restored.EnrollMember("Bob", "2 Side St", "555-9999", 15.00, time.Now())
	assert.Equal(t, int64(2), member.ID)
}
