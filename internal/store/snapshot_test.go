package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func populated(t *testing.T) *Store {
	t.Helper()
	s := New()
	_, err := s.AddProduct("Milk", "P1", 10, 2.50, 5)
	require.NoError(t, err)
	_, err = s.AddProduct("Bread", "P2", 8, 3.25, 4)
	require.NoError(t, err)
	member := s.EnrollMember("Alice", "1 Main St", "555-1234", 20.00, time.Now())
	_, err = s.CheckoutMember(member.ID, "P1", 3)
	require.NoError(t, err)
	return s
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := populated(t)
	snap := s.Snapshot()

	restored := New()
	require.NoError(t, restored.Restore(snap))

	assert.Equal(t, s.ListProducts(), restored.ListProducts())
	assert.Equal(t, s.ListMembers(), restored.ListMembers())
	assert.Equal(t, s.ListOrders(), restored.ListOrders())
}

func TestRestoreRelinksOrdersToLiveProducts(t *testing.T) {
	s := populated(t)

	restored := New()
	require.NoError(t, restored.Restore(s.Snapshot()))

	// fulfilling a restored order must reach the restored catalog entry
	order := restored.ListOrders()[0]
	product, err := restored.ProcessShipment(order.ID)
	require.NoError(t, err)
	assert.Equal(t, 7+order.Quantity, product.Stock)
}

func TestRestoreContinuesSequences(t *testing.T) {
	s := populated(t)

	restored := New()
	require.NoError(t, restored.Restore(s.Snapshot()))

	member := restored.EnrollMember("Bob", "2 Side St", "555-9999", 15.00, time.Now())
	assert.Equal(t, int64(2), member.ID, "member ids continue after the saved counter")

	_, err := restored.AddProduct("Eggs", "P3", 6, 4.00, 3)
	require.NoError(t, err)
	orders := restored.ListOrders()
	assert.Equal(t, int64(3), orders[len(orders)-1].ID, "order ids continue after the saved counter")
}

func TestRestoreFailsOnDanglingOrder(t *testing.T) {
	s := populated(t)
	snap := s.Snapshot()
	snap.Orders[0].ProductID = "GONE"

	restored := New()
	err := restored.Restore(snap)
	require.Error(t, err)
	assert.Empty(t, restored.ListProducts(), "failed restore leaves the store untouched")
}
