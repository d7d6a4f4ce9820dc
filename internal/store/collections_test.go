package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talkincode/grocerstore/internal/domain"
)

func TestCatalogFindIsCaseInsensitive(t *testing.T) {
	var c Catalog
	require.True(t, c.Add(&domain.Product{Name: "Milk", ID: "P1"}))

	assert.NotNil(t, c.FindByName("MILK"))
	assert.NotNil(t, c.FindByID("p1"))
	assert.Nil(t, c.FindByName("Bread"))
	assert.Nil(t, c.FindByID("P2"))
}

func TestCatalogAddKeepsInsertionOrder(t *testing.T) {
	var c Catalog
	c.Add(&domain.Product{Name: "Milk", ID: "P1"})
	c.Add(&domain.Product{Name: "Bread", ID: "P2"})
	c.Add(&domain.Product{Name: "Eggs", ID: "P3"})

	require.Equal(t, 3, c.Len())
	assert.Equal(t, "P1", c.products[0].ID)
	assert.Equal(t, "P2", c.products[1].ID)
	assert.Equal(t, "P3", c.products[2].ID)
}

func TestMemberListRemove(t *testing.T) {
	var l MemberList
	l.Add(&domain.Member{ID: 1})
	l.Add(&domain.Member{ID: 2})

	assert.True(t, l.Remove(1))
	assert.Nil(t, l.FindByID(1))
	assert.NotNil(t, l.FindByID(2))
	assert.False(t, l.Remove(1))
}

func TestPendingOrdersRemoveReturnsOrder(t *testing.T) {
	var p PendingOrders
	milk := &domain.Product{Name: "Milk", ID: "P1"}
	p.Add(&domain.Order{ID: 1, Item: milk, Quantity: 10, CreatedAt: time.Now()})

	removed := p.Remove(1)
	require.NotNil(t, removed)
	assert.Equal(t, int64(1), removed.ID)
	assert.Nil(t, p.Remove(1))
}

func TestPendingOrdersContainsProductOrder(t *testing.T) {
	var p PendingOrders
	milk := &domain.Product{Name: "Milk", ID: "P1"}
	bread := &domain.Product{Name: "Bread", ID: "P2"}
	p.Add(&domain.Order{ID: 1, Item: milk, Quantity: 10})

	assert.True(t, p.ContainsProductOrder(milk))
	assert.True(t, p.ContainsProductOrder(&domain.Product{ID: "p1"}), "matches on id, ignoring case")
	assert.False(t, p.ContainsProductOrder(bread))
}
