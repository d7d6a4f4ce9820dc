package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceIssuesMonotonicIds(t *testing.T) {
	s := NewSequence()
	assert.Equal(t, int64(1), s.Next())
	assert.Equal(t, int64(2), s.Next())
	assert.Equal(t, int64(3), s.Current())
	assert.Equal(t, int64(3), s.Next())
}

func TestSequenceRestore(t *testing.T) {
	s := NewSequence()
	s.Restore(10)
	assert.Equal(t, int64(10), s.Next())

	s.Restore(0)
	assert.Equal(t, int64(1), s.Next(), "restore clamps to the initial value")
}

func TestProductMatchesIgnoreCase(t *testing.T) {
	p := Product{Name: "Milk", ID: "P1"}
	assert.True(t, p.MatchesName("mIlK"))
	assert.True(t, p.MatchesID("p1"))
	assert.False(t, p.MatchesName("Bread"))
}

func TestTransactionSnapshotsProduct(t *testing.T) {
	p := Product{Name: "Milk", ID: "P1", Stock: 10, Price: 2.50, ReorderLevel: 5}
	trans := NewTransaction(&p, 3)

	p.Price = 9.99
	p.Name = "Whole Milk"

	assert.InDelta(t, 2.50, trans.Item.Price, 1e-9)
	assert.Equal(t, "Milk", trans.Item.Name)
	assert.InDelta(t, 7.50, trans.Total(), 1e-9)
}

func TestMemberTransactionsBetweenDayGranularity(t *testing.T) {
	m := Member{ID: 1, Name: "Alice"}
	day := time.Date(2026, 3, 15, 14, 30, 0, 0, time.Local)
	m.AddTransaction(Transaction{Item: Product{Name: "Milk", Price: 2.50}, Quantity: 1, Timestamp: day})

	onDay := time.Date(2026, 3, 15, 23, 59, 0, 0, time.Local)
	got := m.TransactionsBetween(onDay, onDay)
	assert.Len(t, got, 1, "same calendar day matches regardless of time of day")

	before := day.AddDate(0, 0, -1)
	assert.Empty(t, m.TransactionsBetween(before, before))

	after := day.AddDate(0, 0, 1)
	assert.Empty(t, m.TransactionsBetween(after, after))
}

func TestMemberTransactionsBetweenKeepsChronologicalOrder(t *testing.T) {
	m := Member{ID: 1}
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	for i := 0; i < 3; i++ {
		m.AddTransaction(Transaction{Quantity: i + 1, Timestamp: base.AddDate(0, 0, i)})
	}

	got := m.TransactionsBetween(base, base.AddDate(0, 0, 2))
	require.Len(t, got, 3)
	assert.Equal(t, 1, got[0].Quantity)
	assert.Equal(t, 3, got[2].Quantity)
}

func TestMemberCloneDetachesTransactionLog(t *testing.T) {
	m := Member{ID: 1}
	m.AddTransaction(Transaction{Quantity: 1, Timestamp: time.Now()})

	cp := m.Clone()
	cp.Transactions[0].Quantity = 99

	assert.Equal(t, 1, m.Transactions[0].Quantity)
}
