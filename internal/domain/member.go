package domain

import "time"

// Member represents an enrolled store member together with the append-only
// log of purchases made against the account. The id is issued by the store's
// member sequence and is never reused within a process lifetime.
type Member struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	Address      string        `json:"address"`
	Phone        string        `json:"phone"`
	JoinDate     time.Time     `json:"join_date"`
	Fee          float64       `json:"fee"`
	Transactions []Transaction `json:"transactions"`
}

// MatchesID reports whether id equals the member id.
func (m *Member) MatchesID(id int64) bool {
	return m.ID == id
}

// AddTransaction appends a purchase record to the member's log.
func (m *Member) AddTransaction(t Transaction) {
	m.Transactions = append(m.Transactions, t)
}

// TransactionsBetween returns copies of the transactions whose purchase date
// falls within [start, end], inclusive at both bounds at calendar-day
// granularity, in chronological order.
func (m *Member) TransactionsBetween(start, end time.Time) []Transaction {
	from := dayStart(start)
	to := dayStart(end).AddDate(0, 0, 1)
	out := make([]Transaction, 0)
	for _, t := range m.Transactions {
		if !t.Timestamp.Before(from) && t.Timestamp.Before(to) {
			out = append(out, t)
		}
	}
	return out
}

// Clone returns a detached copy, including a fresh copy of the transaction
// log, sharing no state with the live entity.
func (m *Member) Clone() Member {
	cp := *m
	cp.Transactions = make([]Transaction, len(m.Transactions))
	copy(cp.Transactions, m.Transactions)
	return cp
}

func dayStart(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, t.Location())
}
