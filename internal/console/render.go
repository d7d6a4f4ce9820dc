package console

import (
	"github.com/talkincode/grocerstore/internal/domain"
	"github.com/talkincode/grocerstore/internal/store"
)

const dateLayout = "2006-01-02"

// money renders an amount with grouped thousands and two decimals, e.g.
// $1,234.50.
func (u *UI) money(v float64) string {
	return u.msg.Sprintf("$%.2f", v)
}

func (u *UI) formatProduct(p domain.Product) string {
	return u.msg.Sprintf("ID: %s\t%s\tStock: %d\tPrice: %s\tReorder at: %d",
		p.ID, p.Name, p.Stock, u.money(p.Price), p.ReorderLevel)
}

func (u *UI) formatMember(m domain.Member) string {
	return u.msg.Sprintf("ID: %d\t%s\t%s\t%s\tJoined: %s\tFee: %s",
		m.ID, m.Name, m.Address, m.Phone,
		m.JoinDate.Format(dateLayout), u.money(m.Fee))
}

func (u *UI) formatOrder(o store.OrderView) string {
	return u.msg.Sprintf("ID: %d\t%s\t%s\tAmount: %d",
		o.ID, o.Product.Name, o.CreatedAt.Format(dateLayout), o.Quantity)
}

func (u *UI) formatTransaction(t domain.Transaction) string {
	return u.msg.Sprintf("%s\t%s\t%d\t%s\t%s",
		t.Timestamp.Format(dateLayout), t.Item.Name, t.Quantity,
		u.money(t.Item.Price), u.money(t.Total()))
}
