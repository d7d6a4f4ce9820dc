package console

import (
	"errors"

	"github.com/talkincode/grocerstore/internal/domain"
)

func (u *UI) addMember() error {
	name, err := u.promptString("Member name: ")
	if err != nil {
		return err
	}
	address, err := u.promptString("Address: ")
	if err != nil {
		return err
	}
	phone, err := u.promptString("Phone number: ")
	if err != nil {
		return err
	}
	fee, err := u.promptFloat("Membership fee: ")
	if err != nil {
		return err
	}
	joinDate, err := u.promptDate("Join date (blank for today): ")
	if err != nil {
		return err
	}
	member := u.app.Store().EnrollMember(name, address, phone, fee, joinDate)
	u.printf("Member enrolled with id %d.\n", member.ID)
	return nil
}

func (u *UI) removeMember() error {
	id, err := u.promptInt64("Member id: ")
	if err != nil {
		return err
	}
	member, err := u.app.Store().RemoveMember(id)
	if errors.Is(err, domain.ErrMemberNotFound) {
		u.println("No member with that id.")
		return nil
	}
	u.printf("Removed member %d (%s).\n", member.ID, member.Name)
	return nil
}

func (u *UI) addProduct() error {
	st := u.app.Store()
	name, err := u.promptString("Product name: ")
	if err != nil {
		return err
	}
	id, err := u.promptString("Product id: ")
	if err != nil {
		return err
	}
	stock, err := u.promptInt("Initial stock: ")
	if err != nil {
		return err
	}
	price, err := u.promptFloat("Price: ")
	if err != nil {
		return err
	}
	reorderLevel, err := u.promptInt("Reorder level: ")
	if err != nil {
		return err
	}
	product, err := st.AddProduct(name, id, stock, price, reorderLevel)
	if errors.Is(err, domain.ErrProductExists) {
		u.println("A product with that name already exists.")
		return nil
	}
	u.printf("Product %s added.\n", product.Name)
	for _, order := range st.ListOrders() {
		if order.Product.MatchesID(product.ID) {
			u.printf("Initial restock order %d placed for %d units.\n", order.ID, order.Quantity)
			break
		}
	}
	return nil
}

func (u *UI) checkout() error {
	st := u.app.Store()
	memberID, err := u.promptInt64("Member id: ")
	if err != nil {
		return err
	}
	if _, err := st.GetMember(memberID); err != nil {
		u.println("No member with that id.")
		return nil
	}
	for {
		productID, err := u.promptString("Product id: ")
		if err != nil {
			return err
		}
		product, err := st.GetProduct(productID)
		if err != nil {
			u.println("No product with that id.")
		} else {
			qty, err := u.promptQuantity(product)
			if err != nil {
				return err
			}
			trans, err := st.CheckoutMember(memberID, productID, qty)
			if err != nil {
				u.printf("Checkout failed: %v.\n", err)
			} else {
				u.println(u.formatTransaction(trans))
				if order, created, _ := st.CheckForReorder(productID); created {
					u.printf("Restock order %d placed for %d units of %s.\n",
						order.ID, order.Quantity, order.Product.Name)
				}
			}
		}
		more, err := u.promptYesNo("Check out more items? (y/n): ")
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

// promptQuantity re-prompts until the quantity is positive and does not
// exceed current stock.
func (u *UI) promptQuantity(product domain.Product) (int, error) {
	for {
		qty, err := u.promptInt("Quantity: ")
		if err != nil {
			return 0, err
		}
		if qty <= 0 {
			u.println("Quantity must be positive.")
			continue
		}
		if qty > product.Stock {
			u.printf("Only %d in stock.\n", product.Stock)
			continue
		}
		return qty, nil
	}
}

func (u *UI) processShipment() error {
	id, err := u.promptInt64("Order id: ")
	if err != nil {
		return err
	}
	product, err := u.app.Store().ProcessShipment(id)
	if errors.Is(err, domain.ErrOrderNotFound) {
		u.println("No outstanding order with that id.")
		return nil
	}
	u.printf("Shipment processed, %s stock is now %d.\n", product.Name, product.Stock)
	return nil
}

func (u *UI) changePrice() error {
	id, err := u.promptString("Product id: ")
	if err != nil {
		return err
	}
	price, err := u.promptFloat("New price: ")
	if err != nil {
		return err
	}
	product, err := u.app.Store().ChangeProductPrice(id, price)
	if errors.Is(err, domain.ErrProductNotFound) {
		u.println("No product with that id.")
		return nil
	}
	u.printf("Price of %s is now %s.\n", product.Name, u.money(product.Price))
	return nil
}

func (u *UI) getProductInfo() error {
	name, err := u.promptString("Product name: ")
	if err != nil {
		return err
	}
	product, err := u.app.Store().GetProductByName(name)
	if errors.Is(err, domain.ErrProductNotFound) {
		u.println("No product with that name.")
		return nil
	}
	u.println(u.formatProduct(product))
	return nil
}

func (u *UI) getMemberInfo() error {
	id, err := u.promptInt64("Member id: ")
	if err != nil {
		return err
	}
	member, err := u.app.Store().GetMember(id)
	if errors.Is(err, domain.ErrMemberNotFound) {
		u.println("No member with that id.")
		return nil
	}
	u.println(u.formatMember(member))
	return nil
}

func (u *UI) printTransactions() error {
	id, err := u.promptInt64("Member id: ")
	if err != nil {
		return err
	}
	start, err := u.promptDate("Start date (blank for today): ")
	if err != nil {
		return err
	}
	end, err := u.promptDate("End date (blank for today): ")
	if err != nil {
		return err
	}
	for end.Before(start) {
		u.println("End date must not be before start date.")
		if end, err = u.promptDate("End date (blank for today): "); err != nil {
			return err
		}
	}
	transactions, err := u.app.Store().TransactionsForMember(id, start, end)
	if errors.Is(err, domain.ErrMemberNotFound) {
		u.println("No member with that id.")
		return nil
	}
	if len(transactions) == 0 {
		u.println("No transactions in that period.")
		return nil
	}
	var total float64
	for _, t := range transactions {
		u.println(u.formatTransaction(t))
		total += t.Total()
	}
	u.printf("%d transactions, total %s.\n", len(transactions), u.money(total))
	return nil
}

func (u *UI) listOrders() {
	orders := u.app.Store().ListOrders()
	if len(orders) == 0 {
		u.println("No outstanding orders.")
		return
	}
	for _, o := range orders {
		u.println(u.formatOrder(o))
	}
}

func (u *UI) listMembers() {
	members := u.app.Store().ListMembers()
	if len(members) == 0 {
		u.println("No members enrolled.")
		return
	}
	for _, m := range members {
		u.println(u.formatMember(m))
	}
}

func (u *UI) listProducts() {
	products := u.app.Store().ListProducts()
	if len(products) == 0 {
		u.println("The catalog is empty.")
		return
	}
	for _, p := range products {
		u.println(u.formatProduct(p))
	}
}

func (u *UI) save() {
	if err := u.app.Save(); err != nil {
		u.printf("Save failed: %v.\n", err)
		return
	}
	u.println("Store data saved.")
}
