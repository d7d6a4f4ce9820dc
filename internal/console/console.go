// Package console implements the numbered-menu front end. Each command is a
// blocking prompt/response sequence over stdin/stdout; invalid input
// re-prompts and business-rule failures print a status line, the loop only
// ends on the exit command or when input is closed.
package console

import (
	"bufio"
	"fmt"
	"io"

	"github.com/talkincode/grocerstore/internal/app"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	cmdExit = iota
	cmdAddMember
	cmdRemoveMember
	cmdAddProduct
	cmdCheckout
	cmdProcessShipment
	cmdChangePrice
	cmdGetProductInfo
	cmdGetMemberInfo
	cmdPrintTransactions
	cmdListOrders
	cmdListMembers
	cmdListProducts
	cmdSave
	cmdHelp
)

// UI drives one interactive console session against the store facade.
type UI struct {
	app app.AppContext
	in  *bufio.Reader
	out io.Writer
	msg *message.Printer
}

func New(application app.AppContext, in io.Reader, out io.Writer) *UI {
	return &UI{
		app: application,
		in:  bufio.NewReader(in),
		out: out,
		msg: message.NewPrinter(language.English),
	}
}

// Run executes the command loop until the exit command or closed input.
func (u *UI) Run() {
	u.help()
	for {
		cmd, err := u.promptInt("Enter command (14 for help): ")
		if err != nil {
			u.println("Input closed, exiting.")
			return
		}
		if cmd == cmdExit {
			u.println("Goodbye.")
			return
		}
		u.dispatch(cmd)
	}
}

func (u *UI) dispatch(cmd int) {
	var err error
	switch cmd {
	case cmdAddMember:
		err = u.addMember()
	case cmdRemoveMember:
		err = u.removeMember()
	case cmdAddProduct:
		err = u.addProduct()
	case cmdCheckout:
		err = u.checkout()
	case cmdProcessShipment:
		err = u.processShipment()
	case cmdChangePrice:
		err = u.changePrice()
	case cmdGetProductInfo:
		err = u.getProductInfo()
	case cmdGetMemberInfo:
		err = u.getMemberInfo()
	case cmdPrintTransactions:
		err = u.printTransactions()
	case cmdListOrders:
		u.listOrders()
	case cmdListMembers:
		u.listMembers()
	case cmdListProducts:
		u.listProducts()
	case cmdSave:
		u.save()
	case cmdHelp:
		u.help()
	default:
		u.println("Unknown command, enter 14 for help.")
	}
	if err != nil {
		u.println("Input closed, command aborted.")
	}
}

func (u *UI) help() {
	u.println("Interface Help - ")
	u.printf("%d\t:Exit\n\n", cmdExit)
	u.printf("%d\t:Add Member\n", cmdAddMember)
	u.printf("%d\t:Remove Member\n", cmdRemoveMember)
	u.printf("%d\t:Add Product\n", cmdAddProduct)
	u.printf("%d\t:Check Out Member Items\n", cmdCheckout)
	u.printf("%d\t:Process Shipment\n", cmdProcessShipment)
	u.printf("%d\t:Change Product Price\n", cmdChangePrice)
	u.printf("%d\t:Get Product Info\n", cmdGetProductInfo)
	u.printf("%d\t:Get Member Info\n", cmdGetMemberInfo)
	u.printf("%d\t:Print Transactions\n", cmdPrintTransactions)
	u.printf("%d\t:List Outstanding Orders\n", cmdListOrders)
	u.printf("%d\t:List All Members\n", cmdListMembers)
	u.printf("%d\t:List All Products\n", cmdListProducts)
	u.printf("%d\t:Save Store Data\n", cmdSave)
	u.printf("%d\t:Print Help\n\n", cmdHelp)
}

func (u *UI) println(a ...interface{}) {
	fmt.Fprintln(u.out, a...)
}

func (u *UI) printf(format string, a ...interface{}) {
	fmt.Fprintf(u.out, format, a...)
}
