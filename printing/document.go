package printing

import (
	"fmt"
	"strings"
	"time"

	"github.com/Hsharma41126/new-restorant/entity"
)

const lineWidth = 32

func divider() string { return strings.Repeat("-", lineWidth) }

// FormatTicket renders a kitchen ticket as plain text. The denormalized item
// names on the ticket are used so the document is stable even if the menu
// changed since the order.
func FormatTicket(t *entity.KitchenTicket, o *entity.Order) []byte {
	var b strings.Builder
	b.WriteString("*** KITCHEN TICKET ***\n")
	fmt.Fprintf(&b, "Ticket: %s\n", t.TicketNo)
	fmt.Fprintf(&b, "Order:  %s (%s)\n", o.OrderNo, o.OrderType)
	if o.TableID != nil {
		fmt.Fprintf(&b, "Table:  %d\n", *o.TableID)
	}
	fmt.Fprintf(&b, "Category: %s\n", t.Category)
	fmt.Fprintf(&b, "Time: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	b.WriteString(divider() + "\n")
	for _, it := range t.Items {
		fmt.Fprintf(&b, "%2d x %s\n", it.Quantity, it.ItemName)
		if it.Note != "" {
			fmt.Fprintf(&b, "     * %s\n", it.Note)
		}
	}
	b.WriteString(divider() + "\n\n")
	return []byte(b.String())
}

// FormatReceipt renders a customer receipt for a completed (or in-flight)
// order.
func FormatReceipt(o *entity.Order, items []entity.OrderItem, names map[uint]string) []byte {
	var b strings.Builder
	b.WriteString("*** RECEIPT ***\n")
	fmt.Fprintf(&b, "Order: %s\n", o.OrderNo)
	fmt.Fprintf(&b, "Time: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	b.WriteString(divider() + "\n")
	for _, it := range items {
		name := names[it.MenuItemID]
		if name == "" {
			name = fmt.Sprintf("Item #%d", it.MenuItemID)
		}
		fmt.Fprintf(&b, "%2d x %-18s %8s\n", it.Quantity, name, it.TotalPrice.StringFixed(2))
	}
	b.WriteString(divider() + "\n")
	fmt.Fprintf(&b, "Subtotal %23s\n", o.Subtotal.StringFixed(2))
	fmt.Fprintf(&b, "Tax      %23s\n", o.TaxAmount.StringFixed(2))
	if !o.DiscountAmount.IsZero() {
		fmt.Fprintf(&b, "Discount %22s-\n", o.DiscountAmount.StringFixed(2))
	}
	fmt.Fprintf(&b, "TOTAL    %23s\n\n", o.TotalAmount.StringFixed(2))
	return []byte(b.String())
}
