package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/Hsharma41126/new-restorant/entity"
	"github.com/Hsharma41126/new-restorant/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	Tickets  *repository.TicketRepository
	Menu     *repository.MenuRepository
	Settings *repository.SettingRepository
	Pricing  *PricingService
	Printers *PrinterService
	Policy   TransitionPolicy
	Events   Broadcaster
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	tickets *repository.TicketRepository,
	menu *repository.MenuRepository,
	settings *repository.SettingRepository,
	pricing *PricingService,
	printers *PrinterService,
	policy TransitionPolicy,
) *OrderService {
	return &OrderService{
		DB: db, Repo: repo, Tickets: tickets, Menu: menu,
		Settings: settings, Pricing: pricing, Printers: printers, Policy: policy,
	}
}

// NewDocumentNo builds a human-readable number: timestamp for ordering plus a
// random suffix so concurrent creations in the same second stay distinct. The
// unique index is the real guard; a collision fails the insert cleanly.
func NewDocumentNo(prefix string) string {
	suffix := strings.ToUpper(uuid.NewString()[:6])
	return fmt.Sprintf("%s-%s-%s", prefix, time.Now().Format("20060102150405"), suffix)
}

// ----- DTOs from Controller -----

type CreateOrderReq struct {
	OrderType    string        `json:"orderType" binding:"required"`
	TableID      *uint         `json:"tableId"`
	SessionID    *uint         `json:"sessionId"`
	CustomerName string        `json:"customerName"`
	Items        []OrderLineIn `json:"items" binding:"required,min=1,dive"`
}

type CreateOrderRes struct {
	OrderID     uint            `json:"orderId"`
	OrderNo     string          `json:"orderNo"`
	TicketNo    string          `json:"ticketNo"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// Create runs the pipeline core: price the lines, then write the order, its
// items, the kitchen ticket and its lines as one transaction. No order exists
// without its ticket and no ticket without all its lines. Printing happens
// after commit and cannot fail the order.
func (s *OrderService) Create(userID uint, req *CreateOrderReq) (*CreateOrderRes, error) {
	orderType := entity.OrderType(req.OrderType)
	if !orderType.Valid() {
		return nil, fmt.Errorf("%w: order type %q", ErrValidation, req.OrderType)
	}

	priced, err := s.Pricing.Resolve(req.Items)
	if err != nil {
		return nil, err
	}

	var order entity.Order
	var ticket entity.KitchenTicket
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order = entity.Order{
			OrderNo:        NewDocumentNo("ORD"),
			OrderType:      orderType,
			TableID:        req.TableID,
			SessionID:      req.SessionID,
			CustomerName:   req.CustomerName,
			Subtotal:       priced.Subtotal,
			TaxAmount:      priced.TaxAmount,
			DiscountAmount: priced.DiscountAmount,
			TotalAmount:    priced.TotalAmount,
			Status:         entity.OrderPending,
			PaymentStatus:  entity.PaymentUnpaid,
			CreatedBy:      userID,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		itemIDs := make([]uint, 0, len(priced.Lines))
		orderItems := make([]entity.OrderItem, 0, len(priced.Lines))
		for _, ln := range priced.Lines {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: ln.Item.ID,
				Quantity:   ln.Quantity,
				UnitPrice:  ln.UnitPrice,
				TotalPrice: ln.TotalPrice,
				Status:     entity.LinePending,
				Note:       ln.Note,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
			orderItems = append(orderItems, oi)
			itemIDs = append(itemIDs, ln.Item.ID)
		}

		names, err := s.Menu.CategoryNamesForItems(itemIDs)
		if err != nil {
			return err
		}

		ticket = entity.KitchenTicket{
			TicketNo: NewDocumentNo("KT"),
			OrderID:  order.ID,
			Category: ClassifyCategoryNames(names),
			Status:   entity.TicketPending,
		}
		if err := s.Tickets.CreateTicket(tx, &ticket); err != nil {
			return err
		}

		for i, ln := range priced.Lines {
			ti := entity.TicketItem{
				TicketID:    ticket.ID,
				OrderItemID: orderItems[i].ID,
				ItemName:    ln.Item.Name,
				Quantity:    ln.Quantity,
				Note:        ln.Note,
				Status:      entity.LinePending,
			}
			if err := s.Tickets.CreateTicketItem(tx, &ti); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"orderNo":  order.OrderNo,
		"ticketNo": ticket.TicketNo,
		"total":    order.TotalAmount.StringFixed(2),
		"category": ticket.Category,
	}).Info("order created")

	if s.Events != nil {
		s.Events.Publish(TicketEvent{
			Type:     EventTicketCreated,
			TicketID: ticket.ID,
			TicketNo: ticket.TicketNo,
			OrderID:  order.ID,
			OrderNo:  order.OrderNo,
			Status:   string(ticket.Status),
		})
	}

	// Auto-print is best effort and decoupled from the caller's success.
	if s.Printers != nil && s.Settings.GetBool(entity.SettingAutoPrint, false) {
		go s.autoPrint(ticket.ID, ticket.TicketNo)
	}

	return &CreateOrderRes{
		OrderID:     order.ID,
		OrderNo:     order.OrderNo,
		TicketNo:    ticket.TicketNo,
		TotalAmount: order.TotalAmount,
	}, nil
}

func (s *OrderService) autoPrint(ticketID uint, ticketNo string) {
	res, err := s.Printers.PrintTicket(ticketID)
	switch {
	case err != nil:
		log.WithField("ticketNo", ticketNo).WithError(err).Warn("auto-print failed")
	case !res.Printed:
		log.WithFields(log.Fields{"ticketNo": ticketNo, "warning": res.Warning}).
			Warn("auto-print not dispatched")
	}
}

// ----- List & Detail -----

func (s *OrderService) List(status entity.OrderStatus, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrders(status, limit)
}

type OrderDetail struct {
	Order  entity.Order          `json:"order"`
	Items  []entity.OrderItem    `json:"items"`
	Ticket *entity.KitchenTicket `json:"ticket,omitempty"`
}

func (s *OrderService) Detail(orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrderWithItems(orderID)
	if err != nil {
		return nil, err
	}
	d := &OrderDetail{Order: *o, Items: o.OrderItems}
	if t, err := s.Tickets.GetTicketByOrder(orderID); err == nil {
		d.Ticket = t
	}
	return d, nil
}
