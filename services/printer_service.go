package services

import (
	"context"
	"errors"
	"time"

	"github.com/Hsharma41126/new-restorant/entity"
	"github.com/Hsharma41126/new-restorant/printing"
	"github.com/Hsharma41126/new-restorant/repository"
	log "github.com/sirupsen/logrus"
)

// PrinterService selects a destination printer for a ticket and dispatches
// the formatted document. Everything here runs after the order transaction
// has committed; nothing in this file can undo an order.
type PrinterService struct {
	Repo    *repository.PrinterRepository
	Tickets *repository.TicketRepository
	Orders  *repository.OrderRepository
	Menu    *repository.MenuRepository
	Client  printing.Client
	Timeout time.Duration
}

func NewPrinterService(
	repo *repository.PrinterRepository,
	tickets *repository.TicketRepository,
	orders *repository.OrderRepository,
	menu *repository.MenuRepository,
	client printing.Client,
	timeout time.Duration,
) *PrinterService {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &PrinterService{
		Repo: repo, Tickets: tickets, Orders: orders, Menu: menu,
		Client: client, Timeout: timeout,
	}
}

// PrintResult reports the outcome of one dispatch attempt. Printed=false
// with a warning is a partial success: the order stands, the paper didn't.
type PrintResult struct {
	Printed     bool   `json:"printed"`
	PrinterID   uint   `json:"printerId,omitempty"`
	PrinterName string `json:"printerName,omitempty"`
	Warning     string `json:"warning,omitempty"`
}

// RouteTicket picks the destination printer. First match wins: mapped
// printers for the ticket's categories/subcategories, then any online
// Kitchen printer, then ErrNoPrinterAvailable.
func (s *PrinterService) RouteTicket(t *entity.KitchenTicket) (*entity.Printer, error) {
	categoryIDs, subCategoryIDs, err := s.Menu.CategoryRefsForOrder(t.OrderID)
	if err != nil {
		return nil, err
	}

	p, err := s.Repo.FindByMapping(categoryIDs, subCategoryIDs)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	p, err = s.Repo.FindByFunction(entity.PrinterKitchen)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}
	return nil, ErrNoPrinterAvailable
}

// PrintTicket routes and dispatches one ticket. Reprints are idempotent:
// each call re-runs routing and dispatch and only refreshes the printed
// timestamp, never duplicating rows.
func (s *PrinterService) PrintTicket(ticketID uint) (*PrintResult, error) {
	t, err := s.Tickets.GetTicket(ticketID)
	if err != nil {
		return nil, err
	}
	o, err := s.Orders.GetOrder(t.OrderID)
	if err != nil {
		return nil, err
	}

	printer, err := s.RouteTicket(t)
	if errors.Is(err, ErrNoPrinterAvailable) {
		log.WithField("ticketNo", t.TicketNo).Warn("no printer available for ticket")
		return &PrintResult{Warning: "no printer available"}, nil
	}
	if err != nil {
		return nil, err
	}

	doc := printing.FormatTicket(t, o)
	if err := s.dispatch(printer, doc); err != nil {
		s.markOffline(printer, err)
		return &PrintResult{
			PrinterID:   printer.ID,
			PrinterName: printer.Name,
			Warning:     "print dispatch failed: " + err.Error(),
		}, nil
	}

	_ = s.Repo.SetOnline(printer.ID, true)
	if err := s.Tickets.MarkPrinted(t.ID, printer.ID, time.Now()); err != nil {
		// Paper already came out; report the dispatch as done and carry the
		// bookkeeping failure as a warning.
		log.WithField("ticketNo", t.TicketNo).WithError(err).
			Warn("ticket printed but status update failed")
		return &PrintResult{
			Printed:     true,
			PrinterID:   printer.ID,
			PrinterName: printer.Name,
			Warning:     "printed but status update failed: " + err.Error(),
		}, nil
	}

	log.WithFields(log.Fields{"ticketNo": t.TicketNo, "printer": printer.Name}).
		Info("ticket printed")
	return &PrintResult{Printed: true, PrinterID: printer.ID, PrinterName: printer.Name}, nil
}

// PrintReceipt dispatches a customer receipt for an order to a Receipt
// printer, falling back to General.
func (s *PrinterService) PrintReceipt(orderID uint) (*PrintResult, error) {
	o, err := s.Orders.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	items, err := s.Orders.GetOrderItems(orderID)
	if err != nil {
		return nil, err
	}
	itemIDs := make([]uint, 0, len(items))
	for _, it := range items {
		itemIDs = append(itemIDs, it.MenuItemID)
	}
	names, err := s.Menu.NamesForItems(itemIDs)
	if err != nil {
		return nil, err
	}

	printer, err := s.Repo.FindByFunction(entity.PrinterReceipt)
	if err != nil {
		return nil, err
	}
	if printer == nil {
		printer, err = s.Repo.FindByFunction(entity.PrinterGeneral)
		if err != nil {
			return nil, err
		}
	}
	if printer == nil {
		log.WithField("orderNo", o.OrderNo).Warn("no receipt printer available")
		return &PrintResult{Warning: "no printer available"}, nil
	}

	doc := printing.FormatReceipt(o, items, names)
	if err := s.dispatch(printer, doc); err != nil {
		s.markOffline(printer, err)
		return &PrintResult{
			PrinterID:   printer.ID,
			PrinterName: printer.Name,
			Warning:     "print dispatch failed: " + err.Error(),
		}, nil
	}

	_ = s.Repo.SetOnline(printer.ID, true)
	log.WithFields(log.Fields{"orderNo": o.OrderNo, "printer": printer.Name}).
		Info("receipt printed")
	return &PrintResult{Printed: true, PrinterID: printer.ID, PrinterName: printer.Name}, nil
}

func (s *PrinterService) List() ([]entity.Printer, error) {
	return s.Repo.List()
}

// TestPrinter probes connectivity and records the result on the printer row.
func (s *PrinterService) TestPrinter(id uint) (bool, error) {
	p, err := s.Repo.Get(id)
	if err != nil {
		return false, err
	}
	err = s.dispatch(p, []byte("*** TEST PRINT ***\n\n"))
	online := err == nil
	if uerr := s.Repo.SetOnline(p.ID, online); uerr != nil {
		return online, uerr
	}
	return online, nil
}

// dispatch hands the document to the printing collaborator. The client opens
// its own connection per attempt; nothing is shared between callers.
func (s *PrinterService) dispatch(p *entity.Printer, doc []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.Timeout)
	defer cancel()
	return s.Client.Print(ctx, printing.Job{Address: p.Address(), Document: doc})
}

func (s *PrinterService) markOffline(p *entity.Printer, cause error) {
	log.WithFields(log.Fields{"printer": p.Name, "address": p.Address()}).
		WithError(cause).Warn("print dispatch failed, marking printer offline")
	_ = s.Repo.SetOnline(p.ID, false)
}
