package repository

import (
	"time"

	"github.com/Hsharma41126/new-restorant/entity"
	"gorm.io/gorm"
)

type TicketRepository struct {
	DB *gorm.DB
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{DB: db}
}

// ---------------- Writes (tx-aware) ----------------

func (r *TicketRepository) CreateTicket(tx *gorm.DB, t *entity.KitchenTicket) error {
	return tx.Create(t).Error
}

func (r *TicketRepository) CreateTicketItem(tx *gorm.DB, ti *entity.TicketItem) error {
	return tx.Create(ti).Error
}

// ---------------- Reads ----------------

func (r *TicketRepository) GetTicket(ticketID uint) (*entity.KitchenTicket, error) {
	var t entity.KitchenTicket
	if err := r.DB.Preload("Items").First(&t, ticketID).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TicketRepository) GetTicketByOrder(orderID uint) (*entity.KitchenTicket, error) {
	var t entity.KitchenTicket
	if err := r.DB.Preload("Items").Where("order_id = ?", orderID).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TicketRepository) GetTicketItem(ticketID, itemID uint) (*entity.TicketItem, error) {
	var ti entity.TicketItem
	err := r.DB.Where("id = ? AND ticket_id = ?", itemID, ticketID).First(&ti).Error
	if err != nil {
		return nil, err
	}
	return &ti, nil
}

func (r *TicketRepository) ListTickets(status entity.TicketStatus, limit int) ([]entity.KitchenTicket, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var out []entity.KitchenTicket
	db := r.DB.Preload("Items")
	if status != "" {
		db = db.Where("status = ?", status)
	}
	err := db.Order("id ASC").Limit(limit).Find(&out).Error
	return out, err
}

// ---------------- Status ----------------

func (r *TicketRepository) UpdateStatus(ticketID uint, to entity.TicketStatus) (int64, error) {
	res := r.DB.Model(&entity.KitchenTicket{}).
		Where("id = ?", ticketID).
		Update("status", to)
	return res.RowsAffected, res.Error
}

func (r *TicketRepository) UpdateItemStatus(ticketID, itemID uint, to entity.LineStatus) (int64, error) {
	res := r.DB.Model(&entity.TicketItem{}).
		Where("id = ? AND ticket_id = ?", itemID, ticketID).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// MarkPrinted records a successful dispatch. Safe to call again on reprint;
// it refreshes printer and timestamp without touching rows elsewhere.
func (r *TicketRepository) MarkPrinted(ticketID, printerID uint, at time.Time) error {
	return r.DB.Model(&entity.KitchenTicket{}).
		Where("id = ?", ticketID).
		Updates(map[string]any{
			"status":     entity.TicketPrinted,
			"printer_id": printerID,
			"printed_at": at,
		}).Error
}

// MarkReady is the derived cascade transition: every line went Ready.
func (r *TicketRepository) MarkReady(ticketID uint, at time.Time) error {
	return r.DB.Model(&entity.KitchenTicket{}).
		Where("id = ?", ticketID).
		Updates(map[string]any{
			"status":       entity.TicketReady,
			"completed_at": at,
		}).Error
}

// AllItemsReady reports whether no line of the ticket is left below Ready.
func (r *TicketRepository) AllItemsReady(ticketID uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.TicketItem{}).
		Where("ticket_id = ? AND status NOT IN ?", ticketID,
			[]entity.LineStatus{entity.LineReady, entity.LineServed}).
		Count(&cnt).Error
	return cnt == 0, err
}
