package repository

import (
	"time"

	"github.com/Hsharma41126/new-restorant/entity"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Writes (tx-aware) ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

// ---------------- Reads ----------------

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderWithItems(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("OrderItems").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

type OrderSummary struct {
	ID          uint               `json:"id"`
	OrderNo     string             `json:"orderNo"`
	OrderType   entity.OrderType   `json:"orderType"`
	TotalAmount decimal.Decimal    `json:"totalAmount"`
	Status      entity.OrderStatus `json:"status"`
	CreatedAt   time.Time          `json:"createdAt"`
}

func (r *OrderRepository) ListOrders(status entity.OrderStatus, limit int) ([]OrderSummary, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var out []OrderSummary
	db := r.DB.Model(&entity.Order{}).
		Select("id, order_no, order_type, total_amount, status, created_at")
	if status != "" {
		db = db.Where("status = ?", status)
	}
	err := db.Order("id DESC").Limit(limit).Scan(&out).Error
	return out, err
}

// ---------------- Status ----------------

// UpdateStatus is a single-row conditional update; the value was validated by
// the caller. RowsAffected 0 means the order does not exist.
func (r *OrderRepository) UpdateStatus(orderID uint, to entity.OrderStatus) (int64, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// HasActiveTicket reports whether the order still has a ticket that the
// kitchen is working on (anything not yet Served).
func (r *OrderRepository) HasActiveTicket(orderID uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.KitchenTicket{}).
		Where("order_id = ? AND status <> ?", orderID, entity.TicketServed).
		Count(&cnt).Error
	return cnt > 0, err
}
