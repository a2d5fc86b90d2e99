package services

import (
	"github.com/Hsharma41126/new-restorant/entity"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// UpdateStatus moves an order to the requested status. The value is checked
// against the enumerated set before any write; whether the move itself is
// legal is the policy's call. Completing an order while its kitchen ticket is
// still active is always rejected.
func (s *OrderService) UpdateStatus(orderID uint, raw string) error {
	to := entity.OrderStatus(raw)
	if !to.Valid() {
		return ErrInvalidStatusValue
	}

	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return err
	}
	if err := s.Policy.AllowOrder(o.Status, to); err != nil {
		return err
	}

	if to == entity.OrderCompleted {
		active, err := s.Repo.HasActiveTicket(orderID)
		if err != nil {
			return err
		}
		if active {
			return ErrOrderHasActiveTicket
		}
	}

	affected, err := s.Repo.UpdateStatus(orderID, to)
	if err != nil {
		return err
	}
	if affected == 0 {
		return gorm.ErrRecordNotFound
	}

	log.WithFields(log.Fields{"orderNo": o.OrderNo, "from": o.Status, "to": to}).
		Info("order status updated")
	return nil
}
