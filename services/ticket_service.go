package services

import (
	"time"

	"github.com/Hsharma41126/new-restorant/entity"
	"github.com/Hsharma41126/new-restorant/repository"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type TicketService struct {
	Repo   *repository.TicketRepository
	Policy TransitionPolicy
	Events Broadcaster
}

func NewTicketService(repo *repository.TicketRepository, policy TransitionPolicy) *TicketService {
	return &TicketService{Repo: repo, Policy: policy}
}

func (s *TicketService) Get(ticketID uint) (*entity.KitchenTicket, error) {
	return s.Repo.GetTicket(ticketID)
}

func (s *TicketService) List(status entity.TicketStatus, limit int) ([]entity.KitchenTicket, error) {
	return s.Repo.ListTickets(status, limit)
}

// UpdateStatus is the explicit, caller-driven ticket transition. The derived
// Ready transition lives in UpdateItemStatus.
func (s *TicketService) UpdateStatus(ticketID uint, raw string) error {
	to := entity.TicketStatus(raw)
	if !to.Valid() {
		return ErrInvalidStatusValue
	}

	t, err := s.Repo.GetTicket(ticketID)
	if err != nil {
		return err
	}
	if err := s.Policy.AllowTicket(t.Status, to); err != nil {
		return err
	}

	affected, err := s.Repo.UpdateStatus(ticketID, to)
	if err != nil {
		return err
	}
	if affected == 0 {
		return gorm.ErrRecordNotFound
	}

	s.publish(TicketEvent{
		Type:     EventTicketStatus,
		TicketID: t.ID,
		TicketNo: t.TicketNo,
		OrderID:  t.OrderID,
		Status:   raw,
	})
	return nil
}

// UpdateItemStatus transitions one ticket line and then runs the cascade
// check: when every line of the ticket is at Ready or beyond, the ticket
// itself goes Ready and gets its completed timestamp. The check is
// synchronous with the update, not polled.
func (s *TicketService) UpdateItemStatus(ticketID, itemID uint, raw string) error {
	to := entity.LineStatus(raw)
	if !to.Valid() {
		return ErrInvalidStatusValue
	}

	item, err := s.Repo.GetTicketItem(ticketID, itemID)
	if err != nil {
		return err
	}
	if err := s.Policy.AllowLine(item.Status, to); err != nil {
		return err
	}

	affected, err := s.Repo.UpdateItemStatus(ticketID, itemID, to)
	if err != nil {
		return err
	}
	if affected == 0 {
		return gorm.ErrRecordNotFound
	}

	s.publish(TicketEvent{
		Type:     EventTicketLine,
		TicketID: ticketID,
		ItemID:   itemID,
		Status:   raw,
	})

	if to == entity.LineReady || to == entity.LineServed {
		ready, err := s.Repo.AllItemsReady(ticketID)
		if err != nil {
			return err
		}
		if ready {
			if err := s.Repo.MarkReady(ticketID, time.Now()); err != nil {
				return err
			}
			log.WithField("ticketId", ticketID).Info("ticket ready, all lines done")
			s.publish(TicketEvent{
				Type:     EventTicketStatus,
				TicketID: ticketID,
				Status:   string(entity.TicketReady),
			})
		}
	}
	return nil
}

func (s *TicketService) publish(evt TicketEvent) {
	if s.Events != nil {
		s.Events.Publish(evt)
	}
}
