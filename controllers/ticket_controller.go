package controllers

import (
	"errors"
	"strconv"

	"github.com/Hsharma41126/new-restorant/entity"
	"github.com/Hsharma41126/new-restorant/pkg/resp"
	"github.com/Hsharma41126/new-restorant/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TicketController struct {
	Service  *services.TicketService
	Printers *services.PrinterService
}

func NewTicketController(service *services.TicketService, printers *services.PrinterService) *TicketController {
	return &TicketController{Service: service, Printers: printers}
}

// GET /tickets?status=&limit=  (kitchen queue)
func (tc *TicketController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	out, err := tc.Service.List(entity.TicketStatus(c.Query("status")), limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /tickets/:id
func (tc *TicketController) Detail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	t, err := tc.Service.Get(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "ticket not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, t)
}

// PATCH /tickets/:id/status
func (tc *TicketController) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	tc.respondTransition(c, tc.Service.UpdateStatus(id, req.Status), req.Status)
}

// PATCH /tickets/:id/items/:itemId/status
func (tc *TicketController) UpdateItemStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	itemID, ok := paramID(c, "itemId")
	if !ok {
		return
	}
	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	tc.respondTransition(c, tc.Service.UpdateItemStatus(id, itemID, req.Status), req.Status)
}

func (tc *TicketController) respondTransition(c *gin.Context, err error, status string) {
	switch {
	case errors.Is(err, services.ErrInvalidStatusValue), errors.Is(err, services.ErrInvalidTransition):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "not found")
	case err != nil:
		resp.ServerError(c, err)
	default:
		resp.OK(c, gin.H{"status": status})
	}
}

// POST /tickets/:id/print — re-runs routing + dispatch; safe to call again.
func (tc *TicketController) Print(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	res, err := tc.Printers.PrintTicket(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "ticket not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, res)
}
