package controllers

import (
	"errors"
	"strconv"

	"github.com/Hsharma41126/new-restorant/entity"
	"github.com/Hsharma41126/new-restorant/pkg/resp"
	"github.com/Hsharma41126/new-restorant/services"
	"github.com/Hsharma41126/new-restorant/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct {
	Service  *services.OrderService
	Printers *services.PrinterService
}

func NewOrderController(service *services.OrderService, printers *services.PrinterService) *OrderController {
	return &OrderController{Service: service, Printers: printers}
}

func paramID(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(v), true
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	res, err := oc.Service.Create(uid, &req)
	switch {
	case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrItemUnavailable):
		resp.BadRequest(c, err.Error())
	case err != nil:
		// Transaction failures roll back everything; no order was created.
		resp.ServerError(c, err)
	default:
		resp.Created(c, res)
	}
}

// GET /orders?status=&limit=
func (oc *OrderController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	out, err := oc.Service.List(entity.OrderStatus(c.Query("status")), limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	d, err := oc.Service.Detail(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "order not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, d)
}

type updateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /orders/:id/status
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err := oc.Service.UpdateStatus(id, req.Status)
	switch {
	case errors.Is(err, services.ErrInvalidStatusValue), errors.Is(err, services.ErrInvalidTransition):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrOrderHasActiveTicket):
		resp.Conflict(c, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "order not found")
	case err != nil:
		resp.ServerError(c, err)
	default:
		resp.OK(c, gin.H{"status": req.Status})
	}
}

// POST /orders/:id/receipt — printing is best effort; a failed dispatch is a
// warning in the payload, never an error for the order.
func (oc *OrderController) PrintReceipt(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	res, err := oc.Printers.PrintReceipt(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "order not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, res)
}
