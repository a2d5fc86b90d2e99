package controllers

import (
	"errors"

	"github.com/Hsharma41126/new-restorant/pkg/resp"
	"github.com/Hsharma41126/new-restorant/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PrinterController exposes the read-only printer registry plus a
// connectivity test. Printer CRUD itself belongs to an external collaborator.
type PrinterController struct {
	Service *services.PrinterService
}

func NewPrinterController(service *services.PrinterService) *PrinterController {
	return &PrinterController{Service: service}
}

// GET /printers
func (pc *PrinterController) List(c *gin.Context) {
	out, err := pc.Service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /printers/:id/test
func (pc *PrinterController) Test(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	online, err := pc.Service.TestPrinter(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "printer not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"isOnline": online})
}
