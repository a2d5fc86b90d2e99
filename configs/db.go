package configs

import (
	"github.com/Hsharma41126/new-restorant/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.SubCategory{}, &entity.MenuItem{},
		&entity.DiningTable{}, &entity.TableSession{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.KitchenTicket{}, &entity.TicketItem{},
		&entity.Printer{}, &entity.PrinterCategoryMapping{},
		&entity.Setting{},
	)
}
