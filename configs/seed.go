package configs

import (
	"github.com/Hsharma41126/new-restorant/entity"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin account from env, once.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Warn("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.WithField("email", email).Info("admin already exists")
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

// SeedReferenceData fills lookup rows the core reads: categories, a starter
// menu, printers with category mappings, tables and default settings.
func SeedReferenceData() error {
	db := DB()

	var food, beverages entity.Category
	db.FirstOrCreate(&food, entity.Category{Name: "Food"})
	db.FirstOrCreate(&beverages, entity.Category{Name: "Beverages"})

	var mains, starters, hotDrinks, coldDrinks entity.SubCategory
	db.FirstOrCreate(&mains, entity.SubCategory{Name: "Mains", CategoryID: food.ID})
	db.FirstOrCreate(&starters, entity.SubCategory{Name: "Starters", CategoryID: food.ID})
	db.FirstOrCreate(&hotDrinks, entity.SubCategory{Name: "Hot Drinks", CategoryID: beverages.ID})
	db.FirstOrCreate(&coldDrinks, entity.SubCategory{Name: "Cold Drinks", CategoryID: beverages.ID})

	seedItem := func(name string, subID uint, price float64) {
		db.Where(entity.MenuItem{Name: name}).
			Attrs(entity.MenuItem{SubCategoryID: subID, Price: decimal.NewFromFloat(price), IsAvailable: true}).
			FirstOrCreate(&entity.MenuItem{})
	}
	seedItem("Margherita Pizza", mains.ID, 12.50)
	seedItem("Garlic Bread", starters.ID, 4.00)
	seedItem("Espresso", hotDrinks.ID, 2.50)
	seedItem("Lemonade", coldDrinks.ID, 3.00)

	var kitchen, bar, receipt entity.Printer
	db.Where(entity.Printer{Name: "Kitchen Main"}).
		Attrs(entity.Printer{Function: entity.PrinterKitchen, IPAddress: "192.168.1.50", Port: 9100, IsActive: true, IsOnline: true}).
		FirstOrCreate(&kitchen)
	db.Where(entity.Printer{Name: "Bar"}).
		Attrs(entity.Printer{Function: entity.PrinterBar, IPAddress: "192.168.1.51", Port: 9100, IsActive: true, IsOnline: true}).
		FirstOrCreate(&bar)
	db.Where(entity.Printer{Name: "Front Desk"}).
		Attrs(entity.Printer{Function: entity.PrinterReceipt, IPAddress: "192.168.1.52", Port: 9100, IsActive: true, IsOnline: true}).
		FirstOrCreate(&receipt)

	db.FirstOrCreate(&entity.PrinterCategoryMapping{}, entity.PrinterCategoryMapping{PrinterID: kitchen.ID, CategoryID: food.ID})
	db.FirstOrCreate(&entity.PrinterCategoryMapping{}, entity.PrinterCategoryMapping{PrinterID: bar.ID, CategoryID: beverages.ID})

	for n := 1; n <= 8; n++ {
		db.FirstOrCreate(&entity.DiningTable{}, entity.DiningTable{Number: n, Seats: 4})
	}

	db.FirstOrCreate(&entity.Setting{}, entity.Setting{Key: entity.SettingTaxRate, Value: "8.5"})
	db.FirstOrCreate(&entity.Setting{}, entity.Setting{Key: entity.SettingAutoPrint, Value: "true"})

	log.Info("reference data seeded")
	return nil
}
