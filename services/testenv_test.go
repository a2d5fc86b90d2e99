package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Hsharma41126/new-restorant/entity"
	"github.com/Hsharma41126/new-restorant/printing"
	"github.com/Hsharma41126/new-restorant/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fakePrintClient stands in for the printing collaborator.
type fakePrintClient struct {
	fail  bool
	calls int
	jobs  []printing.Job
}

func (f *fakePrintClient) Print(_ context.Context, job printing.Job) error {
	f.calls++
	f.jobs = append(f.jobs, job)
	if f.fail {
		return errors.New("printer unreachable")
	}
	return nil
}

type testEnv struct {
	db *gorm.DB

	orderRepo   *repository.OrderRepository
	ticketRepo  *repository.TicketRepository
	printerRepo *repository.PrinterRepository
	menuRepo    *repository.MenuRepository
	settingRepo *repository.SettingRepository

	pricing  *PricingService
	orders   *OrderService
	tickets  *TicketService
	printers *PrinterService
	client   *fakePrintClient

	food   entity.Category
	drinks entity.Category

	mains      entity.SubCategory
	starters   entity.SubCategory
	coldDrinks entity.SubCategory

	pizza    entity.MenuItem // 40.00, Food/Mains
	bread    entity.MenuItem // 20.00, Food/Starters
	lemonade entity.MenuItem //  3.00, Drinks/Cold Drinks
	soup     entity.MenuItem // unavailable
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.SubCategory{}, &entity.MenuItem{},
		&entity.DiningTable{}, &entity.TableSession{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.KitchenTicket{}, &entity.TicketItem{},
		&entity.Printer{}, &entity.PrinterCategoryMapping{},
		&entity.Setting{},
	))

	env := &testEnv{db: db}

	env.food = entity.Category{Name: "Food"}
	env.drinks = entity.Category{Name: "Drinks"}
	require.NoError(t, db.Create(&env.food).Error)
	require.NoError(t, db.Create(&env.drinks).Error)

	env.mains = entity.SubCategory{Name: "Mains", CategoryID: env.food.ID}
	env.starters = entity.SubCategory{Name: "Starters", CategoryID: env.food.ID}
	env.coldDrinks = entity.SubCategory{Name: "Cold Drinks", CategoryID: env.drinks.ID}
	require.NoError(t, db.Create(&env.mains).Error)
	require.NoError(t, db.Create(&env.starters).Error)
	require.NoError(t, db.Create(&env.coldDrinks).Error)

	env.pizza = entity.MenuItem{Name: "Margherita Pizza", Price: decimal.NewFromFloat(40.00), IsAvailable: true, SubCategoryID: env.mains.ID}
	env.bread = entity.MenuItem{Name: "Garlic Bread", Price: decimal.NewFromFloat(20.00), IsAvailable: true, SubCategoryID: env.starters.ID}
	env.lemonade = entity.MenuItem{Name: "Lemonade", Price: decimal.NewFromFloat(3.00), IsAvailable: true, SubCategoryID: env.coldDrinks.ID}
	env.soup = entity.MenuItem{Name: "Soup of the Day", Price: decimal.NewFromFloat(8.00), IsAvailable: false, SubCategoryID: env.starters.ID}
	for _, item := range []*entity.MenuItem{&env.pizza, &env.bread, &env.lemonade, &env.soup} {
		require.NoError(t, db.Create(item).Error)
	}

	require.NoError(t, db.Create(&entity.Setting{Key: entity.SettingTaxRate, Value: "8.5"}).Error)
	// Auto-print off: print paths are exercised explicitly in tests.
	require.NoError(t, db.Create(&entity.Setting{Key: entity.SettingAutoPrint, Value: "false"}).Error)

	env.orderRepo = repository.NewOrderRepository(db)
	env.ticketRepo = repository.NewTicketRepository(db)
	env.printerRepo = repository.NewPrinterRepository(db)
	env.menuRepo = repository.NewMenuRepository(db)
	env.settingRepo = repository.NewSettingRepository(db)

	env.client = &fakePrintClient{}
	env.pricing = NewPricingService(env.menuRepo, env.settingRepo)
	env.printers = NewPrinterService(env.printerRepo, env.ticketRepo, env.orderRepo, env.menuRepo, env.client, 0)
	env.orders = NewOrderService(db, env.orderRepo, env.ticketRepo, env.menuRepo, env.settingRepo, env.pricing, env.printers, ValueSetPolicy{})
	env.tickets = NewTicketService(env.ticketRepo, ValueSetPolicy{})

	return env
}

func (env *testEnv) addPrinter(t *testing.T, name string, fn entity.PrinterFunction, active, online bool) entity.Printer {
	t.Helper()
	p := entity.Printer{Name: name, Function: fn, IPAddress: "127.0.0.1", Port: 9100, IsActive: active, IsOnline: online}
	require.NoError(t, env.db.Create(&p).Error)
	return p
}

func (env *testEnv) mapPrinter(t *testing.T, printerID, categoryID uint, subCategoryID *uint) {
	t.Helper()
	m := entity.PrinterCategoryMapping{PrinterID: printerID, CategoryID: categoryID, SubCategoryID: subCategoryID}
	require.NoError(t, env.db.Create(&m).Error)
}

func (env *testEnv) createOrder(t *testing.T, lines ...OrderLineIn) *CreateOrderRes {
	t.Helper()
	res, err := env.orders.Create(1, &CreateOrderReq{
		OrderType: string(entity.OrderTypeDineIn),
		Items:     lines,
	})
	require.NoError(t, err)
	return res
}

func (env *testEnv) count(t *testing.T, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, env.db.Model(model).Count(&n).Error)
	return n
}
