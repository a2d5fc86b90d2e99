package services

import (
	"errors"
	"fmt"

	"github.com/Hsharma41126/new-restorant/entity"
	"github.com/Hsharma41126/new-restorant/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var oneHundred = decimal.NewFromInt(100)

// PricingService resolves submitted lines against the menu and computes the
// order totals. Pure computation over fetched reference data; no writes.
type PricingService struct {
	Menu     *repository.MenuRepository
	Settings *repository.SettingRepository
}

func NewPricingService(menu *repository.MenuRepository, settings *repository.SettingRepository) *PricingService {
	return &PricingService{Menu: menu, Settings: settings}
}

type OrderLineIn struct {
	MenuItemID uint   `json:"menuItemId" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,min=1"`
	Note       string `json:"note"`
}

type PricedLine struct {
	Item       *entity.MenuItem
	Quantity   int
	Note       string
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}

type PricedOrder struct {
	Lines          []PricedLine
	Subtotal       decimal.Decimal
	TaxAmount      decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalAmount    decimal.Decimal
}

// Resolve prices every line or fails the whole order; there are no partial
// orders. Unit prices are snapshots of the current menu price.
func (s *PricingService) Resolve(lines []OrderLineIn) (*PricedOrder, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: order needs at least one item", ErrValidation)
	}

	out := &PricedOrder{Lines: make([]PricedLine, 0, len(lines))}
	subtotal := decimal.Zero

	for _, ln := range lines {
		if ln.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be >= 1", ErrValidation)
		}
		item, err := s.Menu.GetItemForOrder(ln.MenuItemID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: item %d", ErrItemUnavailable, ln.MenuItemID)
		}
		if err != nil {
			return nil, err
		}
		if !item.IsAvailable {
			return nil, fmt.Errorf("%w: %s", ErrItemUnavailable, item.Name)
		}

		lineTotal := item.Price.Mul(decimal.NewFromInt(int64(ln.Quantity)))
		out.Lines = append(out.Lines, PricedLine{
			Item:       item,
			Quantity:   ln.Quantity,
			Note:       ln.Note,
			UnitPrice:  item.Price,
			TotalPrice: lineTotal,
		})
		subtotal = subtotal.Add(lineTotal)
	}

	rate := s.Settings.GetDecimal(entity.SettingTaxRate, decimal.Zero)

	out.Subtotal = subtotal
	// Standard half-up rounding to 2 decimals, not truncation.
	out.TaxAmount = subtotal.Mul(rate).Div(oneHundred).Round(2)
	out.DiscountAmount = decimal.Zero
	out.TotalAmount = out.Subtotal.Add(out.TaxAmount).Sub(out.DiscountAmount)

	if out.TotalAmount.IsNegative() {
		return nil, fmt.Errorf("%w: total must not be negative", ErrValidation)
	}
	return out, nil
}
