package services

import (
	"testing"

	"github.com/Hsharma41126/new-restorant/entity"
	"github.com/stretchr/testify/assert"
)

func TestClassifyCategoryNames(t *testing.T) {
	cases := []struct {
		name  string
		names []string
		want  entity.TicketCategory
	}{
		{"food only", []string{"Food"}, entity.CategoryFood},
		{"beverages only", []string{"Beverages"}, entity.CategoryBeverages},
		{"drinks count as beverages", []string{"Drinks"}, entity.CategoryBeverages},
		{"food and drinks", []string{"Food", "Drinks"}, entity.CategoryMixed},
		{"order does not matter", []string{"Drinks", "Food"}, entity.CategoryMixed},
		{"unknown category", []string{"Retail"}, entity.CategoryMixed},
		{"empty", nil, entity.CategoryMixed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyCategoryNames(tc.names))
		})
	}
}

func TestClassifierTagsTicket(t *testing.T) {
	env := newTestEnv(t)

	res := env.createOrder(t,
		OrderLineIn{MenuItemID: env.pizza.ID, Quantity: 1},
		OrderLineIn{MenuItemID: env.bread.ID, Quantity: 1},
	)
	ticket, err := env.ticketRepo.GetTicketByOrder(res.OrderID)
	assert.NoError(t, err)
	assert.Equal(t, entity.CategoryFood, ticket.Category)

	res = env.createOrder(t,
		OrderLineIn{MenuItemID: env.pizza.ID, Quantity: 1},
		OrderLineIn{MenuItemID: env.lemonade.ID, Quantity: 1},
	)
	ticket, err = env.ticketRepo.GetTicketByOrder(res.OrderID)
	assert.NoError(t, err)
	assert.Equal(t, entity.CategoryMixed, ticket.Category)
}
