package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectivePrice(t *testing.T) {
	p := Product{Price: 500, Discount: 10}
	assert.InDelta(t, 450, p.EffectivePrice(), 1e-9)

	full := Product{Price: 1200, Discount: 0}
	assert.InDelta(t, 1200, full.EffectivePrice(), 1e-9)

	free := Product{Price: 1000, Discount: 100}
	assert.InDelta(t, 0, free.EffectivePrice(), 1e-9)
}

func TestEffectivePriceNeverExceedsPrice(t *testing.T) {
	for _, p := range []Product{
		{Price: 1000, Discount: 0},
		{Price: 2000, Discount: 50},
		{Price: 0, Discount: 30},
		{Price: 99.99, Discount: 1},
	} {
		assert.LessOrEqual(t, p.EffectivePrice(), p.Price)
		assert.GreaterOrEqual(t, p.EffectivePrice(), 0.0)
	}
}

func TestSummarizeCart(t *testing.T) {
	items := []CartItem{
		{Product: Product{ID: 1, Price: 500, Discount: 10}, Quantity: 2},
		{Product: Product{ID: 2, Price: 300, Discount: 0}, Quantity: 1},
	}
	s := SummarizeCart(items)
	assert.Equal(t, 3, s.TotalItems)
	assert.InDelta(t, 1300, s.Subtotal, 1e-9)
	assert.InDelta(t, 100, s.TotalDiscount, 1e-9)
	assert.InDelta(t, s.Subtotal-s.TotalDiscount, s.Total, 1e-9)
}

func TestSummarizeEmptyCart(t *testing.T) {
	s := SummarizeCart(nil)
	assert.Zero(t, s.TotalItems)
	assert.Zero(t, s.Total)
}

func TestRoleAndCategoryValidity(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleArtist.Valid())
	assert.True(t, RoleBuyer.Valid())
	assert.False(t, Role("user").Valid())

	for _, c := range Categories {
		assert.True(t, c.Valid())
	}
	assert.False(t, Category("Photography").Valid())
}
