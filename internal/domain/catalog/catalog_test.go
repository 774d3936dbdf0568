package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Cà phê Đà Lạt":         "ca-phe-da-lat",
		"  Trà   sữa  ":         "tra-sua",
		"Bánh mì & Xôi (sáng)!": "banh-mi-xoi-sang",
		"Set 2024":              "set-2024",
	}
	for in, want := range tests {
		assert.Equal(t, want, Slugify(in), in)
	}
}

func TestNewCategory(t *testing.T) {
	c, err := NewCategory("Cà phê", "", "Hạt rang", 2)
	require.NoError(t, err)
	assert.Equal(t, "ca-phe", c.Slug())
	assert.Equal(t, 2, c.DisplayOrder())
	assert.True(t, c.IsActive())

	_, err = NewCategory(" ", "", "", 0)
	assert.Error(t, err)
	_, err = NewCategory("Trà", "", "", -1)
	assert.Error(t, err)
}

func TestValidateReorder(t *testing.T) {
	assert.NoError(t, ValidateReorder([]DisplayOrderUpdate{{"a", 0}, {"b", 1}}))
	assert.Error(t, ValidateReorder(nil))
	assert.Error(t, ValidateReorder([]DisplayOrderUpdate{{"a", 0}, {"a", 1}}))
	assert.Error(t, ValidateReorder([]DisplayOrderUpdate{{"a", -1}}))
	assert.Error(t, ValidateReorder([]DisplayOrderUpdate{{"", 1}}))
}

func newTestProduct(t *testing.T, price int64, sale *decimal.Decimal, stock int) *Product {
	t.Helper()
	p, err := NewProduct(NewProductParams{
		CategoryID: "cat-1",
		Name:       "Cà phê sữa",
		Price:      decimal.NewFromInt(price),
		SalePrice:  sale,
		Stock:      stock,
	})
	require.NoError(t, err)
	return p
}

func TestProduct_EffectivePrice(t *testing.T) {
	lower := decimal.NewFromInt(40000)
	higher := decimal.NewFromInt(60000)

	assert.True(t, newTestProduct(t, 50000, nil, 1).EffectivePrice().Equal(decimal.NewFromInt(50000)))
	assert.True(t, newTestProduct(t, 50000, &lower, 1).EffectivePrice().Equal(lower))
	assert.True(t, newTestProduct(t, 50000, &higher, 1).EffectivePrice().Equal(decimal.NewFromInt(50000)))
}

func TestProduct_CheckAvailability(t *testing.T) {
	p := newTestProduct(t, 50000, nil, 3)
	assert.NoError(t, p.CheckAvailability(3))
	assert.ErrorIs(t, p.CheckAvailability(4), ErrInsufficientStock)

	inactive := ReconstructProduct(ProductReconstructParams{ID: "p", Name: "Old", Price: decimal.NewFromInt(1), Stock: 10})
	assert.ErrorIs(t, inactive.CheckAvailability(1), ErrProductInactive)
}

func TestNewProduct_Invalid(t *testing.T) {
	zero := decimal.Zero
	cases := []NewProductParams{
		{CategoryID: "c", Name: "", Price: decimal.NewFromInt(1)},
		{CategoryID: "", Name: "x", Price: decimal.NewFromInt(1)},
		{CategoryID: "c", Name: "x", Price: decimal.Zero},
		{CategoryID: "c", Name: "x", Price: decimal.NewFromInt(1), SalePrice: &zero},
		{CategoryID: "c", Name: "x", Price: decimal.NewFromInt(1), Stock: -1},
	}
	for _, c := range cases {
		_, err := NewProduct(c)
		assert.Error(t, err)
	}
}
