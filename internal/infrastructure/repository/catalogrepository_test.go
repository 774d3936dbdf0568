package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localshop/storefront/internal/domain/catalog"
	"github.com/localshop/storefront/internal/shared/db"
)

func TestCategoryRepository_ReorderInTransaction(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewCategoryRepository(gdb)
	tm := db.NewTransactionManager(gdb)
	ctx := context.Background()

	var ids []string
	for i, name := range []string{"Rau cu", "Trai cay", "Do kho"} {
		c, err := catalog.NewCategory(name, "", "", i)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, c))
		ids = append(ids, c.ID())
	}

	err := tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := repo.UpdateDisplayOrder(txCtx, ids[2], 0); err != nil {
			return err
		}
		return repo.UpdateDisplayOrder(txCtx, "missing", 1)
	})
	require.ErrorIs(t, err, catalog.ErrCategoryNotFound)

	list, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, ids, []string{list[0].ID(), list[1].ID(), list[2].ID()})

	// Same value twice must not look like a missing row.
	require.NoError(t, repo.UpdateDisplayOrder(ctx, ids[0], 0))
	require.NoError(t, repo.UpdateDisplayOrder(ctx, ids[0], 5))

	list, err = repo.List(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, ids[0], list[2].ID())

	bySlug, err := repo.GetBySlug(ctx, "trai-cay")
	require.NoError(t, err)
	assert.Equal(t, ids[1], bySlug.ID())
}

func TestProductRepository_ListAndGet(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewProductRepository(gdb)
	ctx := context.Background()

	coffee := seedProduct(t, gdb, "Ca phe sua", 30000, 5)
	tea := seedProduct(t, gdb, "Tra sen", 25000, 0)

	sale := decimal.NewFromInt(20000)
	discounted, err := catalog.NewProduct(catalog.NewProductParams{
		CategoryID: coffee.CategoryID(),
		Name:       "Ca phe den",
		Price:      decimal.NewFromInt(28000),
		SalePrice:  &sale,
		Stock:      3,
	})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, discounted))

	got, err := repo.GetBySlug(ctx, "ca-phe-den")
	require.NoError(t, err)
	assert.True(t, got.EffectivePrice().Equal(sale))

	products, total, err := repo.List(ctx, catalog.ProductFilter{CategoryID: coffee.CategoryID(), ActiveOnly: true, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, products, 2)

	products, total, err = repo.List(ctx, catalog.ProductFilter{Query: "Tra", ActiveOnly: true, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, tea.ID(), products[0].ID())

	byIDs, err := repo.GetByIDs(ctx, []string{coffee.ID(), "missing"})
	require.NoError(t, err)
	assert.Len(t, byIDs, 1)
	assert.Contains(t, byIDs, coffee.ID())

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
}
