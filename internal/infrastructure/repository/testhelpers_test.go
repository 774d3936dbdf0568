package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/localshop/storefront/internal/domain/catalog"
	"github.com/localshop/storefront/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Every pooled connection to :memory: is a separate database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.UserModel{},
		&models.CategoryModel{},
		&models.ProductModel{},
		&models.OrderModel{},
		&models.OrderItemModel{},
		&models.PromotionModel{},
		&models.VNPayTransactionModel{},
		&models.PaymentHistoryModel{},
	))

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price int64, stock int) *catalog.Product {
	t.Helper()
	ctx := context.Background()

	category, err := catalog.NewCategory("Cat "+name, "", "", 0)
	require.NoError(t, err)
	require.NoError(t, NewCategoryRepository(db).Create(ctx, category))

	product, err := catalog.NewProduct(catalog.NewProductParams{
		CategoryID: category.ID(),
		Name:       name,
		Price:      decimal.NewFromInt(price),
		Stock:      stock,
	})
	require.NoError(t, err)
	require.NoError(t, NewProductRepository(db).Create(ctx, product))
	return product
}

func inFuture(d time.Duration) time.Time {
	return time.Now().UTC().Add(d)
}
