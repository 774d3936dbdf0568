package migration

import (
	"github.com/localshop/storefront/internal/infrastructure/persistence/models"
)

// Tables are grouped by owning context and ordered so that referenced
// tables come first. The casbin rule table is created by its adapter.
var (
	accountTables = []interface{}{&models.UserModel{}}
	catalogTables = []interface{}{&models.CategoryModel{}, &models.ProductModel{}}
	salesTables   = []interface{}{&models.PromotionModel{}, &models.OrderModel{}, &models.OrderItemModel{}}
	paymentTables = []interface{}{&models.VNPayTransactionModel{}, &models.PaymentHistoryModel{}}
)

// AutoMigrateModels returns every model the storefront owns.
func AutoMigrateModels() []interface{} {
	var all []interface{}
	for _, group := range [][]interface{}{accountTables, catalogTables, salesTables, paymentTables} {
		all = append(all, group...)
	}
	return all
}
