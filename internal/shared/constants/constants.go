package constants

const (
	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	// Currency is the only settlement currency the shop supports.
	Currency = "VND"

	// OrderNumberPrefix is prepended to every human-facing order number (don hang).
	OrderNumberPrefix = "DH"
)

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

const (
	TableUsers          = "users"
	TableCategories     = "categories"
	TableProducts       = "products"
	TableOrders         = "orders"
	TableOrderItems     = "order_items"
	TablePromotions     = "promotions"
	TableVNPayTxns      = "vnpay_transactions"
	TablePaymentHistory = "payment_history"
	TableCasbinRule     = "casbin_rule"
)
