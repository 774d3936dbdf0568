package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	catalogUsecases "github.com/localshop/storefront/internal/application/catalog/usecases"
	orderUsecases "github.com/localshop/storefront/internal/application/order/usecases"
	paymentUsecases "github.com/localshop/storefront/internal/application/payment/usecases"
	promotionUsecases "github.com/localshop/storefront/internal/application/promotion/usecases"
	userUsecases "github.com/localshop/storefront/internal/application/user/usecases"
	"github.com/localshop/storefront/internal/domain/shared/services"
	"github.com/localshop/storefront/internal/infrastructure/auth"
	"github.com/localshop/storefront/internal/infrastructure/config"
	"github.com/localshop/storefront/internal/infrastructure/email"
	"github.com/localshop/storefront/internal/infrastructure/metrics"
	"github.com/localshop/storefront/internal/infrastructure/payment/vnpay"
	"github.com/localshop/storefront/internal/infrastructure/permission"
	"github.com/localshop/storefront/internal/infrastructure/ratelimit"
	"github.com/localshop/storefront/internal/infrastructure/scheduler"
	"github.com/localshop/storefront/internal/interfaces/http/handlers"
	"github.com/localshop/storefront/internal/interfaces/http/middleware"
	"github.com/localshop/storefront/internal/shared/db"
	"github.com/localshop/storefront/internal/shared/logger"
	"github.com/localshop/storefront/internal/shared/services/markdown"
	"github.com/localshop/storefront/internal/shared/utils"
)

const redisPingTimeout = 3 * time.Second

// Container holds all infrastructure components, repositories, use cases, handlers,
// and background services. It is responsible for wiring everything together and
// providing a Shutdown() method for graceful termination.
type Container struct {
	// Core infrastructure
	engine  *gin.Engine
	db      *gorm.DB
	cfg     *config.Config
	log     logger.Interface
	redis   *redis.Client
	metrics metrics.Factory

	// Repositories
	repos *repositories

	// Use cases
	ucs *allUseCases

	// Handlers
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	rateLimiter          *middleware.RateLimiter

	// Auth & permission services
	jwtSvc     *auth.JWTService
	jwtService *jwtServiceAdapter
	enforcer   *permission.Enforcer

	// Payment gateway
	gateway *vnpay.Gateway

	// Background services
	schedulerManager *scheduler.SchedulerManager
}

// NewContainer creates a new Container with all dependencies wired together.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	utils.RegisterBindingValidators()

	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - Redis, Repositories, Auth, Metrics
	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	// Section 2: Use cases
	if err := c.initUseCases(); err != nil {
		return nil, err
	}

	// Section 3: Handlers and middlewares
	c.initHandlers()

	// Section 4: Scheduler jobs
	if err := c.initScheduler(); err != nil {
		return nil, err
	}

	return c, nil
}

// ============================================================
// Section 1: Infrastructure
// ============================================================

func (c *Container) initInfrastructure() error {
	cfg := c.cfg
	log := c.log

	c.repos = newRepositories(c.db, log)
	c.metrics = metrics.NewFactory()

	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	c.jwtService = &jwtServiceAdapter{c.jwtSvc}

	enforcer, err := permission.NewEnforcer(c.db, log)
	if err != nil {
		return fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	if err := permission.InitAdminPermissions(enforcer, log); err != nil {
		return err
	}
	if err := permission.NewRoleSync(c.db, enforcer, log).SyncAdmins(context.Background()); err != nil {
		// Admins keep working from the persisted grouping policies.
		log.Warnw("failed to sync admin roles", "error", err)
	}
	c.enforcer = enforcer

	gateway, err := vnpay.NewGateway(vnpay.Config{
		TmnCode:    cfg.VNPay.TmnCode,
		HashSecret: cfg.VNPay.HashSecret,
		PaymentURL: cfg.VNPay.URL,
		ReturnURL:  cfg.VNPay.ReturnURL,
		Version:    cfg.VNPay.Version,
		Locale:     cfg.VNPay.Locale,
		OrderType:  cfg.VNPay.OrderType,
	}, log.Named("vnpay"))
	if err != nil {
		return fmt.Errorf("failed to create vnpay gateway: %w", err)
	}
	c.gateway = gateway

	if cfg.RateLimit.Enabled {
		c.redis = initRedis(cfg, log)
	}

	return nil
}

// initRedis creates the Redis client backing the rate limiter. An unreachable
// Redis is logged; the limiter lets requests through until it recovers.
func initRedis(cfg *config.Config, log logger.Interface) *redis.Client {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Warnw("redis is not reachable, rate limiting will fail open", "error", err, "addr", cfg.Redis.GetAddr())
		return redisClient
	}
	log.Infow("Redis connection established successfully")

	return redisClient
}

// ============================================================
// Section 2: Use cases
// ============================================================

func (c *Container) initUseCases() error {
	cfg := c.cfg
	log := c.log
	repos := c.repos

	txManager := db.NewTransactionManager(c.db)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	markdownSvc := markdown.NewService()
	paymentMetrics := c.metrics.Payment()

	ucs := &allUseCases{
		registerUC: userUsecases.NewRegisterWithPasswordUseCase(repos.userRepo, hasher, c.enforcer, cfg.Auth.AdminEmails, log),
		loginUC:    userUsecases.NewLoginWithPasswordUseCase(repos.userRepo, hasher, c.jwtService, c.enforcer, log),
		getUserUC:  userUsecases.NewGetUserUseCase(repos.userRepo, log),

		listCategoriesUC:    catalogUsecases.NewListCategoriesUseCase(repos.categoryRepo, log),
		createCategoryUC:    catalogUsecases.NewCreateCategoryUseCase(repos.categoryRepo, log),
		reorderCategoriesUC: catalogUsecases.NewReorderCategoriesUseCase(repos.categoryRepo, txManager, log),
		listProductsUC:      catalogUsecases.NewListProductsUseCase(repos.productRepo, repos.categoryRepo, log),
		getProductUC:        catalogUsecases.NewGetProductUseCase(repos.productRepo, markdownSvc, log),
		createProductUC:     catalogUsecases.NewCreateProductUseCase(repos.productRepo, repos.categoryRepo, log),

		createOrderUC: orderUsecases.NewCreateOrderUseCase(
			repos.orderRepo, repos.productRepo, repos.promotionRepo,
			services.NewOrderNumberGenerator(), markdownSvc, log,
		),
		getOrderUC:          orderUsecases.NewGetOrderUseCase(repos.orderRepo, log),
		listUserOrdersUC:    orderUsecases.NewListUserOrdersUseCase(repos.orderRepo, log),
		updateOrderStatusUC: orderUsecases.NewUpdateOrderStatusUseCase(repos.orderRepo, log),

		validatePromotionUC: promotionUsecases.NewValidatePromotionUseCase(repos.promotionRepo, log),
		createPromotionUC:   promotionUsecases.NewCreatePromotionUseCase(repos.promotionRepo, log),
		listPromotionsUC:    promotionUsecases.NewListPromotionsUseCase(repos.promotionRepo, log),

		createPaymentUC: paymentUsecases.NewCreatePaymentUseCase(
			repos.paymentRepo, repos.orderRepo, c.gateway, log,
			paymentUsecases.PaymentConfig{TTL: cfg.Payment.TTL()},
		),
		handleCallbackUC: paymentUsecases.NewHandlePaymentCallbackUseCase(
			repos.paymentRepo, repos.paymentHistoryRepo, repos.orderRepo, txManager, c.gateway, log,
		),
		expirePaymentsUC: paymentUsecases.NewExpirePaymentsUseCase(repos.paymentRepo, log),
	}

	ucs.createPaymentUC.SetMetrics(paymentMetrics)
	ucs.handleCallbackUC.SetMetrics(paymentMetrics)
	ucs.expirePaymentsUC.SetMetrics(paymentMetrics)

	if cfg.Email.Enabled() {
		ucs.handleCallbackUC.SetNotifier(email.NewSMTPEmailService(email.SMTPConfig{
			Host:        cfg.Email.SMTPHost,
			Port:        cfg.Email.SMTPPort,
			Username:    cfg.Email.SMTPUser,
			Password:    cfg.Email.SMTPPassword,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
			BaseURL:     cfg.Payment.FrontendURL,
		}))
	} else {
		log.Infow("email is not configured, order confirmations are disabled")
	}

	c.ucs = ucs
	return nil
}

// ============================================================
// Section 3: Handlers and middlewares
// ============================================================

func (c *Container) initHandlers() {
	cfg := c.cfg
	log := c.log
	ucs := c.ucs

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, log)
	if c.redis != nil {
		c.rateLimiter = middleware.NewRateLimiter(
			ratelimit.NewRedisRateLimiter(c.redis),
			ratelimit.Policy{Limit: cfg.RateLimit.Requests, Window: cfg.RateLimit.Window()},
			log,
		)
	}

	sqlDB, err := c.db.DB()
	if err != nil {
		log.Errorw("failed to get underlying sql.DB for health checks", "error", err)
	}

	c.hdlrs = &allHandlers{
		authHandler: handlers.NewAuthHandler(ucs.registerUC, ucs.loginUC, ucs.getUserUC, log),
		catalogHandler: handlers.NewCatalogHandler(handlers.CatalogUseCases{
			ListCategories:    ucs.listCategoriesUC,
			CreateCategory:    ucs.createCategoryUC,
			ReorderCategories: ucs.reorderCategoriesUC,
			ListProducts:      ucs.listProductsUC,
			GetProduct:        ucs.getProductUC,
			CreateProduct:     ucs.createProductUC,
		}, log),
		orderHandler: handlers.NewOrderHandler(
			ucs.createOrderUC, ucs.getOrderUC, ucs.listUserOrdersUC, ucs.updateOrderStatusUC, log,
		),
		promotionHandler: handlers.NewPromotionHandler(
			ucs.validatePromotionUC, ucs.createPromotionUC, ucs.listPromotionsUC, log,
		),
		paymentHandler: handlers.NewPaymentHandler(
			ucs.createPaymentUC, ucs.handleCallbackUC, cfg.Payment.FrontendURL, log,
		),
		healthHandler: handlers.NewHealthHandler(sqlDB, log),
	}
}

// ============================================================
// Section 4: Scheduler
// ============================================================

func (c *Container) initScheduler() error {
	manager, err := scheduler.NewSchedulerManager(c.log.Named("scheduler"))
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	if err := manager.RegisterPaymentJobs(c.ucs.expirePaymentsUC, c.cfg.Payment.SweepInterval()); err != nil {
		return fmt.Errorf("failed to register payment jobs: %w", err)
	}
	c.schedulerManager = manager
	return nil
}

// Shutdown stops background jobs and closes the Redis client.
func (c *Container) Shutdown() {
	if c.schedulerManager != nil {
		if err := c.schedulerManager.Stop(); err != nil {
			c.log.Errorw("failed to stop scheduler", "error", err)
		}
	}

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Errorw("failed to close redis client", "error", err)
		}
	}
}
