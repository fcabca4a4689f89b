package provider

import (
	"github.com/sara-ops/sara-api/internal/authz"
	"github.com/sara-ops/sara-api/internal/cache"
	"github.com/sara-ops/sara-api/internal/config"
	"github.com/sara-ops/sara-api/internal/logger"
	"github.com/sara-ops/sara-api/internal/models"
	"github.com/sara-ops/sara-api/internal/queue"
	"github.com/sara-ops/sara-api/internal/repository"
	"github.com/sara-ops/sara-api/internal/service"
)

// Container wires repositories and services together.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	UserRepo     repository.UserRepository
	CustomerRepo repository.CustomerRepository
	OrderRepo    repository.OrderRepository
	ProductRepo  repository.ProductRepository
	EventLogRepo repository.EventLogRepository

	// Services
	AuthzService     *authz.Service
	AuthService      *service.AuthService
	UserService      *service.UserService
	AuditService     *service.AuditService
	CustomerService  *service.CustomerService
	CatalogService   *service.CatalogService
	OrderService     *service.OrderService
	LifecycleService *service.LifecycleService
}

// NewContainer builds the container.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.CustomerRepo = repository.NewCustomerRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.EventLogRepo = repository.NewEventLogRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	c.AuditService = service.NewAuditService(c.EventLogRepo, c.QueueClient)
	c.AuthService = service.NewAuthService(c.Config, c.UserRepo)
	c.UserService = service.NewUserService(c.UserRepo, c.AuthService, c.AuditService)
	c.CustomerService = service.NewCustomerService(c.CustomerRepo, c.AuditService)
	c.CatalogService = service.NewCatalogService(c.ProductRepo, c.AuditService)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.CustomerRepo, c.ProductRepo, c.AuditService)
	c.LifecycleService = service.NewLifecycleService(c.OrderRepo, c.CustomerRepo, c.AuditService)
}
