package provider

import (
	"github.com/commerce-next/internal/cache"
	"github.com/commerce-next/internal/config"
	"github.com/commerce-next/internal/logger"
	"github.com/commerce-next/internal/models"
	"github.com/commerce-next/internal/queue"
	"github.com/commerce-next/internal/repository"
	"github.com/commerce-next/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	MemberRepo   *repository.GormMemberRepository
	ItemRepo     repository.ItemRepository
	CartRepo     repository.CartRepository
	OrderRepo    repository.OrderRepository
	DeliveryRepo repository.DeliveryRepository

	// Services
	MemberAuthService *service.MemberAuthService
	ItemService       *service.ItemService
	CartService       *service.CartService
	InventoryService  *service.InventoryService
	OrderService      *service.OrderService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
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

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.MemberRepo = repository.NewMemberRepository(db)
	c.ItemRepo = repository.NewItemRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.DeliveryRepo = repository.NewDeliveryRepository(db)
}

func (c *Container) initServices() {
	c.MemberAuthService = service.NewMemberAuthService(c.Config, c.MemberRepo)
	c.ItemService = service.NewItemService(c.ItemRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ItemRepo)
	c.InventoryService = service.NewInventoryService(c.ItemRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.CartRepo, c.MemberRepo, c.DeliveryRepo, c.InventoryService, c.QueueClient)
}
