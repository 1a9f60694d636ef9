package router

import (
	"fmt"
	"strings"

	"github.com/commerce-next/internal/cache"
	"github.com/commerce-next/internal/config"
	"github.com/commerce-next/internal/constants"
	publichandlers "github.com/commerce-next/internal/http/handlers/public"
	"github.com/commerce-next/internal/logger"
	"github.com/commerce-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = constants.RedisPrefixDefault
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
		Message:       "too many login attempts, try again in %d seconds",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		public := apiV1.Group("/public")
		{
			public.GET("/items", publicHandler.ListItems)
			public.GET("/items/:id", publicHandler.GetItem)
		}

		// 会员认证接口
		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", publicHandler.MemberRegister)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("user_id")), publicHandler.MemberLogin)
		}

		// 会员接口（需鉴权）
		member := apiV1.Group("")
		member.Use(MemberJWTAuthMiddleware(cfg.MemberJWT.SecretKey, c.MemberRepo))
		{
			member.GET("/me", publicHandler.GetCurrentMember)
			member.GET("/cart", publicHandler.GetCart)
			member.POST("/cart/items", publicHandler.AddCartItem)
			member.DELETE("/cart/items/:item_id", publicHandler.DeleteCartItem)
			member.DELETE("/cart", publicHandler.ClearCart)
			member.POST("/orders", publicHandler.CreateOrder)
			member.GET("/orders", publicHandler.ListOrders)
			member.GET("/orders/:id", publicHandler.GetOrder)
			member.POST("/orders/:id/cancel", publicHandler.CancelOrder)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
