package httpserver

import (
	"log"

	categorysvc "onlineshop/internal/service/category"
	customersvc "onlineshop/internal/service/customer"
	ordersvc "onlineshop/internal/service/order"
	shopitemsvc "onlineshop/internal/service/shopitem"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Deps carries the services the router depends on.
type Deps struct {
	CustomerSvc *customersvc.Service
	CategorySvc *categorysvc.Service
	ItemSvc     *shopitemsvc.Service
	OrderSvc    *ordersvc.Service
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())
	router.Use(requestIDMiddleware())

	router.GET("/", rootHandler)
	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	customers := &customerHandlers{svc: deps.CustomerSvc, logger: logger}
	cg := router.Group("/customers")
	{
		cg.POST("", customers.create)
		cg.GET("", customers.list)
		cg.GET("/:id", customers.get)
		cg.PUT("/:id", customers.update)
		cg.DELETE("/:id", customers.remove)
	}

	categories := &categoryHandlers{svc: deps.CategorySvc, logger: logger}
	catg := router.Group("/categories")
	{
		catg.POST("", categories.create)
		catg.GET("", categories.list)
		catg.GET("/:id", categories.get)
		catg.PUT("/:id", categories.update)
		catg.DELETE("/:id", categories.remove)
	}

	items := &itemHandlers{svc: deps.ItemSvc, logger: logger}
	ig := router.Group("/items")
	{
		ig.POST("", items.create)
		ig.GET("", items.list)
		ig.GET("/:id", items.get)
		ig.PUT("/:id", items.update)
		ig.DELETE("/:id", items.remove)
	}

	orders := &orderHandlers{svc: deps.OrderSvc, logger: logger}
	og := router.Group("/orders")
	{
		og.POST("", orders.create)
		og.GET("", orders.list)
		og.GET("/:id", orders.get)
		og.PUT("/:id", orders.update)
		og.DELETE("/:id", orders.remove)
	}

	return router
}

// requestIDMiddleware tags every response with an id, honoring one supplied by
// the caller.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}
