package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/mcastro/storefront/internal/catalog"
	"github.com/mcastro/storefront/internal/config"
	"github.com/mcastro/storefront/internal/httpx"
	"github.com/mcastro/storefront/internal/order"
	"github.com/mcastro/storefront/internal/storage"
)

func main() {
	cfg := config.Load()

	db, err := storage.Open(context.Background(), cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("[storefront] postgres: %v", err)
	}
	defer db.Close()

	products := catalog.NewSQLRepo(db)
	orders := order.NewService(order.NewSQLRepo(db))

	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(), httpx.CORS(cfg.CORSOrigins))

	r.GET("/healthz", func(c *gin.Context) { c.String(200, "ok") })

	api := r.Group("/api")
	api.GET("/products", listProductsHandler(products))
	api.GET("/products/:id", getProductHandler(products))
	api.GET("/categories", listCategoriesHandler(products))
	api.POST("/orders", createOrderHandler(orders))
	api.GET("/orders/:id", getOrderHandler(orders))

	log.Printf("[storefront] listening on %s", cfg.HTTPAddr)
	log.Fatal(r.Run(cfg.HTTPAddr))
}
