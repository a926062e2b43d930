package routes

import (
	"github.com/gin-gonic/gin"

	"compras-backend/src/handlers"
	"compras-backend/src/middlewares"
)

func RegisterOrderRoutes(r *gin.RouterGroup, handler *handlers.OrderHandler) {
	r.POST("", handler.CreateOrder)
	r.GET("", handler.GetOrders)
	r.GET("/:id", handler.GetOrderByID)
	r.PUT("/:id/status", handler.UpdateOrderStatus)
	r.PUT("/:id/receive", handler.UpdateReceivedItems)
}

func RegisterSupplierRoutes(r *gin.RouterGroup, handler *handlers.SupplierHandler) {
	r.POST("", middlewares.RequireAdmin(), handler.CreateSupplier)
	r.GET("", handler.GetSuppliers)
	r.GET("/:id", handler.GetSupplierByID)
	r.PUT("/:id", middlewares.RequireAdmin(), handler.UpdateSupplier)
	r.DELETE("/:id", middlewares.RequireAdmin(), handler.DeleteSupplier)
}

func RegisterProductRoutes(r *gin.RouterGroup, handler *handlers.ProductHandler) {
	r.POST("", middlewares.RequireAdmin(), handler.CreateProduct)
	r.GET("", handler.GetProducts)
	r.GET("/:id", handler.GetProductByID)
	r.PUT("/:id", middlewares.RequireAdmin(), handler.UpdateProduct)
	r.DELETE("/:id", middlewares.RequireAdmin(), handler.DeleteProduct)
}
