package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"compras-backend/src/config"
	"compras-backend/src/handlers"
	"compras-backend/src/middlewares"
	"compras-backend/src/models"
	"compras-backend/src/repositories"
	"compras-backend/src/routes"
	"compras-backend/src/services"
)

func main() {
	db := config.InitDB()
	logger := config.GetLogger()

	db.AutoMigrate(
		&models.User{},
		&models.Supplier{},
		&models.Product{},
		&models.PurchaseOrder{},
		&models.OrderItem{},
		&models.OrderStatusHistory{},
	)

	// Insert sample data jika kosong
	if err := seedSampleData(db); err != nil {
		log.Printf("Failed to seed sample data: %v", err)
	}

	// Initialize repository
	orderRepo := &repositories.OrderRepository{DB: db}

	// Initialize services
	orderService := &services.OrderService{DB: db, Repo: orderRepo, Log: logger}
	supplierService := &services.SupplierService{DB: db, Log: logger}
	productService := &services.ProductService{DB: db, Log: logger}

	// Initialize handlers
	orderHandler := &handlers.OrderHandler{Service: orderService, Log: logger}
	supplierHandler := &handlers.SupplierHandler{Service: supplierService, Log: logger}
	productHandler := &handlers.ProductHandler{Service: productService, Log: logger}

	// Setup router dengan recovery middleware
	router := gin.Default()
	router.Use(middlewares.CORS(), middlewares.RequestID())

	api := router.Group("", middlewares.JWTAuth(config.JWTSecret()))
	routes.RegisterOrderRoutes(api.Group("/orders"), orderHandler)
	routes.RegisterSupplierRoutes(api.Group("/suppliers"), supplierHandler)
	routes.RegisterProductRoutes(api.Group("/products"), productHandler)

	// Start server
	if err := router.Run(config.ServerPort()); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func seedSampleData(db *gorm.DB) error {
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)

	if userCount == 0 {
		log.Println("🌱 Seeding sample users...")

		users := []models.User{
			{Name: "Administrador", Email: "admin@compras.local", Role: "admin"},
			{Name: "Comprador 1", Email: "comprador1@compras.local", Role: "user"},
			{Name: "Comprador 2", Email: "comprador2@compras.local", Role: "user"},
		}

		for _, user := range users {
			if err := db.FirstOrCreate(&user, "email = ?", user.Email).Error; err != nil {
				return err
			}
		}
		log.Printf("✅ Seeded %d users", len(users))
	}

	var supplierCount int64
	db.Model(&models.Supplier{}).Count(&supplierCount)

	if supplierCount == 0 {
		log.Println("🌱 Seeding sample suppliers...")

		suppliers := []models.Supplier{
			{Name: "Distribuidora Central", ContactPerson: strPtr("Laura Méndez"), Email: strPtr("ventas@distcentral.com")},
			{Name: "Importadora del Norte", ContactPerson: strPtr("Carlos Ruiz"), Email: strPtr("contacto@impnorte.com")},
			{Name: "Suministros Industriales SA", ContactPerson: strPtr("Ana Torres"), Email: strPtr("pedidos@sumindustriales.com")},
		}

		for _, supplier := range suppliers {
			if err := db.FirstOrCreate(&supplier, "name = ?", supplier.Name).Error; err != nil {
				return err
			}
		}
		log.Printf("✅ Seeded %d suppliers", len(suppliers))
	}

	var productCount int64
	db.Model(&models.Product{}).Count(&productCount)

	if productCount == 0 {
		log.Println("🌱 Seeding sample products...")

		products := []models.Product{
			{Name: "Papel A4 75g", Unit: "resma"},
			{Name: "Tóner HP 85A", Unit: "unidad"},
			{Name: "Silla ergonómica", Unit: "unidad"},
			{Name: "Cable de red Cat6", Unit: "metro"},
		}

		for _, product := range products {
			if err := db.FirstOrCreate(&product, "name = ?", product.Name).Error; err != nil {
				return err
			}
		}
		log.Printf("✅ Seeded %d products", len(products))
	}

	return nil
}

func strPtr(s string) *string {
	return &s
}
