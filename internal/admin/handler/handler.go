package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/balasagoth/mi-supermercado/internal/admin/middleware"
	catalogdomain "github.com/balasagoth/mi-supermercado/internal/catalog/domain"
	catalogcommand "github.com/balasagoth/mi-supermercado/internal/catalog/usecase/command"
	designdomain "github.com/balasagoth/mi-supermercado/internal/design/domain"
	designcommand "github.com/balasagoth/mi-supermercado/internal/design/usecase/command"
	designquery "github.com/balasagoth/mi-supermercado/internal/design/usecase/query"
	orderdomain "github.com/balasagoth/mi-supermercado/internal/order/domain"
	ordercommand "github.com/balasagoth/mi-supermercado/internal/order/usecase/command"
)

// AdminHandler serves the back-office API over Fiber. All routes require the
// admin role.
type AdminHandler struct {
	products   catalogdomain.ProductRepository
	categories catalogdomain.CategoryRepository
	orders     orderdomain.OrderRepository

	createProduct  *catalogcommand.CreateProductHandler
	updateProduct  *catalogcommand.UpdateProductHandler
	deleteProduct  *catalogcommand.DeleteProductHandler
	setStock       *catalogcommand.SetStockHandler
	createCategory *catalogcommand.CreateCategoryHandler
	deleteCategory *catalogcommand.DeleteCategoryHandler
	updateStatus   *ordercommand.UpdateStatusHandler
	updateDesign   *designcommand.UpdateDesignHandler
	getDesign      *designquery.GetDesignHandler
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	products catalogdomain.ProductRepository,
	categories catalogdomain.CategoryRepository,
	orders orderdomain.OrderRepository,
	designs designdomain.DesignRepository,
) *AdminHandler {
	return &AdminHandler{
		products:       products,
		categories:     categories,
		orders:         orders,
		createProduct:  catalogcommand.NewCreateProductHandler(products),
		updateProduct:  catalogcommand.NewUpdateProductHandler(products),
		deleteProduct:  catalogcommand.NewDeleteProductHandler(products),
		setStock:       catalogcommand.NewSetStockHandler(products),
		createCategory: catalogcommand.NewCreateCategoryHandler(categories),
		deleteCategory: catalogcommand.NewDeleteCategoryHandler(categories),
		updateStatus:   ordercommand.NewUpdateStatusHandler(orders),
		updateDesign:   designcommand.NewUpdateDesignHandler(designs),
		getDesign:      designquery.NewGetDesignHandler(designs),
	}
}

// RegisterRoutes registers all back-office routes under /admin
func (h *AdminHandler) RegisterRoutes(app *fiber.App) {
	admin := app.Group("/admin", middleware.AuthMiddleware(), middleware.AdminMiddleware())

	admin.Get("/products", h.ListProducts)
	admin.Post("/products", h.CreateProduct)
	admin.Put("/products/:id", h.UpdateProduct)
	admin.Delete("/products/:id", h.DeleteProduct)
	admin.Put("/products/:id/stock", h.SetStock)

	admin.Get("/categories", h.ListCategories)
	admin.Post("/categories", h.CreateCategory)
	admin.Delete("/categories/:id", h.DeleteCategory)

	admin.Get("/orders", h.ListOrders)
	admin.Put("/orders/:id/status", h.UpdateOrderStatus)

	admin.Get("/design", h.GetDesign)
	admin.Put("/design", h.UpdateDesign)
}
