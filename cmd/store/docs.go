package main

// @title Mi Supermercado Store API
// @version 1.0
// @description Online grocery storefront: product catalog, session carts, checkout and order tracking.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://github.com/balasagoth/mi-supermercado
// @contact.email support@example.com

// @license.name MIT
// @license.url https://github.com/balasagoth/mi-supermercado/blob/main/LICENSE

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Auth
// @tag.description Authentication endpoints

// @tag.name Catalog
// @tag.description Public product and category browsing

// @tag.name Cart
// @tag.description Session cart management

// @tag.name Checkout
// @tag.description Checkout initiation and payment confirmation

// @tag.name Orders
// @tag.description Order history for authenticated customers

// @tag.name Health
// @tag.description Health check endpoints
