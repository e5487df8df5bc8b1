package main

// @title Product Catalog API
// @version 1.0
// @description Product catalog with categories, product details, images and a featured sample, with full observability (logging, tracing, metrics)
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://github.com/tair/product-catalog
// @contact.email support@example.com

// @license.name MIT
// @license.url https://github.com/tair/product-catalog/blob/main/LICENSE

// @host localhost:8080
// @BasePath /

// @tag.name Products
// @tag.description Product upload, edit, lookup and deletion

// @tag.name Categories
// @tag.description Category lookup and listings

// @tag.name Images
// @tag.description Product image rows

// @tag.name Health
// @tag.description Health check endpoints

// @tag.name Swagger
// @tag.description Swagger documentation endpoints
