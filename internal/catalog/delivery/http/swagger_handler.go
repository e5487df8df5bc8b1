package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// UploadProduct godoc
// @Summary Upload a product
// @Description Create a product in the named category (created if missing) with its detail and images
// @Tags Products
// @Accept multipart/form-data
// @Produce json
// @Param category formData string true "Category name"
// @Param name formData string true "Product name (max 255)"
// @Param price formData string true "Price"
// @Param description formData string true "Description"
// @Param manufacturer formData string true "Manufacturer"
// @Param nafdac_no formData string false "NAFDAC registration number"
// @Param expiry formData string false "Expiry date (YYYY-MM-DD)"
// @Param image1 formData file true "Image (jpeg, png, gif; max 2048 KB)"
// @Param image2 formData file false "Image (jpeg, png, gif; max 2048 KB)"
// @Param image3 formData file false "Image (jpeg, png, gif; max 2048 KB)"
// @Success 201 {object} object{success=bool,message=string,data=object{product=object,category=object,description=object,images=object}}
// @Failure 422 {object} object{success=bool,message=string,errors=object}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/products [post]
func (h *CatalogHandler) UploadProductDoc() {}

// EditProduct godoc
// @Summary Edit a product
// @Description Overwrite name, price, category, detail and the uploaded image slots of a product
// @Tags Products
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Product ID"
// @Param category formData string true "Category name"
// @Param name formData string true "Product name (max 255)"
// @Param price formData string true "Price"
// @Param description formData string true "Description"
// @Param manufacturer formData string true "Manufacturer"
// @Param nafdac_no formData string false "NAFDAC registration number"
// @Param expiry formData string false "Expiry date (YYYY-MM-DD)"
// @Param image1 formData file true "Image"
// @Param image2 formData file false "Image"
// @Param image3 formData file false "Image"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 404 {object} object{success=bool,message=string}
// @Failure 422 {object} object{success=bool,message=string,errors=object}
// @Router /api/products/{id} [put]
func (h *CatalogHandler) EditProductDoc() {}

// DeleteProduct godoc
// @Summary Delete a product
// @Description Delete a product row by ID. Unknown ids succeed.
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/products/{id} [delete]
func (h *CatalogHandler) DeleteProductDoc() {}

// GetProduct godoc
// @Summary Get product by ID
// @Description Get a product with its detail and images
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} object{success=bool,message=string,data=object{product=object,detail=object,images=object}}
// @Failure 404 {object} object{success=bool,message=string}
// @Router /api/products/{id} [get]
func (h *CatalogHandler) GetProductDoc() {}

// FeaturedCategories godoc
// @Summary Featured categories
// @Description Up to five random categories with their products and images
// @Tags Products
// @Produce json
// @Success 200 {object} object{success=bool,message=string,data=array}
// @Router /api/products/featured [get]
func (h *CatalogHandler) FeaturedCategoriesDoc() {}

// ListCategoryProducts godoc
// @Summary List products of a category
// @Description Products of a category with their details and images. Unknown categories give empty lists.
// @Tags Categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} object{success=bool,message=string,data=object{products=array,detail=array,images=array}}
// @Router /api/categories/{id}/products [get]
func (h *CatalogHandler) ListCategoryProductsDoc() {}

// GetCategory godoc
// @Summary Get category by ID
// @Tags Categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 404 {object} object{success=bool,message=string}
// @Router /api/categories/{id} [get]
func (h *CatalogHandler) GetCategoryDoc() {}

// DeleteImage godoc
// @Summary Delete a product image row
// @Description Delete an image row independently of its product. Unknown ids succeed.
// @Tags Images
// @Produce json
// @Param id path int true "Image ID"
// @Success 200 {object} object{success=bool,message=string}
// @Router /api/product-images/{id} [delete]
func (h *CatalogHandler) DeleteImageDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{success=bool,message=string}
// @Failure 503 {object} object{success=bool,error=string}
// @Router /health [get]
func (h *CatalogHandler) HealthCheckDoc() {}
