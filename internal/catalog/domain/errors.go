package domain

import "errors"

var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product does not exist")
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("such category does not exist")
	// ErrImageNotFound is returned when an image row is not found.
	ErrImageNotFound = errors.New("product image does not exist")
	// ErrInvalidProduct is returned when a product is missing its name or price.
	ErrInvalidProduct = errors.New("product name and price are required")
	// ErrInvalidCategory is returned for an empty category name.
	ErrInvalidCategory = errors.New("category name is required")
	// ErrUnknownSlot is returned for an image slot other than image1..image3.
	ErrUnknownSlot = errors.New("unknown image slot")
)
