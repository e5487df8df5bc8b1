package domain

import "time"

// Availability is the stock state of a product.
type Availability string

const (
	AvailabilityInStock Availability = "IN_STOCK"
	// AvailabilitySoldOut is never assigned by the catalog today.
	AvailabilitySoldOut Availability = "SOLD_OUT"
)

// Product represents a sellable catalog item
type Product struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Name         string         `json:"name" gorm:"size:255;not null"`
	Price        string         `json:"price" gorm:"not null"`
	Availability Availability   `json:"availability" gorm:"size:16;not null;default:'IN_STOCK'"`
	CategoryID   uint           `json:"category_id" gorm:"not null;index"`
	Detail       *ProductDetail `json:"detail,omitempty" gorm:"foreignKey:ProductID"`
	Image        *ProductImage  `json:"images,omitempty" gorm:"foreignKey:ProductID"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// ProductDetail holds descriptive and regulatory metadata, one row per product.
type ProductDetail struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	ProductID    uint       `json:"product_id" gorm:"not null;index"`
	Description  string     `json:"description" gorm:"not null"`
	Manufacturer string     `json:"manufacturer" gorm:"not null"`
	NafdacRegNo  *string    `json:"nafdac_reg_no"`
	ExpiryDate   *time.Time `json:"expiry_date"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TableName specifies the table name
func (ProductDetail) TableName() string {
	return "product_details"
}

// DetailInput carries the fields written by AttachDetail.
type DetailInput struct {
	Description  string
	Manufacturer string
	NafdacRegNo  *string
	ExpiryDate   *time.Time
}
