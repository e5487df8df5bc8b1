package domain

import "time"

// Category groups products and carries aggregate stock counters.
// InStockCount is bumped on every upload/edit that targets the category and is
// never decremented, even when products are deleted.
type Category struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null;index"`
	InStockCount int       `json:"in_stock_count" gorm:"not null;default:0"`
	SoldOutCount int       `json:"sold_out_count" gorm:"not null;default:0"`
	Products     []Product `json:"products,omitempty" gorm:"foreignKey:CategoryID"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Category) TableName() string {
	return "categories"
}
