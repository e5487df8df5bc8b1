package domain

import (
	"fmt"
	"time"
)

// Slot names one of the three fixed image positions on a product.
type Slot string

const (
	SlotImage1 Slot = "image1"
	SlotImage2 Slot = "image2"
	SlotImage3 Slot = "image3"
)

// Slots lists the image slots in form order.
var Slots = []Slot{SlotImage1, SlotImage2, SlotImage3}

// Valid reports whether s is one of the known slots.
func (s Slot) Valid() bool {
	switch s {
	case SlotImage1, SlotImage2, SlotImage3:
		return true
	}
	return false
}

// Column returns the image table column backing the slot.
func (s Slot) Column() string {
	return string(s)
}

// ProductImage is the single image record of a product. Each slot stores the
// filename handed back by the image store, or nil when never uploaded.
type ProductImage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ProductID uint      `json:"product_id" gorm:"not null;index"`
	Image1    *string   `json:"image1" gorm:"column:image1"`
	Image2    *string   `json:"image2" gorm:"column:image2"`
	Image3    *string   `json:"image3" gorm:"column:image3"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (ProductImage) TableName() string {
	return "product_images"
}

// Set writes filename into slot.
func (i *ProductImage) Set(slot Slot, filename string) error {
	name := filename
	switch slot {
	case SlotImage1:
		i.Image1 = &name
	case SlotImage2:
		i.Image2 = &name
	case SlotImage3:
		i.Image3 = &name
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSlot, slot)
	}
	return nil
}

// Get returns the filename stored in slot, if any.
func (i *ProductImage) Get(slot Slot) (string, bool) {
	var v *string
	switch slot {
	case SlotImage1:
		v = i.Image1
	case SlotImage2:
		v = i.Image2
	case SlotImage3:
		v = i.Image3
	}
	if v == nil {
		return "", false
	}
	return *v, true
}
