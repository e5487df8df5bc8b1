package kafka

import "time"

// CatalogEvent is published whenever the catalog changes
type CatalogEvent struct {
	EventID      string    `json:"event_id"`
	EventType    string    `json:"event_type"`
	ProductID    uint      `json:"product_id,omitempty"`
	ProductName  string    `json:"product_name,omitempty"`
	CategoryID   uint      `json:"category_id,omitempty"`
	CategoryName string    `json:"category_name,omitempty"`
	ImageID      uint      `json:"image_id,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeProductUploaded = "product.uploaded"
	EventTypeProductUpdated  = "product.updated"
	EventTypeProductDeleted  = "product.deleted"
	EventTypeImageDeleted    = "image.deleted"
)

// TopicCatalogEvents is the default topic for catalog events
const TopicCatalogEvents = "catalog-events"
