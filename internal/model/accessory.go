package model

// Accessory is a stocked, countable product (cases, chargers, protectors...).
// Stock is mutated on sale and restock and never drops below zero.
type Accessory struct {
	BaseModel
	Name            string  `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Category        string  `gorm:"type:varchar(100);not null;index" json:"category" validate:"required"`
	Description     string  `gorm:"type:text" json:"description"`
	PurchasePrice   float64 `gorm:"not null" json:"purchase_price" validate:"gte=0"`
	SellingPrice    float64 `gorm:"not null" json:"selling_price" validate:"gte=0"`
	QuantityInStock int     `gorm:"not null;default:0" json:"quantity_in_stock" validate:"gte=0"`
	MinQuantity     int     `gorm:"not null;default:5" json:"min_quantity" validate:"gte=0"`
	Supplier        string  `gorm:"type:varchar(255)" json:"supplier"`
	Notes           string  `gorm:"type:text" json:"notes"`
}

// LowStock reports whether stock has reached the reorder threshold.
func (a *Accessory) LowStock() bool {
	min := a.MinQuantity
	if min <= 0 {
		min = 5
	}
	return a.QuantityInStock <= min
}
