package model

import "github.com/google/uuid"

type SaleStatus string

const (
	SaleCompleted SaleStatus = "completed"
	SaleCancelled SaleStatus = "cancelled"
)

// Product types a sale line item can reference.
const (
	ProductTypePhone     = "phone"
	ProductTypeAccessory = "accessory"
)

// Sale is a completed point-of-sale transaction with its line items.
// Line items are price snapshots: they stay valid after the referenced
// phone record is deleted or the accessory price changes.
type Sale struct {
	BaseModel
	SaleNumber      string     `gorm:"type:varchar(30);uniqueIndex;not null" json:"sale_number"`
	CustomerName    string     `gorm:"type:varchar(255)" json:"customer_name"`
	CustomerPhone   string     `gorm:"type:varchar(20)" json:"customer_phone"`
	CustomerEmail   string     `gorm:"type:varchar(255)" json:"customer_email"`
	CustomerAddress string     `gorm:"type:varchar(255)" json:"customer_address"`
	PaymentMethod   string     `gorm:"type:varchar(30)" json:"payment_method"`
	Notes           string     `gorm:"type:text" json:"notes"`
	Subtotal        float64    `gorm:"not null" json:"subtotal"`
	TotalAmount     float64    `gorm:"not null" json:"total_amount"`
	Status          SaleStatus `gorm:"type:varchar(10);not null;default:'completed'" json:"status"`

	Items []SaleItem `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE" json:"items"`
}

// SaleItem is one product line within a sale.
type SaleItem struct {
	ID     uint      `gorm:"primaryKey" json:"id"`
	SaleID uuid.UUID `gorm:"type:uuid;not null;index" json:"sale_id"`

	ProductType  string    `gorm:"type:varchar(20);not null" json:"product_type"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null" json:"product_id"`
	ProductName  string    `gorm:"type:varchar(255);not null" json:"product_name"`
	Description  string    `gorm:"type:text" json:"description"`
	SerialNumber string    `gorm:"type:varchar(100)" json:"serial_number"`
	UnitPrice    float64   `gorm:"not null" json:"unit_price"`
	Quantity     int       `gorm:"not null" json:"quantity"`
	TotalPrice   float64   `gorm:"not null" json:"total_price"`
	Condition    *string   `gorm:"type:varchar(10)" json:"condition,omitempty"`
	BatteryLevel *string   `gorm:"type:varchar(10)" json:"battery_level,omitempty"`
	Notes        string    `gorm:"type:text" json:"notes"`
}

// IsPhoneItem reports whether the line references an individually tracked
// phone (sold = removed from stock) rather than a counted accessory.
func (i *SaleItem) IsPhoneItem() bool {
	return i.ProductType == ProductTypePhone
}
