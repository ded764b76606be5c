package model

type PhoneCondition string

const (
	ConditionNew  PhoneCondition = "new"
	ConditionUsed PhoneCondition = "used"
)

// Grades describe the physical state of a used phone at intake.
const (
	GradeExcellent = "excellent"
	GradeVeryGood  = "very_good"
	GradeGood      = "good"
	GradeFair      = "fair"
)

// Phone is a single handset in stock. Each unit is tracked individually:
// PhoneNumber is the store barcode value, either an allocated 6-digit
// number or a scanned manufacturer barcode kept as-is, and SerialNumber
// the manufacturer serial. Both are unique across the collection. A sold
// phone is removed from the collection entirely.
type Phone struct {
	BaseModel
	PhoneNumber    string         `gorm:"type:varchar(20);uniqueIndex;not null" json:"phone_number"`
	SerialNumber   string         `gorm:"type:varchar(100);uniqueIndex;not null" json:"serial_number" validate:"required"`
	Brand          string         `gorm:"type:varchar(100);not null" json:"brand" validate:"required"`
	Model          string         `gorm:"type:varchar(100);not null" json:"model" validate:"required"`
	Condition      PhoneCondition `gorm:"type:varchar(10);not null;default:'new'" json:"condition" validate:"required,oneof=new used"`
	PurchasePrice  float64        `gorm:"not null" json:"purchase_price" validate:"gte=0"`
	SellingPrice   float64        `gorm:"not null" json:"selling_price" validate:"gte=0"`
	Description    string         `gorm:"type:text" json:"description"`
	WarrantyMonths *int           `json:"warranty_months,omitempty"`
	Color          string         `gorm:"type:varchar(50)" json:"color"`
	Memory         string         `gorm:"type:varchar(20)" json:"memory"`

	// Used-only fields
	AgeMonths    *int    `json:"age_months,omitempty"`
	BatteryLevel *string `gorm:"type:varchar(10)" json:"battery_level,omitempty"`
	Grade        *string `gorm:"type:varchar(20)" json:"grade,omitempty"`

	// Intake customer (who the shop bought a used phone from)
	CustomerName string `gorm:"type:varchar(255)" json:"customer_name"`
	CustomerID   string `gorm:"type:varchar(20)" json:"customer_id"`
}

func (p *Phone) IsUsed() bool {
	return p.Condition == ConditionUsed
}
