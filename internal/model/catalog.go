package model

// PhoneType is a sellable brand/model pair in the catalog. Phones reference
// the pair by value; a pair in use cannot be removed.
type PhoneType struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Brand string `gorm:"type:varchar(100);not null;uniqueIndex:idx_brand_model" json:"brand" validate:"required"`
	Model string `gorm:"type:varchar(100);not null;uniqueIndex:idx_brand_model" json:"model" validate:"required"`
}

// AccessoryCategory groups accessories. Name is the stable code referenced
// by Accessory.Category; DisplayName is what the UI shows.
type AccessoryCategory struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name" validate:"required"`
	DisplayName string `gorm:"type:varchar(100);not null" json:"display_name" validate:"required"`
	Description string `gorm:"type:text" json:"description"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
}

// DefaultPhoneTypes seeds the catalog on first boot.
var DefaultPhoneTypes = []PhoneType{
	{Brand: "Apple", Model: "iPhone 16 Pro Max"},
	{Brand: "Apple", Model: "iPhone 16 Pro"},
	{Brand: "Apple", Model: "iPhone 16"},
	{Brand: "Apple", Model: "iPhone 15 Pro Max"},
	{Brand: "Apple", Model: "iPhone 15"},
	{Brand: "Apple", Model: "iPhone 14"},
	{Brand: "Apple", Model: "iPhone 13"},
	{Brand: "Samsung", Model: "Galaxy S25 Ultra"},
	{Brand: "Samsung", Model: "Galaxy S24 Ultra"},
	{Brand: "Samsung", Model: "Galaxy S24"},
	{Brand: "Samsung", Model: "Galaxy S23"},
	{Brand: "Samsung", Model: "Galaxy A55"},
	{Brand: "Samsung", Model: "Galaxy A34"},
	{Brand: "Xiaomi", Model: "14 Pro"},
	{Brand: "Xiaomi", Model: "Redmi Note 13 Pro"},
	{Brand: "Xiaomi", Model: "Redmi Note 13"},
	{Brand: "Huawei", Model: "P60 Pro"},
	{Brand: "Huawei", Model: "Mate 60 Pro"},
	{Brand: "Google", Model: "Pixel 8 Pro"},
	{Brand: "Google", Model: "Pixel 8"},
	{Brand: "OnePlus", Model: "12"},
	{Brand: "Oppo", Model: "Reno 11"},
}

// DefaultAccessoryCategories seeds the category list on first boot.
var DefaultAccessoryCategories = []AccessoryCategory{
	{Name: "charger", DisplayName: "Chargers", IsActive: true},
	{Name: "cable", DisplayName: "Cables", IsActive: true},
	{Name: "case", DisplayName: "Cases & Covers", IsActive: true},
	{Name: "screen_protector", DisplayName: "Screen Protectors", IsActive: true},
	{Name: "headphones", DisplayName: "Headphones", IsActive: true},
	{Name: "power_bank", DisplayName: "Power Banks", IsActive: true},
	{Name: "holder", DisplayName: "Holders & Mounts", IsActive: true},
	{Name: "memory", DisplayName: "Memory Cards", IsActive: true},
	{Name: "other", DisplayName: "Other", IsActive: true},
}
