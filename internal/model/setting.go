package model

// Setting is a key/value application setting (company details printed on
// receipts, feature toggles).
type Setting struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Key   string `gorm:"type:varchar(100);uniqueIndex;not null" json:"key"`
	Value string `gorm:"type:text" json:"value"`
}

// Well-known setting keys.
const (
	SettingCompanyName    = "company_name"
	SettingCompanyAddress = "company_address"
	SettingCompanyPhone   = "company_phone"
)

// DefaultSettings seeds the settings table on first boot.
var DefaultSettings = map[string]string{
	SettingCompanyName:    "Phone Store",
	SettingCompanyAddress: "",
	SettingCompanyPhone:   "",
}
