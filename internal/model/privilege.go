package model

// Privilege represents a permission that can be assigned to users
type Privilege struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"` // e.g., "phone:create"
	Name string `gorm:"type:varchar(100)" json:"name"`
}

// Default privileges for the system
var DefaultPrivileges = []Privilege{
	// User management
	{Code: "user:view", Name: "View User"},
	{Code: "user:create", Name: "Create User"},
	{Code: "user:update", Name: "Update User"},
	{Code: "user:delete", Name: "Delete User"},
	{Code: "user:update_privilege", Name: "Update User Privileges"},
	// Phone inventory
	{Code: "phone:view", Name: "View Phone"},
	{Code: "phone:create", Name: "Add Phone"},
	{Code: "phone:update", Name: "Update Phone"},
	{Code: "phone:delete", Name: "Delete Phone"},
	// Accessory inventory
	{Code: "accessory:view", Name: "View Accessory"},
	{Code: "accessory:create", Name: "Add Accessory"},
	{Code: "accessory:update", Name: "Update Accessory"},
	{Code: "accessory:delete", Name: "Delete Accessory"},
	{Code: "accessory:restock", Name: "Adjust Accessory Stock"},
	// Sales
	{Code: "sale:view", Name: "View Sale"},
	{Code: "sale:create", Name: "Create Sale"},
	{Code: "sale:update", Name: "Update Sale"},
	{Code: "sale:cancel", Name: "Cancel Sale"},
	{Code: "sale:delete", Name: "Delete Sale"},
	// Catalog reference data
	{Code: "catalog:manage", Name: "Manage Catalog"},
	// Reports
	{Code: "report:view", Name: "View Reports"},
	// Data maintenance
	{Code: "data:export", Name: "Export Data"},
	{Code: "data:import", Name: "Import Data"},
}
