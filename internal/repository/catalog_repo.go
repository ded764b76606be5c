package repository

import (
	"go-phone-store/internal/model"

	"gorm.io/gorm"
)

// CatalogRepository manages the reference data: phone brand/model pairs and
// accessory categories.
type CatalogRepository interface {
	FindAllPhoneTypes() ([]model.PhoneType, error)
	FindPhoneType(brand, modelName string) (*model.PhoneType, error)
	CreatePhoneType(pt *model.PhoneType) error
	DeletePhoneType(brand, modelName string) error

	FindAllCategories() ([]model.AccessoryCategory, error)
	FindCategoryByName(name string) (*model.AccessoryCategory, error)
	CreateCategory(category *model.AccessoryCategory) error
	DeleteCategory(name string) error

	SeedDefaults() error
}

type catalogRepo struct {
	db *gorm.DB
}

func NewCatalogRepo(db *gorm.DB) CatalogRepository {
	return &catalogRepo{db}
}

func (r *catalogRepo) FindAllPhoneTypes() ([]model.PhoneType, error) {
	var types []model.PhoneType
	err := r.db.Order("brand, model").Find(&types).Error
	return types, err
}

func (r *catalogRepo) FindPhoneType(brand, modelName string) (*model.PhoneType, error) {
	var pt model.PhoneType
	if err := r.db.Where("brand = ? AND model = ?", brand, modelName).First(&pt).Error; err != nil {
		return nil, err
	}
	return &pt, nil
}

func (r *catalogRepo) CreatePhoneType(pt *model.PhoneType) error {
	return r.db.Create(pt).Error
}

func (r *catalogRepo) DeletePhoneType(brand, modelName string) error {
	return r.db.Where("brand = ? AND model = ?", brand, modelName).Delete(&model.PhoneType{}).Error
}

func (r *catalogRepo) FindAllCategories() ([]model.AccessoryCategory, error) {
	var categories []model.AccessoryCategory
	err := r.db.Order("name").Find(&categories).Error
	return categories, err
}

func (r *catalogRepo) FindCategoryByName(name string) (*model.AccessoryCategory, error) {
	var category model.AccessoryCategory
	if err := r.db.Where("name = ?", name).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *catalogRepo) CreateCategory(category *model.AccessoryCategory) error {
	return r.db.Create(category).Error
}

func (r *catalogRepo) DeleteCategory(name string) error {
	return r.db.Where("name = ?", name).Delete(&model.AccessoryCategory{}).Error
}

// SeedDefaults inserts the default catalog entries that don't exist yet.
func (r *catalogRepo) SeedDefaults() error {
	for _, pt := range model.DefaultPhoneTypes {
		var existing model.PhoneType
		err := r.db.Where("brand = ? AND model = ?", pt.Brand, pt.Model).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			if err := r.db.Create(&pt).Error; err != nil {
				return err
			}
		}
	}
	for _, c := range model.DefaultAccessoryCategories {
		var existing model.AccessoryCategory
		err := r.db.Where("name = ?", c.Name).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			if err := r.db.Create(&c).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
