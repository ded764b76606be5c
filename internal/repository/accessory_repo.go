package repository

import (
	"go-phone-store/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccessoryRepository interface {
	Create(accessory *model.Accessory) error
	FindAll() ([]model.Accessory, error)
	FindByID(id uuid.UUID) (*model.Accessory, error)
	FindByCategory(category string) ([]model.Accessory, error)
	CountByCategory(category string) (int64, error)
	Update(accessory *model.Accessory) error
	UpdateStock(id uuid.UUID, newQuantity int, updatedBy string) error
	Delete(id uuid.UUID) error
}

type accessoryRepo struct {
	db *gorm.DB
}

func NewAccessoryRepo(db *gorm.DB) AccessoryRepository {
	return &accessoryRepo{db}
}

func (r *accessoryRepo) Create(accessory *model.Accessory) error {
	return r.db.Create(accessory).Error
}

func (r *accessoryRepo) FindAll() ([]model.Accessory, error) {
	var accessories []model.Accessory
	err := r.db.Order("created_at DESC").Find(&accessories).Error
	return accessories, err
}

func (r *accessoryRepo) FindByID(id uuid.UUID) (*model.Accessory, error) {
	var accessory model.Accessory
	if err := r.db.First(&accessory, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &accessory, nil
}

func (r *accessoryRepo) FindByCategory(category string) ([]model.Accessory, error) {
	var accessories []model.Accessory
	err := r.db.Where("category = ?", category).Find(&accessories).Error
	return accessories, err
}

func (r *accessoryRepo) CountByCategory(category string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Accessory{}).Where("category = ?", category).Count(&count).Error
	return count, err
}

func (r *accessoryRepo) Update(accessory *model.Accessory) error {
	return r.db.Save(accessory).Error
}

func (r *accessoryRepo) UpdateStock(id uuid.UUID, newQuantity int, updatedBy string) error {
	return r.db.Model(&model.Accessory{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"quantity_in_stock": newQuantity,
			"updated_by":        updatedBy,
		}).Error
}

func (r *accessoryRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Accessory{}, "id = ?", id).Error
}
