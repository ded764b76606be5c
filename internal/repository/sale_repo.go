package repository

import (
	"time"

	"go-phone-store/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SaleRepository interface {
	Create(sale *model.Sale) error
	FindAll() ([]model.Sale, error)
	FindByID(id uuid.UUID) (*model.Sale, error)
	FindByNumber(number string) (*model.Sale, error)
	FindBetween(start, end time.Time) ([]model.Sale, error)
	Update(sale *model.Sale) error
	UpdateStatus(id uuid.UUID, status model.SaleStatus, updatedBy string) error
	Delete(id uuid.UUID) error
	GetRevenueSummary(start, end time.Time) (float64, int64, error)
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{db}
}

func (r *saleRepo) Create(sale *model.Sale) error {
	return r.db.Create(sale).Error
}

func (r *saleRepo) FindAll() ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.Preload("Items").Order("created_at DESC").Find(&sales).Error
	return sales, err
}

func (r *saleRepo) FindByID(id uuid.UUID) (*model.Sale, error) {
	var sale model.Sale
	if err := r.db.Preload("Items").First(&sale, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *saleRepo) FindByNumber(number string) (*model.Sale, error) {
	var sale model.Sale
	if err := r.db.Preload("Items").First(&sale, "sale_number = ?", number).Error; err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *saleRepo) FindBetween(start, end time.Time) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.Preload("Items").
		Where("created_at BETWEEN ? AND ?", start, end).
		Order("created_at DESC").
		Find(&sales).Error
	return sales, err
}

func (r *saleRepo) Update(sale *model.Sale) error {
	return r.db.Save(sale).Error
}

func (r *saleRepo) UpdateStatus(id uuid.UUID, status model.SaleStatus, updatedBy string) error {
	return r.db.Model(&model.Sale{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_by": updatedBy,
		}).Error
}

func (r *saleRepo) Delete(id uuid.UUID) error {
	return r.db.Select("Items").Delete(&model.Sale{BaseModel: model.BaseModel{ID: id}}).Error
}

// GetRevenueSummary aggregates completed-sale revenue and count in a range.
func (r *saleRepo) GetRevenueSummary(start, end time.Time) (float64, int64, error) {
	var revenue float64
	var count int64

	err := r.db.Model(&model.Sale{}).
		Where("status = ? AND created_at BETWEEN ? AND ?", model.SaleCompleted, start, end).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&revenue).Error
	if err != nil {
		return 0, 0, err
	}

	err = r.db.Model(&model.Sale{}).
		Where("status = ? AND created_at BETWEEN ? AND ?", model.SaleCompleted, start, end).
		Count(&count).Error
	if err != nil {
		return 0, 0, err
	}

	return revenue, count, nil
}
