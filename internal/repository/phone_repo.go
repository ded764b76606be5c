package repository

import (
	"go-phone-store/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PhoneRepository interface {
	Create(phone *model.Phone) error
	FindAll() ([]model.Phone, error)
	FindByID(id uuid.UUID) (*model.Phone, error)
	FindBySerial(serial string) (*model.Phone, error)
	FindByNumber(number string) (*model.Phone, error)
	AllNumbers() ([]string, error)
	Update(phone *model.Phone) error
	Delete(id uuid.UUID) error
}

type phoneRepo struct {
	db *gorm.DB
}

func NewPhoneRepo(db *gorm.DB) PhoneRepository {
	return &phoneRepo{db}
}

func (r *phoneRepo) Create(phone *model.Phone) error {
	return r.db.Create(phone).Error
}

func (r *phoneRepo) FindAll() ([]model.Phone, error) {
	var phones []model.Phone
	err := r.db.Order("created_at DESC").Find(&phones).Error
	return phones, err
}

func (r *phoneRepo) FindByID(id uuid.UUID) (*model.Phone, error) {
	var phone model.Phone
	if err := r.db.First(&phone, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &phone, nil
}

func (r *phoneRepo) FindBySerial(serial string) (*model.Phone, error) {
	var phone model.Phone
	if err := r.db.First(&phone, "serial_number = ?", serial).Error; err != nil {
		return nil, err
	}
	return &phone, nil
}

func (r *phoneRepo) FindByNumber(number string) (*model.Phone, error) {
	var phone model.Phone
	if err := r.db.First(&phone, "phone_number = ?", number).Error; err != nil {
		return nil, err
	}
	return &phone, nil
}

// AllNumbers returns every assigned phone number; input to the allocator.
func (r *phoneRepo) AllNumbers() ([]string, error) {
	var numbers []string
	err := r.db.Model(&model.Phone{}).Pluck("phone_number", &numbers).Error
	return numbers, err
}

func (r *phoneRepo) Update(phone *model.Phone) error {
	return r.db.Save(phone).Error
}

// Delete removes the record permanently; a sold phone frees its numbers.
func (r *phoneRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Phone{}, "id = ?", id).Error
}
