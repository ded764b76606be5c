package service

import (
	"strings"

	"go-phone-store/internal/apperr"
	"go-phone-store/internal/model"
	"go-phone-store/internal/repository"
	"go-phone-store/pkg/validator"
)

type CatalogService interface {
	GetPhoneTypes() ([]model.PhoneType, error)
	AddPhoneType(req *PhoneTypeRequest, userID string) (*model.PhoneType, error)
	DeletePhoneType(brand, modelName string) error

	GetCategories() ([]model.AccessoryCategory, error)
	AddCategory(req *CategoryRequest, userID string) (*model.AccessoryCategory, error)
	DeleteCategory(name string) error
}

type PhoneTypeRequest struct {
	Brand string `json:"brand" validate:"required,min=1,max=100"`
	Model string `json:"model" validate:"required,min=1,max=100"`
}

type CategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	DisplayName string `json:"display_name" validate:"required,min=1,max=100"`
	Description string `json:"description"`
}

type catalogService struct {
	catalogRepo   repository.CatalogRepository
	phoneRepo     repository.PhoneRepository
	accessoryRepo repository.AccessoryRepository
}

func NewCatalogService(
	catalogRepo repository.CatalogRepository,
	phoneRepo repository.PhoneRepository,
	accessoryRepo repository.AccessoryRepository,
) CatalogService {
	return &catalogService{
		catalogRepo:   catalogRepo,
		phoneRepo:     phoneRepo,
		accessoryRepo: accessoryRepo,
	}
}

func (s *catalogService) GetPhoneTypes() ([]model.PhoneType, error) {
	return s.catalogRepo.FindAllPhoneTypes()
}

func (s *catalogService) AddPhoneType(req *PhoneTypeRequest, userID string) (*model.PhoneType, error) {
	if err := validator.Check(req); err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "validation failed", err)
	}

	brand := strings.TrimSpace(req.Brand)
	modelName := strings.TrimSpace(req.Model)

	if existing, _ := s.catalogRepo.FindPhoneType(brand, modelName); existing != nil {
		return nil, apperr.Newf(apperr.KindDuplicateKey, "phone type %s %s already exists", brand, modelName)
	}

	pt := &model.PhoneType{Brand: brand, Model: modelName}
	if err := s.catalogRepo.CreatePhoneType(pt); err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "failed to save phone type", err)
	}
	return pt, nil
}

// DeletePhoneType refuses to remove a brand/model pair that inventory
// records still reference.
func (s *catalogService) DeletePhoneType(brand, modelName string) error {
	if existing, _ := s.catalogRepo.FindPhoneType(brand, modelName); existing == nil {
		return apperr.New(apperr.KindNotFound, "phone type not found")
	}

	phones, err := s.phoneRepo.FindAll()
	if err != nil {
		return apperr.Wrap(apperr.KindPersistence, "failed to check phone type usage", err)
	}
	for _, phone := range phones {
		if strings.EqualFold(phone.Brand, brand) && strings.EqualFold(phone.Model, modelName) {
			return apperr.Newf(apperr.KindConflict, "phone type %s %s is in use by inventory", brand, modelName)
		}
	}

	if err := s.catalogRepo.DeletePhoneType(brand, modelName); err != nil {
		return apperr.Wrap(apperr.KindPersistence, "failed to delete phone type", err)
	}
	return nil
}

func (s *catalogService) GetCategories() ([]model.AccessoryCategory, error) {
	return s.catalogRepo.FindAllCategories()
}

func (s *catalogService) AddCategory(req *CategoryRequest, userID string) (*model.AccessoryCategory, error) {
	if err := validator.Check(req); err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "validation failed", err)
	}

	name := strings.ToLower(strings.TrimSpace(req.Name))
	if existing, _ := s.catalogRepo.FindCategoryByName(name); existing != nil {
		return nil, apperr.Newf(apperr.KindDuplicateKey, "category %q already exists", name)
	}

	category := &model.AccessoryCategory{
		Name:        name,
		DisplayName: strings.TrimSpace(req.DisplayName),
		Description: req.Description,
		IsActive:    true,
	}
	if err := s.catalogRepo.CreateCategory(category); err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "failed to save category", err)
	}
	return category, nil
}

func (s *catalogService) DeleteCategory(name string) error {
	if existing, _ := s.catalogRepo.FindCategoryByName(name); existing == nil {
		return apperr.New(apperr.KindNotFound, "category not found")
	}

	count, err := s.accessoryRepo.CountByCategory(name)
	if err != nil {
		return apperr.Wrap(apperr.KindPersistence, "failed to check category usage", err)
	}
	if count > 0 {
		return apperr.Newf(apperr.KindConflict, "category %q has %d accessories attached", name, count)
	}

	if err := s.catalogRepo.DeleteCategory(name); err != nil {
		return apperr.Wrap(apperr.KindPersistence, "failed to delete category", err)
	}
	return nil
}
