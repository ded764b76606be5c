package service

import (
	"strings"

	"go-phone-store/internal/apperr"
	"go-phone-store/internal/model"
	"go-phone-store/internal/repository"
	"go-phone-store/internal/ws"
	"go-phone-store/pkg/validator"

	"github.com/google/uuid"
)

type AccessoryService interface {
	CreateAccessory(req *AccessoryRequest, userID string) (*model.Accessory, error)
	UpdateAccessory(id uuid.UUID, req *AccessoryRequest, userID string) (*model.Accessory, error)
	DeleteAccessory(id uuid.UUID) error
	GetAllAccessories() ([]model.Accessory, error)
	GetAccessoryByID(id uuid.UUID) (*model.Accessory, error)
	SearchAccessories(term string) ([]model.Accessory, error)
	GetLowStockAccessories() ([]model.Accessory, error)
	AdjustStock(id uuid.UUID, delta int, userID string) (int, error)
	GetStatistics() (*AccessoryStatistics, error)
}

type AccessoryRequest struct {
	Name            string  `json:"name" validate:"required"`
	Category        string  `json:"category" validate:"required"`
	Description     string  `json:"description"`
	PurchasePrice   float64 `json:"purchase_price" validate:"gte=0"`
	SellingPrice    float64 `json:"selling_price" validate:"gte=0"`
	QuantityInStock int     `json:"quantity_in_stock" validate:"gte=0"`
	MinQuantity     int     `json:"min_quantity" validate:"gte=0"`
	Supplier        string  `json:"supplier"`
	Notes           string  `json:"notes"`
}

// AccessoryStatistics summarizes stock levels and valuation.
type AccessoryStatistics struct {
	TotalAccessories   int                           `json:"total_accessories"`
	TotalQuantity      int                           `json:"total_quantity"`
	TotalPurchaseValue float64                       `json:"total_purchase_value"`
	TotalSellingValue  float64                       `json:"total_selling_value"`
	LowStockCount      int                           `json:"low_stock_count"`
	Categories         map[string]*CategorySummary   `json:"categories"`
}

type CategorySummary struct {
	Count         int     `json:"count"`
	TotalQuantity int     `json:"total_quantity"`
	TotalValue    float64 `json:"total_value"`
}

type accessoryService struct {
	accessoryRepo repository.AccessoryRepository
	hub           *ws.Hub
}

func NewAccessoryService(accessoryRepo repository.AccessoryRepository, hub *ws.Hub) AccessoryService {
	return &accessoryService{accessoryRepo: accessoryRepo, hub: hub}
}

func (s *accessoryService) CreateAccessory(req *AccessoryRequest, userID string) (*model.Accessory, error) {
	if err := validator.Check(req); err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "validation failed", err)
	}

	minQty := req.MinQuantity
	if minQty == 0 {
		minQty = 5
	}

	accessory := &model.Accessory{
		Name:            strings.TrimSpace(req.Name),
		Category:        req.Category,
		Description:     strings.TrimSpace(req.Description),
		PurchasePrice:   req.PurchasePrice,
		SellingPrice:    req.SellingPrice,
		QuantityInStock: req.QuantityInStock,
		MinQuantity:     minQty,
		Supplier:        strings.TrimSpace(req.Supplier),
		Notes:           strings.TrimSpace(req.Notes),
	}
	accessory.CreatedBy = userID
	accessory.UpdatedBy = userID

	if err := s.accessoryRepo.Create(accessory); err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "failed to save accessory", err)
	}

	s.hub.Publish(map[string]interface{}{
		"type":   "inventory_update",
		"action": "accessory_added",
		"accessory": map[string]interface{}{
			"id":       accessory.ID,
			"name":     accessory.Name,
			"category": accessory.Category,
			"stock":    accessory.QuantityInStock,
		},
		"user_id": userID,
	})

	return accessory, nil
}

func (s *accessoryService) UpdateAccessory(id uuid.UUID, req *AccessoryRequest, userID string) (*model.Accessory, error) {
	if err := validator.Check(req); err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "validation failed", err)
	}

	accessory, err := s.accessoryRepo.FindByID(id)
	if err != nil {
		return nil, apperr.New(apperr.KindNotFound, "accessory not found")
	}

	accessory.Name = strings.TrimSpace(req.Name)
	accessory.Category = req.Category
	accessory.Description = strings.TrimSpace(req.Description)
	accessory.PurchasePrice = req.PurchasePrice
	accessory.SellingPrice = req.SellingPrice
	accessory.QuantityInStock = req.QuantityInStock
	if req.MinQuantity > 0 {
		accessory.MinQuantity = req.MinQuantity
	}
	accessory.Supplier = strings.TrimSpace(req.Supplier)
	accessory.Notes = strings.TrimSpace(req.Notes)
	accessory.UpdatedBy = userID

	if err := s.accessoryRepo.Update(accessory); err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "failed to update accessory", err)
	}
	return accessory, nil
}

func (s *accessoryService) DeleteAccessory(id uuid.UUID) error {
	if _, err := s.accessoryRepo.FindByID(id); err != nil {
		return apperr.New(apperr.KindNotFound, "accessory not found")
	}
	if err := s.accessoryRepo.Delete(id); err != nil {
		return apperr.Wrap(apperr.KindPersistence, "failed to delete accessory", err)
	}
	return nil
}

func (s *accessoryService) GetAllAccessories() ([]model.Accessory, error) {
	return s.accessoryRepo.FindAll()
}

func (s *accessoryService) GetAccessoryByID(id uuid.UUID) (*model.Accessory, error) {
	accessory, err := s.accessoryRepo.FindByID(id)
	if err != nil {
		return nil, apperr.New(apperr.KindNotFound, "accessory not found")
	}
	return accessory, nil
}

func (s *accessoryService) SearchAccessories(term string) ([]model.Accessory, error) {
	accessories, err := s.accessoryRepo.FindAll()
	if err != nil {
		return nil, err
	}
	if term == "" {
		return accessories, nil
	}

	tokens := strings.Fields(strings.ToLower(term))
	var out []model.Accessory
	for _, a := range accessories {
		text := strings.ToLower(strings.Join([]string{a.Name, a.Category, a.Description, a.Supplier, a.Notes}, " "))
		if matchesAnyToken(text, tokens) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *accessoryService) GetLowStockAccessories() ([]model.Accessory, error) {
	accessories, err := s.accessoryRepo.FindAll()
	if err != nil {
		return nil, err
	}
	var low []model.Accessory
	for _, a := range accessories {
		if a.LowStock() {
			low = append(low, a)
		}
	}
	return low, nil
}

// AdjustStock applies a signed quantity change. The result is clamped at
// zero: a debit can never push stock negative. Returns the new quantity.
func (s *accessoryService) AdjustStock(id uuid.UUID, delta int, userID string) (int, error) {
	accessory, err := s.accessoryRepo.FindByID(id)
	if err != nil {
		return 0, apperr.New(apperr.KindNotFound, "accessory not found")
	}

	newQuantity := accessory.QuantityInStock + delta
	if newQuantity < 0 {
		newQuantity = 0
	}

	if err := s.accessoryRepo.UpdateStock(id, newQuantity, userID); err != nil {
		return 0, apperr.Wrap(apperr.KindPersistence, "failed to update stock", err)
	}

	s.hub.Publish(map[string]interface{}{
		"type":   "inventory_update",
		"action": "stock_adjusted",
		"accessory": map[string]interface{}{
			"id":        id,
			"name":      accessory.Name,
			"old_stock": accessory.QuantityInStock,
			"new_stock": newQuantity,
		},
		"user_id": userID,
	})

	return newQuantity, nil
}

func (s *accessoryService) GetStatistics() (*AccessoryStatistics, error) {
	accessories, err := s.accessoryRepo.FindAll()
	if err != nil {
		return nil, err
	}

	stats := &AccessoryStatistics{Categories: make(map[string]*CategorySummary)}
	for _, a := range accessories {
		stats.TotalAccessories++
		stats.TotalQuantity += a.QuantityInStock
		stats.TotalPurchaseValue += a.PurchasePrice * float64(a.QuantityInStock)
		stats.TotalSellingValue += a.SellingPrice * float64(a.QuantityInStock)
		if a.LowStock() {
			stats.LowStockCount++
		}

		cat, ok := stats.Categories[a.Category]
		if !ok {
			cat = &CategorySummary{}
			stats.Categories[a.Category] = cat
		}
		cat.Count++
		cat.TotalQuantity += a.QuantityInStock
		cat.TotalValue += a.SellingPrice * float64(a.QuantityInStock)
	}
	return stats, nil
}
