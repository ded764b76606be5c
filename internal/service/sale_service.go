package service

import (
	"fmt"
	"time"

	"go-phone-store/internal/apperr"
	"go-phone-store/internal/model"
	"go-phone-store/internal/repository"
	"go-phone-store/internal/ws"
	"go-phone-store/pkg/sequence"
	"go-phone-store/pkg/validator"

	"github.com/google/uuid"
)

type SaleService interface {
	CreateSale(req *CreateSaleRequest, userID string) (*model.Sale, error)
	UpdateSale(id uuid.UUID, req *UpdateSaleRequest, userID string) (*model.Sale, error)
	CancelSale(id uuid.UUID, userID string) error
	DeleteSale(id uuid.UUID) error
	GetAllSales() ([]model.Sale, error)
	GetSaleByID(id uuid.UUID) (*model.Sale, error)
	FilterSales(filter SaleFilter) ([]model.Sale, error)
	GetStatistics() (*SaleStatistics, error)
	GetReceipt(id uuid.UUID) (*Receipt, error)
}

type CreateSaleRequest struct {
	Items           []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
	CustomerName    string            `json:"customer_name"`
	CustomerPhone   string            `json:"customer_phone"`
	CustomerEmail   string            `json:"customer_email" validate:"omitempty,email"`
	CustomerAddress string            `json:"customer_address"`
	PaymentMethod   string            `json:"payment_method"`
	Notes           string            `json:"notes"`
}

type SaleItemRequest struct {
	ProductType string    `json:"product_type" validate:"required,oneof=phone accessory"`
	ProductID   uuid.UUID `json:"product_id" validate:"uuid_required"`
	UnitPrice   float64   `json:"unit_price" validate:"required,gt=0"`
	Quantity    int       `json:"quantity" validate:"required,gt=0"`
	Notes       string    `json:"notes"`
}

// UpdateSale only touches customer info, payment method and notes. Line
// items and totals are immutable once recorded.
type UpdateSaleRequest struct {
	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerEmail   string `json:"customer_email" validate:"omitempty,email"`
	CustomerAddress string `json:"customer_address"`
	PaymentMethod   string `json:"payment_method"`
	Notes           string `json:"notes"`
}

// SaleFilter selects sales by calendar period.
type SaleFilter struct {
	Type  string // all, day, month, year
	Day   time.Time
	Year  int
	Month int
}

type SaleStatistics struct {
	TotalCount     int                        `json:"total_count"`
	TotalAmount    float64                    `json:"total_amount"`
	CompletedCount int                        `json:"completed_count"`
	CancelledCount int                        `json:"cancelled_count"`
	PaymentMethods map[string]int             `json:"payment_methods"`
	DailyTotals    map[string]float64         `json:"daily_totals"`
	MonthlyTotals  map[string]float64         `json:"monthly_totals"`
	TopProducts    map[string]*ProductSummary `json:"top_products"`
}

type ProductSummary struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
}

// Receipt is the immutable snapshot handed to an external renderer.
type Receipt struct {
	Sale           *model.Sale `json:"sale"`
	CompanyName    string      `json:"company_name"`
	CompanyAddress string      `json:"company_address"`
	CompanyPhone   string      `json:"company_phone"`
	PrintedAt      time.Time   `json:"printed_at"`
}

type saleService struct {
	saleRepo      repository.SaleRepository
	phoneRepo     repository.PhoneRepository
	accessoryRepo repository.AccessoryRepository
	settingRepo   repository.SettingRepository
	hub           *ws.Hub
	allocAttempts int
}

func NewSaleService(
	saleRepo repository.SaleRepository,
	phoneRepo repository.PhoneRepository,
	accessoryRepo repository.AccessoryRepository,
	settingRepo repository.SettingRepository,
	hub *ws.Hub,
	allocAttempts int,
) SaleService {
	if allocAttempts <= 0 {
		allocAttempts = DefaultAllocAttempts
	}
	return &saleService{
		saleRepo:      saleRepo,
		phoneRepo:     phoneRepo,
		accessoryRepo: accessoryRepo,
		settingRepo:   settingRepo,
		hub:           hub,
		allocAttempts: allocAttempts,
	}
}

// CreateSale validates every line item before touching inventory, then
// applies the inventory effects and persists the sale. The backing store
// has no cross-collection transaction: a write failure after mutation
// starts leaves a partially applied sale, which the up-front validation
// pass exists to make as unlikely as possible.
func (s *saleService) CreateSale(req *CreateSaleRequest, userID string) (*model.Sale, error) {
	if err := validator.Check(req); err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "validation failed", err)
	}

	// Validation pass: runs to completion over all items before any
	// inventory mutation begins.
	items, subtotal, err := s.validateAndSnapshotItems(req.Items)
	if err != nil {
		return nil, err
	}

	// Inventory effects: phones are removed, accessory stock decremented.
	for i, itemReq := range req.Items {
		if itemReq.ProductType == model.ProductTypePhone {
			if err := s.phoneRepo.Delete(itemReq.ProductID); err != nil {
				return nil, apperr.Wrap(apperr.KindPersistence,
					fmt.Sprintf("item %d: failed to remove sold phone", i+1), err)
			}
			continue
		}

		accessory, err := s.accessoryRepo.FindByID(itemReq.ProductID)
		if err != nil {
			return nil, apperr.Newf(apperr.KindNotFound, "item %d: accessory no longer exists", i+1)
		}
		newQuantity := accessory.QuantityInStock - itemReq.Quantity
		if newQuantity < 0 {
			newQuantity = 0
		}
		if err := s.accessoryRepo.UpdateStock(itemReq.ProductID, newQuantity, userID); err != nil {
			return nil, apperr.Wrap(apperr.KindPersistence,
				fmt.Sprintf("item %d: failed to decrement stock", i+1), err)
		}
	}

	saleNumber, err := s.allocateSaleNumber()
	if err != nil {
		return nil, err
	}

	sale := &model.Sale{
		SaleNumber:      saleNumber,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		CustomerAddress: req.CustomerAddress,
		PaymentMethod:   req.PaymentMethod,
		Notes:           req.Notes,
		Subtotal:        subtotal,
		TotalAmount:     subtotal,
		Status:          model.SaleCompleted,
		Items:           items,
	}
	sale.CreatedBy = userID
	sale.UpdatedBy = userID

	if err := s.saleRepo.Create(sale); err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "failed to save sale", err)
	}

	s.hub.Publish(map[string]interface{}{
		"type":   "sale_update",
		"action": "sale_created",
		"sale": map[string]interface{}{
			"id":           sale.ID,
			"sale_number":  sale.SaleNumber,
			"total_amount": sale.TotalAmount,
			"item_count":   len(sale.Items),
		},
		"user_id": userID,
	})

	return sale, nil
}

// validateAndSnapshotItems checks availability for every item and builds
// the line-item snapshots while the referenced records are still present.
func (s *saleService) validateAndSnapshotItems(reqs []SaleItemRequest) ([]model.SaleItem, float64, error) {
	var items []model.SaleItem
	var subtotal float64
	seenPhones := make(map[uuid.UUID]bool)

	for i, itemReq := range reqs {
		total := itemReq.UnitPrice * float64(itemReq.Quantity)

		switch itemReq.ProductType {
		case model.ProductTypePhone:
			if itemReq.Quantity != 1 {
				return nil, 0, apperr.Newf(apperr.KindValidation, "item %d: a phone line must have quantity 1", i+1)
			}
			if seenPhones[itemReq.ProductID] {
				return nil, 0, apperr.Newf(apperr.KindValidation, "item %d: phone listed twice in one sale", i+1)
			}
			seenPhones[itemReq.ProductID] = true

			phone, err := s.phoneRepo.FindByID(itemReq.ProductID)
			if err != nil {
				return nil, 0, apperr.Newf(apperr.KindValidation, "item %d: phone is not available", i+1)
			}
			condition := string(phone.Condition)
			items = append(items, model.SaleItem{
				ProductType:  model.ProductTypePhone,
				ProductID:    phone.ID,
				ProductName:  phone.Brand + " " + phone.Model,
				Description:  phone.Description,
				SerialNumber: phone.SerialNumber,
				UnitPrice:    itemReq.UnitPrice,
				Quantity:     1,
				TotalPrice:   total,
				Condition:    &condition,
				BatteryLevel: phone.BatteryLevel,
				Notes:        itemReq.Notes,
			})

		case model.ProductTypeAccessory:
			accessory, err := s.accessoryRepo.FindByID(itemReq.ProductID)
			if err != nil {
				return nil, 0, apperr.Newf(apperr.KindValidation, "item %d: accessory is not available", i+1)
			}
			if accessory.QuantityInStock < itemReq.Quantity {
				return nil, 0, apperr.Newf(apperr.KindValidation,
					"item %d: insufficient stock for %s (have %d, want %d)",
					i+1, accessory.Name, accessory.QuantityInStock, itemReq.Quantity)
			}
			items = append(items, model.SaleItem{
				ProductType: model.ProductTypeAccessory,
				ProductID:   accessory.ID,
				ProductName: accessory.Name,
				Description: accessory.Description,
				UnitPrice:   itemReq.UnitPrice,
				Quantity:    itemReq.Quantity,
				TotalPrice:  total,
				Notes:       itemReq.Notes,
			})

		default:
			return nil, 0, apperr.Newf(apperr.KindValidation, "item %d: unknown product type %q", i+1, itemReq.ProductType)
		}

		subtotal += total
	}

	return items, subtotal, nil
}

// allocateSaleNumber applies the same allocate-and-verify loop used for
// phone numbers: the generated number is timestamp-based and collisions
// are unlikely, but the store is still consulted before use.
func (s *saleService) allocateSaleNumber() (string, error) {
	for attempt := 0; attempt < s.allocAttempts; attempt++ {
		candidate := sequence.SaleNumber(time.Now())
		if existing, _ := s.saleRepo.FindByNumber(candidate); existing == nil {
			return candidate, nil
		}
	}
	return "", apperr.Newf(apperr.KindAllocationExhausted, "could not allocate a unique sale number after %d attempts", s.allocAttempts)
}

func (s *saleService) UpdateSale(id uuid.UUID, req *UpdateSaleRequest, userID string) (*model.Sale, error) {
	if err := validator.Check(req); err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "validation failed", err)
	}

	sale, err := s.saleRepo.FindByID(id)
	if err != nil {
		return nil, apperr.New(apperr.KindNotFound, "sale not found")
	}

	sale.CustomerName = req.CustomerName
	sale.CustomerPhone = req.CustomerPhone
	sale.CustomerEmail = req.CustomerEmail
	sale.CustomerAddress = req.CustomerAddress
	sale.PaymentMethod = req.PaymentMethod
	sale.Notes = req.Notes
	sale.UpdatedBy = userID

	if err := s.saleRepo.Update(sale); err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "failed to update sale", err)
	}
	return sale, nil
}

// CancelSale flips the status to cancelled. Inventory is NOT restored:
// restocking after a cancellation is a manual step at the counter.
func (s *saleService) CancelSale(id uuid.UUID, userID string) error {
	sale, err := s.saleRepo.FindByID(id)
	if err != nil {
		return apperr.New(apperr.KindNotFound, "sale not found")
	}
	if sale.Status == model.SaleCancelled {
		return apperr.New(apperr.KindConflict, "sale is already cancelled")
	}

	if err := s.saleRepo.UpdateStatus(id, model.SaleCancelled, userID); err != nil {
		return apperr.Wrap(apperr.KindPersistence, "failed to cancel sale", err)
	}

	s.hub.Publish(map[string]interface{}{
		"type":    "sale_update",
		"action":  "sale_cancelled",
		"sale_id": id,
		"user_id": userID,
	})
	return nil
}

func (s *saleService) DeleteSale(id uuid.UUID) error {
	if _, err := s.saleRepo.FindByID(id); err != nil {
		return apperr.New(apperr.KindNotFound, "sale not found")
	}
	if err := s.saleRepo.Delete(id); err != nil {
		return apperr.Wrap(apperr.KindPersistence, "failed to delete sale", err)
	}
	return nil
}

func (s *saleService) GetAllSales() ([]model.Sale, error) {
	return s.saleRepo.FindAll()
}

func (s *saleService) GetSaleByID(id uuid.UUID) (*model.Sale, error) {
	sale, err := s.saleRepo.FindByID(id)
	if err != nil {
		return nil, apperr.New(apperr.KindNotFound, "sale not found")
	}
	return sale, nil
}

func (s *saleService) FilterSales(filter SaleFilter) ([]model.Sale, error) {
	sales, err := s.saleRepo.FindAll()
	if err != nil {
		return nil, err
	}

	switch filter.Type {
	case "day":
		return filterSalesBy(sales, func(t time.Time) bool {
			y1, m1, d1 := t.Date()
			y2, m2, d2 := filter.Day.Date()
			return y1 == y2 && m1 == m2 && d1 == d2
		}), nil
	case "month":
		return filterSalesBy(sales, func(t time.Time) bool {
			return t.Year() == filter.Year && int(t.Month()) == filter.Month
		}), nil
	case "year":
		return filterSalesBy(sales, func(t time.Time) bool {
			return t.Year() == filter.Year
		}), nil
	default:
		return sales, nil
	}
}

func filterSalesBy(sales []model.Sale, match func(time.Time) bool) []model.Sale {
	var out []model.Sale
	for _, sale := range sales {
		if match(sale.CreatedAt) {
			out = append(out, sale)
		}
	}
	return out
}

func (s *saleService) GetStatistics() (*SaleStatistics, error) {
	sales, err := s.saleRepo.FindAll()
	if err != nil {
		return nil, err
	}

	stats := &SaleStatistics{
		PaymentMethods: make(map[string]int),
		DailyTotals:    make(map[string]float64),
		MonthlyTotals:  make(map[string]float64),
		TopProducts:    make(map[string]*ProductSummary),
	}

	for _, sale := range sales {
		stats.TotalCount++
		stats.TotalAmount += sale.TotalAmount

		switch sale.Status {
		case model.SaleCompleted:
			stats.CompletedCount++
		case model.SaleCancelled:
			stats.CancelledCount++
		}

		method := sale.PaymentMethod
		if method == "" {
			method = "unspecified"
		}
		stats.PaymentMethods[method]++

		day := sale.CreatedAt.Format("2006-01-02")
		stats.DailyTotals[day] += sale.TotalAmount
		month := sale.CreatedAt.Format("2006-01")
		stats.MonthlyTotals[month] += sale.TotalAmount

		for _, item := range sale.Items {
			key := item.ProductName + " (" + item.ProductType + ")"
			summary, ok := stats.TopProducts[key]
			if !ok {
				summary = &ProductSummary{Name: item.ProductName, Type: item.ProductType}
				stats.TopProducts[key] = summary
			}
			summary.Quantity += item.Quantity
			summary.Total += item.TotalPrice
		}
	}

	return stats, nil
}

// GetReceipt returns the populated sale and company details for the
// external receipt renderer; nothing here formats or prints.
func (s *saleService) GetReceipt(id uuid.UUID) (*Receipt, error) {
	sale, err := s.saleRepo.FindByID(id)
	if err != nil {
		return nil, apperr.New(apperr.KindNotFound, "sale not found")
	}

	name, _ := s.settingRepo.Get(model.SettingCompanyName)
	address, _ := s.settingRepo.Get(model.SettingCompanyAddress)
	phone, _ := s.settingRepo.Get(model.SettingCompanyPhone)

	return &Receipt{
		Sale:           sale,
		CompanyName:    name,
		CompanyAddress: address,
		CompanyPhone:   phone,
		PrintedAt:      time.Now(),
	}, nil
}
