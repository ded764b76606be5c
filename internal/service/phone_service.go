package service

import (
	"fmt"
	"log"
	"strings"

	"go-phone-store/internal/apperr"
	"go-phone-store/internal/model"
	"go-phone-store/internal/repository"
	"go-phone-store/internal/ws"
	"go-phone-store/pkg/sequence"
	"go-phone-store/pkg/validator"

	"github.com/google/uuid"
)

const DefaultAllocAttempts = 10

type PhoneService interface {
	CreatePhone(req *CreatePhoneRequest, userID string) (*model.Phone, error)
	UpdatePhone(id uuid.UUID, req *UpdatePhoneRequest, userID string) (*model.Phone, error)
	DeletePhone(id uuid.UUID) error
	GetAllPhones() ([]model.Phone, error)
	GetPhoneByID(id uuid.UUID) (*model.Phone, error)
	SearchPhones(term string, condition string) ([]model.Phone, error)
	GetStatistics() (*PhoneStatistics, error)
}

type CreatePhoneRequest struct {
	Brand          string  `json:"brand" validate:"required"`
	Model          string  `json:"model" validate:"required"`
	Condition      string  `json:"condition" validate:"omitempty,oneof=new used"`
	SerialNumber   string  `json:"serial_number" validate:"required"`
	PurchasePrice  float64 `json:"purchase_price" validate:"gte=0"`
	SellingPrice   float64 `json:"selling_price" validate:"gte=0"`
	BarcodeInput   string  `json:"barcode_input"`
	Description    string  `json:"description"`
	WarrantyMonths *int    `json:"warranty_months"`
	Color          string  `json:"color"`
	Memory         string  `json:"memory"`
	AgeMonths      *int    `json:"age_months"`
	BatteryLevel   *string `json:"battery_level"`
	Grade          *string `json:"grade" validate:"omitempty,oneof=excellent very_good good fair"`
	CustomerName   string  `json:"customer_name"`
	CustomerID     string  `json:"customer_id"`
}

type UpdatePhoneRequest struct {
	Brand          string  `json:"brand" validate:"required"`
	Model          string  `json:"model" validate:"required"`
	SerialNumber   string  `json:"serial_number" validate:"required"`
	PurchasePrice  float64 `json:"purchase_price" validate:"gte=0"`
	SellingPrice   float64 `json:"selling_price" validate:"gte=0"`
	Description    string  `json:"description"`
	WarrantyMonths *int    `json:"warranty_months"`
	Color          string  `json:"color"`
	Memory         string  `json:"memory"`
	AgeMonths      *int    `json:"age_months"`
	BatteryLevel   *string `json:"battery_level"`
	Grade          *string `json:"grade" validate:"omitempty,oneof=excellent very_good good fair"`
	CustomerName   string  `json:"customer_name"`
	CustomerID     string  `json:"customer_id"`
}

// PhoneStatistics summarizes the handset inventory.
type PhoneStatistics struct {
	TotalPhones        int                 `json:"total_phones"`
	NewPhones          int                 `json:"new_phones"`
	UsedPhones         int                 `json:"used_phones"`
	TotalPurchaseValue float64             `json:"total_purchase_value"`
	TotalSellingValue  float64             `json:"total_selling_value"`
	BrandSummaries     []BrandModelSummary `json:"brand_summaries"`
}

type BrandModelSummary struct {
	Brand              string  `json:"brand"`
	Model              string  `json:"model"`
	Condition          string  `json:"condition"`
	Count              int     `json:"count"`
	TotalPurchaseValue float64 `json:"total_purchase_value"`
	TotalSellingValue  float64 `json:"total_selling_value"`
}

type phoneService struct {
	phoneRepo     repository.PhoneRepository
	hub           *ws.Hub
	allocAttempts int
}

// NewPhoneService wires the phone inventory. allocAttempts bounds the
// allocate-and-verify retry loop for phone numbers.
func NewPhoneService(phoneRepo repository.PhoneRepository, hub *ws.Hub, allocAttempts int) PhoneService {
	if allocAttempts <= 0 {
		allocAttempts = DefaultAllocAttempts
	}
	return &phoneService{
		phoneRepo:     phoneRepo,
		hub:           hub,
		allocAttempts: allocAttempts,
	}
}

func (s *phoneService) CreatePhone(req *CreatePhoneRequest, userID string) (*model.Phone, error) {
	if err := validator.Check(req); err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "validation failed", err)
	}

	serial := strings.TrimSpace(req.SerialNumber)
	if existing, _ := s.phoneRepo.FindBySerial(serial); existing != nil {
		return nil, apperr.Newf(apperr.KindDuplicateKey, "serial number %s already exists", serial)
	}

	phoneNumber, err := s.resolvePhoneNumber(req.BarcodeInput)
	if err != nil {
		return nil, err
	}

	condition := model.PhoneCondition(req.Condition)
	if condition == "" {
		condition = model.ConditionNew
	}

	phone := &model.Phone{
		PhoneNumber:    phoneNumber,
		SerialNumber:   serial,
		Brand:          strings.TrimSpace(req.Brand),
		Model:          strings.TrimSpace(req.Model),
		Condition:      condition,
		PurchasePrice:  req.PurchasePrice,
		SellingPrice:   req.SellingPrice,
		Description:    req.Description,
		WarrantyMonths: req.WarrantyMonths,
		Color:          req.Color,
		Memory:         req.Memory,
		CustomerName:   req.CustomerName,
		CustomerID:     req.CustomerID,
	}
	if condition == model.ConditionUsed {
		phone.AgeMonths = req.AgeMonths
		phone.BatteryLevel = req.BatteryLevel
		phone.Grade = req.Grade
	}
	phone.CreatedBy = userID
	phone.UpdatedBy = userID

	if err := s.phoneRepo.Create(phone); err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "failed to save phone", err)
	}

	s.hub.Publish(map[string]interface{}{
		"type":   "inventory_update",
		"action": "phone_added",
		"phone": map[string]interface{}{
			"id":           phone.ID,
			"phone_number": phone.PhoneNumber,
			"brand":        phone.Brand,
			"model":        phone.Model,
			"condition":    phone.Condition,
		},
		"user_id": userID,
	})

	return phone, nil
}

// resolvePhoneNumber either validates a scanned barcode value or allocates
// the next free number. Allocation re-checks the live store after computing
// a candidate and retries with a bounded budget: the store gives no atomic
// increment, so the check is best-effort collision protection.
func (s *phoneService) resolvePhoneNumber(barcodeInput string) (string, error) {
	if barcodeInput != "" {
		number, ok := sequence.NormalizeBarcode(barcodeInput)
		if !ok {
			return "", apperr.New(apperr.KindValidation, "invalid barcode input")
		}
		if existing, _ := s.phoneRepo.FindByNumber(number); existing != nil {
			return "", apperr.Newf(apperr.KindDuplicateKey, "phone with number %s already exists", number)
		}
		return number, nil
	}

	for attempt := 0; attempt < s.allocAttempts; attempt++ {
		numbers, err := s.phoneRepo.AllNumbers()
		if err != nil {
			return "", apperr.Wrap(apperr.KindPersistence, "failed to read phone numbers", err)
		}

		candidate, err := sequence.NextPhoneNumber(numbers)
		if err != nil {
			return "", apperr.Wrap(apperr.KindCapacityExceeded, "phone number space exhausted", err)
		}

		if existing, _ := s.phoneRepo.FindByNumber(candidate); existing == nil {
			return candidate, nil
		}
		log.Printf("phone number %s already taken, retrying allocation (%d/%d)", candidate, attempt+1, s.allocAttempts)
	}

	return "", apperr.Newf(apperr.KindAllocationExhausted, "could not allocate a unique phone number after %d attempts", s.allocAttempts)
}

func (s *phoneService) UpdatePhone(id uuid.UUID, req *UpdatePhoneRequest, userID string) (*model.Phone, error) {
	if err := validator.Check(req); err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "validation failed", err)
	}

	phone, err := s.phoneRepo.FindByID(id)
	if err != nil {
		return nil, apperr.New(apperr.KindNotFound, "phone not found")
	}

	serial := strings.TrimSpace(req.SerialNumber)
	if other, _ := s.phoneRepo.FindBySerial(serial); other != nil && other.ID != id {
		return nil, apperr.Newf(apperr.KindDuplicateKey, "serial number %s already exists", serial)
	}

	phone.Brand = strings.TrimSpace(req.Brand)
	phone.Model = strings.TrimSpace(req.Model)
	phone.SerialNumber = serial
	phone.PurchasePrice = req.PurchasePrice
	phone.SellingPrice = req.SellingPrice
	phone.Description = req.Description
	phone.WarrantyMonths = req.WarrantyMonths
	phone.Color = req.Color
	phone.Memory = req.Memory
	phone.CustomerName = req.CustomerName
	phone.CustomerID = req.CustomerID
	if phone.IsUsed() {
		phone.AgeMonths = req.AgeMonths
		phone.BatteryLevel = req.BatteryLevel
		phone.Grade = req.Grade
	}
	phone.UpdatedBy = userID

	if err := s.phoneRepo.Update(phone); err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "failed to update phone", err)
	}
	return phone, nil
}

func (s *phoneService) DeletePhone(id uuid.UUID) error {
	if _, err := s.phoneRepo.FindByID(id); err != nil {
		return apperr.New(apperr.KindNotFound, "phone not found")
	}
	if err := s.phoneRepo.Delete(id); err != nil {
		return apperr.Wrap(apperr.KindPersistence, "failed to delete phone", err)
	}
	return nil
}

func (s *phoneService) GetAllPhones() ([]model.Phone, error) {
	return s.phoneRepo.FindAll()
}

func (s *phoneService) GetPhoneByID(id uuid.UUID) (*model.Phone, error) {
	phone, err := s.phoneRepo.FindByID(id)
	if err != nil {
		return nil, apperr.New(apperr.KindNotFound, "phone not found")
	}
	return phone, nil
}

// SearchPhones filters in memory; the collection stays small enough
// (hundreds to low thousands of handsets) that a linear scan is fine.
func (s *phoneService) SearchPhones(term string, condition string) ([]model.Phone, error) {
	phones, err := s.phoneRepo.FindAll()
	if err != nil {
		return nil, err
	}
	if term == "" && condition == "" {
		return phones, nil
	}

	tokens := strings.Fields(strings.ToLower(term))
	var out []model.Phone
	for _, p := range phones {
		if condition != "" && string(p.Condition) != condition {
			continue
		}
		if len(tokens) > 0 && !matchesAnyToken(phoneSearchText(&p), tokens) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func phoneSearchText(p *model.Phone) string {
	return strings.ToLower(strings.Join([]string{
		p.PhoneNumber, p.SerialNumber, p.Brand, p.Model,
		p.Color, p.Memory, p.Description, p.CustomerName, p.CustomerID,
	}, " "))
}

func matchesAnyToken(text string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}

func (s *phoneService) GetStatistics() (*PhoneStatistics, error) {
	phones, err := s.phoneRepo.FindAll()
	if err != nil {
		return nil, err
	}

	stats := &PhoneStatistics{}
	summaries := make(map[string]*BrandModelSummary)
	for _, p := range phones {
		stats.TotalPhones++
		stats.TotalPurchaseValue += p.PurchasePrice
		stats.TotalSellingValue += p.SellingPrice
		if p.IsUsed() {
			stats.UsedPhones++
		} else {
			stats.NewPhones++
		}

		key := fmt.Sprintf("%s|%s|%s", p.Brand, p.Model, p.Condition)
		sum, ok := summaries[key]
		if !ok {
			sum = &BrandModelSummary{Brand: p.Brand, Model: p.Model, Condition: string(p.Condition)}
			summaries[key] = sum
		}
		sum.Count++
		sum.TotalPurchaseValue += p.PurchasePrice
		sum.TotalSellingValue += p.SellingPrice
	}
	for _, sum := range summaries {
		stats.BrandSummaries = append(stats.BrandSummaries, *sum)
	}
	return stats, nil
}
