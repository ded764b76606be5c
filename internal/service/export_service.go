package service

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"go-phone-store/internal/apperr"
	"go-phone-store/internal/model"
	"go-phone-store/internal/repository"

	"github.com/google/uuid"
)

const exportVersion = "1.0"

type ExportService interface {
	Export() (*ExportPayload, error)
	Import(raw []byte, userID string) (*ImportSummary, error)
}

// ExportPayload is the full-store backup document. It round-trips through
// Import on a fresh database.
type ExportPayload struct {
	Version     string                    `json:"version"`
	ExportedAt  time.Time                 `json:"exported_at"`
	Phones      []model.Phone             `json:"phones"`
	Accessories []model.Accessory         `json:"accessories"`
	Sales       []model.Sale              `json:"sales"`
	PhoneTypes  []model.PhoneType         `json:"phone_types"`
	Categories  []model.AccessoryCategory `json:"categories"`
	Settings    map[string]string         `json:"settings"`
}

type ImportSummary struct {
	Phones      int `json:"phones"`
	Accessories int `json:"accessories"`
	Sales       int `json:"sales"`
	PhoneTypes  int `json:"phone_types"`
	Categories  int `json:"categories"`
	Settings    int `json:"settings"`
	Skipped     int `json:"skipped"`
}

type exportService struct {
	phoneRepo     repository.PhoneRepository
	accessoryRepo repository.AccessoryRepository
	saleRepo      repository.SaleRepository
	catalogRepo   repository.CatalogRepository
	settingRepo   repository.SettingRepository
}

func NewExportService(
	phoneRepo repository.PhoneRepository,
	accessoryRepo repository.AccessoryRepository,
	saleRepo repository.SaleRepository,
	catalogRepo repository.CatalogRepository,
	settingRepo repository.SettingRepository,
) ExportService {
	return &exportService{
		phoneRepo:     phoneRepo,
		accessoryRepo: accessoryRepo,
		saleRepo:      saleRepo,
		catalogRepo:   catalogRepo,
		settingRepo:   settingRepo,
	}
}

func (s *exportService) Export() (*ExportPayload, error) {
	phones, err := s.phoneRepo.FindAll()
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "failed to export phones", err)
	}
	accessories, err := s.accessoryRepo.FindAll()
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "failed to export accessories", err)
	}
	sales, err := s.saleRepo.FindAll()
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "failed to export sales", err)
	}
	phoneTypes, err := s.catalogRepo.FindAllPhoneTypes()
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "failed to export phone types", err)
	}
	categories, err := s.catalogRepo.FindAllCategories()
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "failed to export categories", err)
	}
	settings, err := s.settingRepo.All()
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "failed to export settings", err)
	}

	return &ExportPayload{
		Version:     exportVersion,
		ExportedAt:  time.Now(),
		Phones:      phones,
		Accessories: accessories,
		Sales:       sales,
		PhoneTypes:  phoneTypes,
		Categories:  categories,
		Settings:    settings,
	}, nil
}

// Import merges a backup into the current store. Records whose unique key
// already exists are skipped rather than overwritten, so a re-run of the
// same file is harmless.
func (s *exportService) Import(raw []byte, userID string) (*ImportSummary, error) {
	var payload ExportPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "backup file is not valid JSON", err)
	}
	if payload.Version == "" {
		return nil, apperr.New(apperr.KindValidation, "backup file is missing a version field")
	}

	summary := &ImportSummary{}

	for i := range payload.PhoneTypes {
		pt := payload.PhoneTypes[i]
		if existing, _ := s.catalogRepo.FindPhoneType(pt.Brand, pt.Model); existing != nil {
			summary.Skipped++
			continue
		}
		if err := s.catalogRepo.CreatePhoneType(&pt); err != nil {
			return nil, apperr.Wrap(apperr.KindPersistence, fmt.Sprintf("failed to import phone type %s %s", pt.Brand, pt.Model), err)
		}
		summary.PhoneTypes++
	}

	for i := range payload.Categories {
		category := payload.Categories[i]
		if existing, _ := s.catalogRepo.FindCategoryByName(category.Name); existing != nil {
			summary.Skipped++
			continue
		}
		if err := s.catalogRepo.CreateCategory(&category); err != nil {
			return nil, apperr.Wrap(apperr.KindPersistence, fmt.Sprintf("failed to import category %q", category.Name), err)
		}
		summary.Categories++
	}

	for i := range payload.Phones {
		phone := payload.Phones[i]
		if existing, _ := s.phoneRepo.FindBySerial(phone.SerialNumber); existing != nil {
			summary.Skipped++
			continue
		}
		if existing, _ := s.phoneRepo.FindByNumber(phone.PhoneNumber); existing != nil {
			log.Printf("import: phone number %s already assigned, skipping serial %s", phone.PhoneNumber, phone.SerialNumber)
			summary.Skipped++
			continue
		}
		phone.UpdatedBy = userID
		if err := s.phoneRepo.Create(&phone); err != nil {
			return nil, apperr.Wrap(apperr.KindPersistence, fmt.Sprintf("failed to import phone %s", phone.SerialNumber), err)
		}
		summary.Phones++
	}

	for i := range payload.Accessories {
		accessory := payload.Accessories[i]
		if accessory.ID != uuid.Nil {
			if existing, _ := s.accessoryRepo.FindByID(accessory.ID); existing != nil {
				summary.Skipped++
				continue
			}
		}
		accessory.UpdatedBy = userID
		if err := s.accessoryRepo.Create(&accessory); err != nil {
			return nil, apperr.Wrap(apperr.KindPersistence, fmt.Sprintf("failed to import accessory %s", accessory.Name), err)
		}
		summary.Accessories++
	}

	for i := range payload.Sales {
		sale := payload.Sales[i]
		if existing, _ := s.saleRepo.FindByNumber(sale.SaleNumber); existing != nil {
			summary.Skipped++
			continue
		}
		sale.UpdatedBy = userID
		if err := s.saleRepo.Create(&sale); err != nil {
			return nil, apperr.Wrap(apperr.KindPersistence, fmt.Sprintf("failed to import sale %s", sale.SaleNumber), err)
		}
		summary.Sales++
	}

	for key, value := range payload.Settings {
		if err := s.settingRepo.Set(key, value); err != nil {
			return nil, apperr.Wrap(apperr.KindPersistence, fmt.Sprintf("failed to import setting %q", key), err)
		}
		summary.Settings++
	}

	return summary, nil
}
