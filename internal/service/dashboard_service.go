package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"go-phone-store/internal/apperr"
	"go-phone-store/internal/repository"

	"github.com/redis/go-redis/v9"
)

const (
	dashboardCacheKey = "dashboard:overview"
	dashboardCacheTTL = 30 * time.Second
)

type DashboardService interface {
	GetOverview(ctx context.Context) (*DashboardOverview, error)
	GetRevenue(ctx context.Context, start, end time.Time) (*RevenueSummary, error)
}

type DashboardOverview struct {
	TotalPhones        int     `json:"total_phones"`
	NewPhones          int     `json:"new_phones"`
	UsedPhones         int     `json:"used_phones"`
	TotalAccessories   int     `json:"total_accessories"`
	AccessoryUnits     int     `json:"accessory_units"`
	LowStockCount      int     `json:"low_stock_count"`
	InventoryValuation float64 `json:"inventory_valuation"`
	TotalSales         int     `json:"total_sales"`
	GeneratedAt        string  `json:"generated_at"`
}

type RevenueSummary struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Revenue   float64   `json:"revenue"`
	SaleCount int64     `json:"sale_count"`
}

type dashboardService struct {
	phoneRepo     repository.PhoneRepository
	accessoryRepo repository.AccessoryRepository
	saleRepo      repository.SaleRepository
	cache         *redis.Client
}

// NewDashboardService accepts a nil cache client; every lookup then goes
// straight to the database.
func NewDashboardService(
	phoneRepo repository.PhoneRepository,
	accessoryRepo repository.AccessoryRepository,
	saleRepo repository.SaleRepository,
	cache *redis.Client,
) DashboardService {
	return &dashboardService{
		phoneRepo:     phoneRepo,
		accessoryRepo: accessoryRepo,
		saleRepo:      saleRepo,
		cache:         cache,
	}
}

func (s *dashboardService) GetOverview(ctx context.Context) (*DashboardOverview, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, dashboardCacheKey).Bytes(); err == nil {
			var cached DashboardOverview
			if json.Unmarshal(raw, &cached) == nil {
				return &cached, nil
			}
		}
	}

	overview, err := s.buildOverview()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(overview); err == nil {
			if err := s.cache.Set(ctx, dashboardCacheKey, raw, dashboardCacheTTL).Err(); err != nil {
				log.Printf("dashboard: cache write failed: %v", err)
			}
		}
	}

	return overview, nil
}

func (s *dashboardService) buildOverview() (*DashboardOverview, error) {
	phones, err := s.phoneRepo.FindAll()
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "failed to load phones", err)
	}
	accessories, err := s.accessoryRepo.FindAll()
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "failed to load accessories", err)
	}
	sales, err := s.saleRepo.FindAll()
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "failed to load sales", err)
	}

	overview := &DashboardOverview{
		TotalPhones: len(phones),
		TotalSales:  len(sales),
		GeneratedAt: time.Now().Format(time.RFC3339),
	}

	for _, phone := range phones {
		if phone.IsUsed() {
			overview.UsedPhones++
		} else {
			overview.NewPhones++
		}
		overview.InventoryValuation += phone.SellingPrice
	}

	overview.TotalAccessories = len(accessories)
	for _, accessory := range accessories {
		overview.AccessoryUnits += accessory.QuantityInStock
		overview.InventoryValuation += accessory.SellingPrice * float64(accessory.QuantityInStock)
		if accessory.LowStock() {
			overview.LowStockCount++
		}
	}

	return overview, nil
}

func (s *dashboardService) GetRevenue(ctx context.Context, start, end time.Time) (*RevenueSummary, error) {
	revenue, count, err := s.saleRepo.GetRevenueSummary(start, end)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "failed to compute revenue", err)
	}
	return &RevenueSummary{Start: start, End: end, Revenue: revenue, SaleCount: count}, nil
}
