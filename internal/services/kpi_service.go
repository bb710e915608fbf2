package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"coldmart/internal/models"
	"coldmart/internal/repositories"
)

// KPISnapshot is the aggregated dashboard header.
type KPISnapshot struct {
	InboundToday  int64                    `json:"inbound_today"`
	OutboundToday int64                    `json:"outbound_today"`
	OnHandByClass map[models.TempClass]int `json:"on_hand_by_class"`
	OpenAlerts    int64                    `json:"open_alerts"`
	OccupancyRate float64                  `json:"occupancy_rate"`
	GeneratedAt   time.Time                `json:"generated_at"`
}

// FinanceReport values the stored inventory at product unit prices.
type FinanceReport struct {
	ValuationByClass map[models.TempClass]decimal.Decimal `json:"valuation_by_class"`
	TotalValuation   decimal.Decimal                      `json:"total_valuation"`
	GeneratedAt      time.Time                            `json:"generated_at"`
}

type KPIService interface {
	Snapshot(ctx context.Context) (*KPISnapshot, error)
	Finance(ctx context.Context) (*FinanceReport, error)
}

type kpiService struct {
	inboundRepo   repositories.InboundOrderRepository
	outboundRepo  repositories.OutboundOrderRepository
	inventoryRepo repositories.InventoryRepository
	locationRepo  repositories.LocationRepository
	productRepo   repositories.ProductRepository
	alertRepo     repositories.AlertRepository
}

func NewKPIService(
	inboundRepo repositories.InboundOrderRepository,
	outboundRepo repositories.OutboundOrderRepository,
	inventoryRepo repositories.InventoryRepository,
	locationRepo repositories.LocationRepository,
	productRepo repositories.ProductRepository,
	alertRepo repositories.AlertRepository,
) KPIService {
	return &kpiService{
		inboundRepo:   inboundRepo,
		outboundRepo:  outboundRepo,
		inventoryRepo: inventoryRepo,
		locationRepo:  locationRepo,
		productRepo:   productRepo,
		alertRepo:     alertRepo,
	}
}

func (s *kpiService) Snapshot(ctx context.Context) (*KPISnapshot, error) {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	inbound, err := s.inboundRepo.CountCreatedSince(ctx, midnight)
	if err != nil {
		return nil, err
	}
	outbound, err := s.outboundRepo.CountCreatedSince(ctx, midnight)
	if err != nil {
		return nil, err
	}
	openAlerts, err := s.alertRepo.CountOpen(ctx)
	if err != nil {
		return nil, err
	}

	views, err := s.inventoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	onHand := map[models.TempClass]int{
		models.TempClassFrozen:  0,
		models.TempClassChilled: 0,
		models.TempClassAmbient: 0,
	}
	for _, v := range views {
		onHand[v.TempClass] += v.Qty
	}

	locations, err := s.locationRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	var used, capacity int
	for _, loc := range locations {
		used += loc.CurrentQty
		capacity += loc.MaxQty
	}
	occupancy := 0.0
	if capacity > 0 {
		occupancy = float64(used) / float64(capacity)
	}

	return &KPISnapshot{
		InboundToday:  inbound,
		OutboundToday: outbound,
		OnHandByClass: onHand,
		OpenAlerts:    openAlerts,
		OccupancyRate: occupancy,
		GeneratedAt:   now,
	}, nil
}

func (s *kpiService) Finance(ctx context.Context) (*FinanceReport, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	prices := make(map[string]decimal.Decimal, len(products))
	for _, p := range products {
		prices[p.ID.String()] = decimal.NewFromFloat(p.UnitPrice)
	}

	views, err := s.inventoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	report := &FinanceReport{
		ValuationByClass: map[models.TempClass]decimal.Decimal{
			models.TempClassFrozen:  decimal.Zero,
			models.TempClassChilled: decimal.Zero,
			models.TempClassAmbient: decimal.Zero,
		},
		TotalValuation: decimal.Zero,
		GeneratedAt:    time.Now(),
	}
	for _, v := range views {
		price, ok := prices[v.ProductID.String()]
		if !ok {
			continue
		}
		value := price.Mul(decimal.NewFromInt(int64(v.Qty)))
		report.ValuationByClass[v.TempClass] = report.ValuationByClass[v.TempClass].Add(value)
		report.TotalValuation = report.TotalValuation.Add(value)
	}
	return report, nil
}
