package services

import (
	"sort"

	"stocktrack_backend/internal/models"
	"stocktrack_backend/internal/repositories"
)

type StatsService interface {
	InventoryStats() (*models.InventoryStats, error)
	MaterialShipmentStats() (*models.MaterialShipmentStats, error)
	OrderShipmentStats() (*models.OrderShipmentStats, error)
	InventoryImpact() (*models.InventoryImpact, error)
}

type statsService struct {
	statsRepo repositories.StatsRepository
}

// NewStatsService creates a new StatsService.
func NewStatsService(repo repositories.StatsRepository) StatsService {
	return &statsService{statsRepo: repo}
}

func (s *statsService) InventoryStats() (*models.InventoryStats, error) {
	return s.statsRepo.InventoryStats()
}

func (s *statsService) MaterialShipmentStats() (*models.MaterialShipmentStats, error) {
	return s.statsRepo.MaterialShipmentStats()
}

func (s *statsService) OrderShipmentStats() (*models.OrderShipmentStats, error) {
	return s.statsRepo.OrderShipmentStats()
}

// classifyStock grades a projected stock level against the item's minimum:
// at or below the minimum is low, within one and a half times the minimum
// is warning, anything above is normal.
func classifyStock(projected, minStockLevel int) string {
	switch {
	case projected <= minStockLevel:
		return models.StockStatusLow
	case float64(projected) <= float64(minStockLevel)*1.5:
		return models.StockStatusWarning
	default:
		return models.StockStatusNormal
	}
}

// InventoryImpact merges material shipment flow with current stock to
// forecast future stock levels. Only items referenced by at least one
// shipment appear; items referenced but missing from inventory show up as
// "Unknown" with zero current stock. Delivered flow moves the projection;
// in-transit (shipped) flow is reported but excluded from it.
func (s *statsService) InventoryImpact() (*models.InventoryImpact, error) {
	flows, err := s.statsRepo.ShipmentFlows()
	if err != nil {
		return nil, err
	}
	stocks, err := s.statsRepo.ItemStocks()
	if err != nil {
		return nil, err
	}

	stockByCode := make(map[string]repositories.ItemStock, len(stocks))
	for _, st := range stocks {
		stockByCode[st.Code] = st
	}

	impacts := make(map[string]*models.ItemImpact)
	for _, flow := range flows {
		impact, ok := impacts[flow.ItemCode]
		if !ok {
			impact = &models.ItemImpact{
				ItemCode:      flow.ItemCode,
				ItemName:      "Unknown",
				MinStockLevel: repositories.LowStockThreshold,
			}
			if st, known := stockByCode[flow.ItemCode]; known {
				impact.ItemName = st.Name
				impact.CurrentStock = st.Quantity
				impact.MinStockLevel = st.MinStockLevel
			}
			impacts[flow.ItemCode] = impact
		}

		inbound := flow.Type == models.ShipmentTypeInbound
		switch flow.Status {
		case models.ShipmentStatusDelivered:
			if inbound {
				impact.DeliveredInbound += flow.Quantity
			} else {
				impact.DeliveredOutbound += flow.Quantity
			}
		case models.ShipmentStatusShipped:
			if inbound {
				impact.PendingInbound += flow.Quantity
			} else {
				impact.PendingOutbound += flow.Quantity
			}
		}
	}

	report := &models.InventoryImpact{Items: []models.ItemImpact{}}
	for _, impact := range impacts {
		impact.ProjectedStock = impact.CurrentStock + impact.DeliveredInbound - impact.DeliveredOutbound
		impact.StockStatus = classifyStock(impact.ProjectedStock, impact.MinStockLevel)

		report.Summary.TotalItems++
		switch impact.StockStatus {
		case models.StockStatusLow:
			report.Summary.LowStockItems++
		case models.StockStatusWarning:
			report.Summary.WarningItems++
		}
		report.Summary.PendingInbound += impact.PendingInbound
		report.Summary.PendingOutbound += impact.PendingOutbound

		report.Items = append(report.Items, *impact)
	}
	sort.Slice(report.Items, func(i, j int) bool {
		return report.Items[i].ItemCode < report.Items[j].ItemCode
	})
	return report, nil
}
