// internal/pipeline/seed.go
package pipeline

import (
	"github.com/google/uuid"

	"github.com/nightmare5831/sales-pipeline/internal/models"
)

// SeedDemoDeals loads the demo book of business the board ships with. The
// service has no persistence, so this is how a fresh process gets a
// non-empty pipeline to render.
func SeedDemoDeals(s *Store) {
	s.mu.Lock()
	s.deals = append(s.deals, demoDeals()...)
	s.mu.Unlock()
}

func demoDeals() []models.Deal {
	return []models.Deal{
		{
			ID:                uuid.NewString(),
			MasterOrderNumber: "MON-2025-014",
			Stage:             models.StageLeads,
			Contact:           models.Contact{ID: uuid.NewString(), Name: "Marcus Chen", Initials: "MC"},
			InterestedProducts: []models.Product{
				{ID: uuid.NewString(), Name: "Rolex Submariner Date 126610LN", Quantity: 1, Price: 0, ImageURL: PlaceholderProductImage},
			},
			EstimatedBudget: 15500,
			Badges:          []models.DealBadge{},
		},
		{
			ID:                uuid.NewString(),
			MasterOrderNumber: "MON-2025-011",
			Stage:             models.StageNegotiation,
			Contact:           models.Contact{ID: uuid.NewString(), Name: "Sarah Whitfield", Initials: "SW"},
			InterestedProducts: []models.Product{
				{ID: uuid.NewString(), Name: "Omega Speedmaster Professional", Quantity: 1, Price: 7800, ImageURL: PlaceholderProductImage, Supplier: "Crown & Caliber"},
			},
			EstimatedBudget:  8000,
			TotalValue:       7800,
			Margin:           1680,
			MarginPercentage: 21.5,
			Badges:           []models.DealBadge{models.BadgeDomestic},
			ProductsCount:    1,
		},
		{
			ID:                uuid.NewString(),
			MasterOrderNumber: "MON-2025-008",
			Stage:             models.StageInvoice,
			Contact:           models.Contact{ID: uuid.NewString(), Name: "David Okafor", Initials: "DO"},
			InterestedProducts: []models.Product{
				{ID: uuid.NewString(), Name: "Audemars Piguet Royal Oak 15500ST", Quantity: 1, Price: 52000, ImageURL: PlaceholderProductImage, Supplier: "HK Watch Trading Co"},
			},
			TotalValue:       52000,
			Margin:           8300,
			MarginPercentage: 16,
			TradeInCredit:    -6500,
			Paid:             10000,
			TotalPaid:        45500,
			Badges:           []models.DealBadge{models.BadgeHongKong},
			ProductsCount:    1,
		},
		{
			ID:                uuid.NewString(),
			MasterOrderNumber: "MON-2025-005",
			Stage:             models.StageAwaitingShipment,
			Contact:           models.Contact{ID: uuid.NewString(), Name: "Emily Rodriguez", Initials: "ER"},
			InterestedProducts: []models.Product{
				{ID: uuid.NewString(), Name: "Tudor Black Bay 58", Quantity: 1, Price: 3900, ImageURL: PlaceholderProductImage},
				{ID: uuid.NewString(), Name: "Cartier Tank Must Large", Quantity: 1, Price: 3250, ImageURL: PlaceholderProductImage},
			},
			TotalValue:       7150,
			Margin:           980,
			MarginPercentage: 13.7,
			Paid:             7150,
			TotalPaid:        7150,
			ShipDate:         "2025-09-12",
			Badges:           []models.DealBadge{models.BadgeDomestic, models.BadgeDropship},
			ProductsCount:    2,
		},
		{
			ID:                uuid.NewString(),
			MasterOrderNumber: "MON-2025-002",
			Stage:             models.StageShipped,
			Contact:           models.Contact{ID: uuid.NewString(), Name: "James Park", Initials: "JP"},
			InterestedProducts: []models.Product{
				{ID: uuid.NewString(), Name: "Grand Seiko SBGA413 Shunbun", Quantity: 1, Price: 6200, ImageURL: PlaceholderProductImage, Supplier: "Seiya Japan"},
			},
			TotalValue:       6200,
			Margin:           1150,
			MarginPercentage: 18.5,
			Paid:             6200,
			TotalPaid:        6200,
			ShipDate:         "2025-08-21",
			Badges:           []models.DealBadge{models.BadgeDropship},
			ProductsCount:    1,
		},
		{
			ID:                uuid.NewString(),
			MasterOrderNumber: "MON-2024-187",
			Stage:             models.StageFollowUp,
			Contact:           models.Contact{ID: uuid.NewString(), Name: "Aisha Al-Mansouri", Initials: "AA"},
			InterestedProducts: []models.Product{
				{ID: uuid.NewString(), Name: "Patek Philippe Aquanaut 5167A", Quantity: 1, Price: 0, ImageURL: PlaceholderProductImage},
			},
			EstimatedBudget: 95000,
			Badges:          []models.DealBadge{models.BadgeHongKong},
		},
	}
}
