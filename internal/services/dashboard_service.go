// internal/services/dashboard_service.go
package services

// DashboardService serves the metrics the dashboard page renders. The
// numbers are mocked (there is no campaign backend in this scope) but the
// shapes match what a real analytics source would supply.
type DashboardService struct{}

type DashboardStats struct {
	TotalCampaigns  int              `json:"total_campaigns"`
	ActiveAds       int              `json:"active_ads"`
	TotalSpend      float64          `json:"total_spend"`
	ConversionRate  float64          `json:"conversion_rate"`
	RecentCampaigns []CampaignDigest `json:"recent_campaigns"`
}

type CampaignDigest struct {
	Name        string  `json:"name"`
	Status      string  `json:"status"`
	Budget      float64 `json:"budget"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
}

func NewDashboardService() *DashboardService {
	return &DashboardService{}
}

func (s *DashboardService) Stats() DashboardStats {
	return DashboardStats{
		TotalCampaigns: 12,
		ActiveAds:      24,
		TotalSpend:     2456,
		ConversionRate: 3.2,
		RecentCampaigns: []CampaignDigest{
			{Name: "Summer Sale 2025", Status: "active", Budget: 850, Impressions: 48210, Clicks: 1930},
			{Name: "New Arrivals Push", Status: "active", Budget: 620, Impressions: 31500, Clicks: 1104},
			{Name: "Retargeting: Cart Drops", Status: "paused", Budget: 410, Impressions: 18760, Clicks: 689},
			{Name: "Brand Awareness Q3", Status: "active", Budget: 576, Impressions: 92340, Clicks: 2871},
		},
	}
}
