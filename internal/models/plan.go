// internal/models/plan.go
package models

// PricingPlan mirrors the subscription page's plan cards. Price is the
// monthly amount in whole dollars; the yearly amount is derived from it.
type PricingPlan struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         int      `json:"price"`
	Interval      string   `json:"interval"`
	StripePriceID string   `json:"stripePriceId"`
	Recommended   bool     `json:"recommended,omitempty"`
	Features      []string `json:"features"`
}
