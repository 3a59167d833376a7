// internal/models/deal.go
package models

// Product is owned by the deal that lists it; it has no lifecycle of its own.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl"`
	Supplier string  `json:"supplier,omitempty"`
}

// Contact is a per-deal snapshot; contacts are not deduplicated across deals.
type Contact struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Initials  string `json:"initials"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// Deal field names follow the board client's wire format (camelCase).
// TotalValue, Margin and MarginPercentage are externally supplied facts;
// nothing in this service derives them from the product list.
type Deal struct {
	ID                 string        `json:"id"`
	MasterOrderNumber  string        `json:"masterOrderNumber"`
	Stage              PipelineStage `json:"stage"`
	Contact            Contact       `json:"contact"`
	InterestedProducts []Product     `json:"interestedProducts"`
	EstimatedBudget    float64       `json:"estimatedBudget"`
	TotalValue         float64       `json:"totalValue"`
	Margin             float64       `json:"margin"`
	MarginPercentage   float64       `json:"marginPercentage"`
	TradeInCredit      float64       `json:"tradeInCredit"`
	Paid               float64       `json:"paid"`
	TotalPaid          float64       `json:"totalPaid"`
	ShipDate           string        `json:"shipDate"`
	Badges             []DealBadge   `json:"badges"`
	// ProductsCount is a display override; it may diverge from
	// len(InterestedProducts) and is never reconciled against it.
	ProductsCount int `json:"productsCount"`
}

// PipelineColumn is the derived view of one stage of the board.
type PipelineColumn struct {
	ID         PipelineStage `json:"id"`
	Title      string        `json:"title"`
	DealCount  int           `json:"dealCount"`
	TotalValue float64       `json:"totalValue"`
	Deals      []Deal        `json:"deals"`
}

// PipelineSummary is the derived global aggregate across all deals.
type PipelineSummary struct {
	TotalPipeline float64 `json:"totalPipeline"`
	Margin        float64 `json:"margin"`
	DealCount     int     `json:"dealCount"`
}
