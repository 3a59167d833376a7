// internal/pipeline/stages.go
package pipeline

import "github.com/nightmare5831/sales-pipeline/internal/models"

// DefaultStages is the fixed 12-stage catalog the board renders, in display
// order. Order is display-only; no stage implies a transition to another.
var DefaultStages = []StageDefinition{
	{ID: models.StageLeads, Title: "Leads"},
	{ID: models.StageFirstContact, Title: "First Contact"},
	{ID: models.StageNegotiation, Title: "Negotiation"},
	{ID: models.StageInvoice, Title: "Invoice"},
	{ID: models.StagePaid, Title: "Paid"},
	{ID: models.StageProductSourced, Title: "Product Sourced"},
	{ID: models.StageAwaitingShipment, Title: "Awaiting Shipment"},
	{ID: models.StageReadyToShip, Title: "Ready to Ship"},
	{ID: models.StageShipped, Title: "Shipped"},
	{ID: models.StageClosed, Title: "Closed"},
	{ID: models.StageDead, Title: "Dead"},
	{ID: models.StageFollowUp, Title: "Follow Up"},
}
