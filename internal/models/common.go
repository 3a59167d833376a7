// internal/models/common.go
package models

// Enums
type PipelineStage string

const (
	StageLeads            PipelineStage = "leads"
	StageFirstContact     PipelineStage = "first-contact"
	StageNegotiation      PipelineStage = "negotiation"
	StageInvoice          PipelineStage = "invoice"
	StagePaid             PipelineStage = "paid"
	StageProductSourced   PipelineStage = "product-sourced"
	StageAwaitingShipment PipelineStage = "awaiting-shipment"
	StageReadyToShip      PipelineStage = "ready-to-ship"
	StageShipped          PipelineStage = "shipped"
	StageClosed           PipelineStage = "closed"
	StageDead             PipelineStage = "dead"
	StageFollowUp         PipelineStage = "follow-up"
)

type DealBadge string

const (
	BadgeDomestic DealBadge = "DOM"
	BadgeHongKong DealBadge = "HK"
	BadgeDropship DealBadge = "DROPSHIP"
)

type MarginTier string

const (
	MarginTierHigh   MarginTier = "high"
	MarginTierMedium MarginTier = "medium"
	MarginTierLow    MarginTier = "low"
)

type PlanInterval string

const (
	PlanIntervalMonth PlanInterval = "month"
	PlanIntervalYear  PlanInterval = "year"
)

type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
)
