// internal/handlers/pipeline.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nightmare5831/sales-pipeline/internal/models"
	"github.com/nightmare5831/sales-pipeline/internal/pipeline"
	"github.com/nightmare5831/sales-pipeline/internal/utils"
)

type PipelineHandler struct {
	store *pipeline.Store
}

// CreateDealRequest is the add-deal form payload. Form-level validation
// (required fields, non-negative budget) happens here; the store itself
// keeps values as given.
type CreateDealRequest struct {
	Stage             models.PipelineStage `json:"stage" validate:"required"`
	MasterOrderNumber string               `json:"masterOrderNumber" validate:"required"`
	Contact           string               `json:"contact" validate:"required"`
	InterestedProduct string               `json:"interestedProduct" validate:"required"`
	EstimatedBudget   float64              `json:"estimatedBudget" validate:"min=0"`
}

// MoveDealRequest carries the resolved drop target of a drag gesture.
type MoveDealRequest struct {
	Stage models.PipelineStage `json:"stage" validate:"required"`
}

func NewPipelineHandler(store *pipeline.Store) *PipelineHandler {
	return &PipelineHandler{
		store: store,
	}
}

// GET /pipeline/stages
func (h *PipelineHandler) GetStages(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"stages": h.store.Stages(),
	})
}

// GET /pipeline/columns
func (h *PipelineHandler) GetBoard(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"columns": h.store.Columns(),
		"summary": h.store.Summary(),
	})
}

// GET /pipeline/summary
func (h *PipelineHandler) GetSummary(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"summary": h.store.Summary(),
	})
}

// GET /pipeline/deals
func (h *PipelineHandler) GetDeals(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"deals": h.store.Deals(),
	})
}

// GET /pipeline/deals/:id
func (h *PipelineHandler) GetDeal(c *gin.Context) {
	deal, found := h.store.Deal(c.Param("id"))
	if !found {
		utils.NotFoundResponse(c, "Deal")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"deal":        deal,
		"paid_ratio":  pipeline.PaidRatio(deal),
		"margin_tier": pipeline.MarginTier(deal),
	})
}

// POST /pipeline/deals
func (h *PipelineHandler) CreateDeal(c *gin.Context) {
	var req CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if !h.store.ValidStage(req.Stage) {
		utils.ErrorResponse(c, http.StatusBadRequest, "INVALID_STAGE",
			"unknown pipeline stage", gin.H{"stage": req.Stage})
		return
	}

	deal := h.store.AddDeal(pipeline.AddDealInput{
		Stage:             req.Stage,
		MasterOrderNumber: req.MasterOrderNumber,
		Contact:           req.Contact,
		InterestedProduct: req.InterestedProduct,
		EstimatedBudget:   req.EstimatedBudget,
	})

	utils.CreatedResponse(c, gin.H{
		"deal": deal,
	})
}

// PUT /pipeline/deals/:id/stage
func (h *PipelineHandler) MoveDeal(c *gin.Context) {
	var req MoveDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	deal, err := h.store.MoveDeal(c.Param("id"), req.Stage)
	if err != nil {
		var stageErr *pipeline.InvalidStageError
		if errors.As(err, &stageErr) {
			utils.ErrorResponse(c, http.StatusBadRequest, "INVALID_STAGE",
				stageErr.Error(), gin.H{"stage": stageErr.Stage})
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	// A nil deal means the id matched nothing: the move was abandoned, the
	// board is unchanged, and that is not an error.
	utils.SuccessResponse(c, gin.H{
		"deal":  deal,
		"moved": deal != nil,
	})
}
