// internal/handlers/billing.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nightmare5831/sales-pipeline/internal/services"
	"github.com/nightmare5831/sales-pipeline/internal/utils"
)

type BillingHandler struct {
	billingService *services.BillingService
}

func NewBillingHandler(billingService *services.BillingService) *BillingHandler {
	return &BillingHandler{
		billingService: billingService,
	}
}

// GET /billing/plans
func (h *BillingHandler) GetPlans(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"plans": h.billingService.Plans(),
	})
}

// POST /billing/checkout-session
func (h *BillingHandler) CreateCheckoutSession(c *gin.Context) {
	var req services.CheckoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	response, err := h.billingService.CreateCheckoutSession(&req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	// The subscription page reads sessionUrl from the top level of the
	// body and redirects to it; anything else means no redirect occurs.
	c.JSON(http.StatusOK, response)
}
