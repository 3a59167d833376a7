// internal/tests/billing_test.go
package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/nightmare5831/sales-pipeline/internal/config"
	"github.com/nightmare5831/sales-pipeline/internal/handlers"
	"github.com/nightmare5831/sales-pipeline/internal/models"
	"github.com/nightmare5831/sales-pipeline/internal/services"
)

type BillingTestSuite struct {
	suite.Suite
	router  *gin.Engine
	billing *services.BillingService
}

func (suite *BillingTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	// No Stripe key: checkout sessions are stubbed.
	cfg := &config.Config{
		Environment: "test",
		Frontend:    config.FrontendConfig{BaseURL: "http://localhost:3000"},
	}

	suite.billing = services.NewBillingService(cfg)
	billingHandler := handlers.NewBillingHandler(suite.billing)

	suite.router = gin.New()
	billing := suite.router.Group("/billing")
	{
		billing.GET("/plans", billingHandler.GetPlans)
		billing.POST("/checkout-session", billingHandler.CreateCheckoutSession)
	}
}

func (suite *BillingTestSuite) TestGetPlans() {
	req, _ := http.NewRequest("GET", "/billing/plans", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(suite.T(), err)

	plans := response["data"].(map[string]interface{})["plans"].([]interface{})
	require.Len(suite.T(), plans, 3)

	professional := plans[1].(map[string]interface{})
	assert.Equal(suite.T(), "professional", professional["id"])
	assert.Equal(suite.T(), 99.0, professional["price"])
	assert.True(suite.T(), professional["recommended"].(bool))
}

func (suite *BillingTestSuite) TestYearlyDiscount() {
	plans := suite.billing.Plans()
	for _, plan := range plans {
		monthly := suite.billing.PlanPrice(plan, models.PlanIntervalMonth)
		yearly := suite.billing.PlanPrice(plan, models.PlanIntervalYear)
		assert.Equal(suite.T(), plan.Price, monthly)
		assert.Equal(suite.T(), plan.Price*80/100, yearly)
	}
}

func (suite *BillingTestSuite) TestCreateCheckoutSessionStub() {
	body, _ := json.Marshal(map[string]interface{}{
		"priceId":  "price_professional_monthly",
		"planId":   "professional",
		"interval": "month",
	})

	req, _ := http.NewRequest("POST", "/billing/checkout-session", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(suite.T(), err)

	// The subscription page reads sessionUrl from the body top level.
	sessionURL, ok := response["sessionUrl"].(string)
	require.True(suite.T(), ok)
	assert.True(suite.T(), strings.HasPrefix(sessionURL, "http://localhost:3000/"))
	assert.Contains(suite.T(), sessionURL, "plan=professional")
}

func (suite *BillingTestSuite) TestCheckoutSessionUnknownPlan() {
	body, _ := json.Marshal(map[string]interface{}{
		"priceId":  "price_unknown",
		"planId":   "free-forever",
		"interval": "month",
	})

	req, _ := http.NewRequest("POST", "/billing/checkout-session", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *BillingTestSuite) TestCheckoutSessionBadInterval() {
	body, _ := json.Marshal(map[string]interface{}{
		"priceId":  "price_professional_monthly",
		"planId":   "professional",
		"interval": "weekly",
	})

	req, _ := http.NewRequest("POST", "/billing/checkout-session", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func TestBillingSuite(t *testing.T) {
	suite.Run(t, new(BillingTestSuite))
}
