// internal/tests/pipeline_api_test.go
package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/nightmare5831/sales-pipeline/internal/handlers"
	"github.com/nightmare5831/sales-pipeline/internal/pipeline"
)

type PipelineAPITestSuite struct {
	suite.Suite
	router *gin.Engine
	store  *pipeline.Store
}

func (suite *PipelineAPITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	store, err := pipeline.New(pipeline.DefaultStages)
	require.NoError(suite.T(), err)
	suite.store = store

	pipelineHandler := handlers.NewPipelineHandler(store)

	suite.router = gin.New()
	board := suite.router.Group("/pipeline")
	{
		board.GET("/stages", pipelineHandler.GetStages)
		board.GET("/columns", pipelineHandler.GetBoard)
		board.GET("/summary", pipelineHandler.GetSummary)
		board.GET("/deals", pipelineHandler.GetDeals)
		board.GET("/deals/:id", pipelineHandler.GetDeal)
		board.POST("/deals", pipelineHandler.CreateDeal)
		board.PUT("/deals/:id/stage", pipelineHandler.MoveDeal)
	}
}

func (suite *PipelineAPITestSuite) request(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}

	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *PipelineAPITestSuite) decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(suite.T(), err)
	return response
}

func (suite *PipelineAPITestSuite) createDeal(contact string) string {
	w := suite.request("POST", "/pipeline/deals", map[string]interface{}{
		"stage":             "leads",
		"masterOrderNumber": "MON-2025-001",
		"contact":           contact,
		"interestedProduct": "Rolex Submariner",
		"estimatedBudget":   15000,
	})
	require.Equal(suite.T(), http.StatusCreated, w.Code)

	response := suite.decode(w)
	deal := response["data"].(map[string]interface{})["deal"].(map[string]interface{})
	return deal["id"].(string)
}

func (suite *PipelineAPITestSuite) TestGetStages() {
	w := suite.request("GET", "/pipeline/stages", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := suite.decode(w)
	stages := response["data"].(map[string]interface{})["stages"].([]interface{})
	assert.Len(suite.T(), stages, 12)

	first := stages[0].(map[string]interface{})
	assert.Equal(suite.T(), "leads", first["id"])
	assert.Equal(suite.T(), "Leads", first["title"])
}

func (suite *PipelineAPITestSuite) TestCreateDeal() {
	w := suite.request("POST", "/pipeline/deals", map[string]interface{}{
		"stage":             "leads",
		"masterOrderNumber": "MON-2025-001",
		"contact":           "John Smith",
		"interestedProduct": "Rolex Submariner",
		"estimatedBudget":   15000,
	})
	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	response := suite.decode(w)
	deal := response["data"].(map[string]interface{})["deal"].(map[string]interface{})

	assert.Equal(suite.T(), "leads", deal["stage"])
	assert.Equal(suite.T(), 0.0, deal["totalValue"])

	contact := deal["contact"].(map[string]interface{})
	assert.Equal(suite.T(), "JS", contact["initials"])

	products := deal["interestedProducts"].([]interface{})
	require.Len(suite.T(), products, 1)
	assert.Equal(suite.T(), "Rolex Submariner", products[0].(map[string]interface{})["name"])
}

func (suite *PipelineAPITestSuite) TestCreateDealMissingFields() {
	w := suite.request("POST", "/pipeline/deals", map[string]interface{}{
		"stage": "leads",
	})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *PipelineAPITestSuite) TestCreateDealUnknownStage() {
	w := suite.request("POST", "/pipeline/deals", map[string]interface{}{
		"stage":             "warehouse",
		"masterOrderNumber": "MON-2025-001",
		"contact":           "John Smith",
		"interestedProduct": "Rolex Submariner",
	})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	response := suite.decode(w)
	errObj := response["error"].(map[string]interface{})
	assert.Equal(suite.T(), "INVALID_STAGE", errObj["code"])
}

func (suite *PipelineAPITestSuite) TestMoveDeal() {
	dealID := suite.createDeal("John Smith")

	w := suite.request("PUT", "/pipeline/deals/"+dealID+"/stage", map[string]interface{}{
		"stage": "negotiation",
	})
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := suite.decode(w)
	data := response["data"].(map[string]interface{})
	assert.True(suite.T(), data["moved"].(bool))
	assert.Equal(suite.T(), "negotiation", data["deal"].(map[string]interface{})["stage"])
}

func (suite *PipelineAPITestSuite) TestMoveDealUnknownIDIsNoOp() {
	suite.createDeal("John Smith")

	w := suite.request("PUT", "/pipeline/deals/no-such-deal/stage", map[string]interface{}{
		"stage": "negotiation",
	})
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := suite.decode(w)
	data := response["data"].(map[string]interface{})
	assert.False(suite.T(), data["moved"].(bool))
	assert.Nil(suite.T(), data["deal"])
}

func (suite *PipelineAPITestSuite) TestMoveDealInvalidStage() {
	dealID := suite.createDeal("John Smith")

	w := suite.request("PUT", "/pipeline/deals/"+dealID+"/stage", map[string]interface{}{
		"stage": "not-a-real-stage",
	})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	response := suite.decode(w)
	errObj := response["error"].(map[string]interface{})
	assert.Equal(suite.T(), "INVALID_STAGE", errObj["code"])

	// Store unchanged
	deal, found := suite.store.Deal(dealID)
	require.True(suite.T(), found)
	assert.Equal(suite.T(), "leads", string(deal.Stage))
}

func (suite *PipelineAPITestSuite) TestBoardScenario() {
	ids := []string{
		suite.createDeal("John Smith"),
		suite.createDeal("Madonna"),
		suite.createDeal("Nina Petrova"),
	}

	w := suite.request("PUT", "/pipeline/deals/"+ids[1]+"/stage", map[string]interface{}{
		"stage": "negotiation",
	})
	require.Equal(suite.T(), http.StatusOK, w.Code)

	w = suite.request("GET", "/pipeline/columns", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := suite.decode(w)
	data := response["data"].(map[string]interface{})

	summary := data["summary"].(map[string]interface{})
	assert.Equal(suite.T(), 3.0, summary["dealCount"])

	counts := make(map[string]float64)
	for _, raw := range data["columns"].([]interface{}) {
		column := raw.(map[string]interface{})
		counts[column["id"].(string)] = column["dealCount"].(float64)
	}
	assert.Equal(suite.T(), 2.0, counts["leads"])
	assert.Equal(suite.T(), 1.0, counts["negotiation"])
}

func TestPipelineAPISuite(t *testing.T) {
	suite.Run(t, new(PipelineAPITestSuite))
}
