// internal/tests/auth_test.go
package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/nightmare5831/sales-pipeline/internal/config"
	"github.com/nightmare5831/sales-pipeline/internal/handlers"
	"github.com/nightmare5831/sales-pipeline/internal/services"
)

type AuthTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (suite *AuthTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Environment: "test",
		JWT: config.JWTConfig{
			SecretKey:       "test-secret",
			AccessTokenTTL:  1,
			RefreshTokenTTL: 2,
		},
	}

	authService := services.NewAuthService(cfg)
	authHandler := handlers.NewAuthHandler(authService)

	suite.router = gin.New()
	auth := suite.router.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}
}

func (suite *AuthTestSuite) postJSON(path string, body map[string]interface{}) *httptest.ResponseRecorder {
	jsonData, _ := json.Marshal(body)
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AuthTestSuite) TestUserRegistration() {
	w := suite.postJSON("/auth/register", map[string]interface{}{
		"username": "testuser",
		"email":    "test@example.com",
		"password": "TestPass123!",
	})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), response["success"].(bool))

	data := response["data"].(map[string]interface{})
	assert.NotEmpty(suite.T(), data["token"])
	assert.Equal(suite.T(), "Bearer", data["token_type"])
}

func (suite *AuthTestSuite) TestDuplicateRegistrationRejected() {
	body := map[string]interface{}{
		"username": "testuser",
		"email":    "test@example.com",
		"password": "TestPass123!",
	}

	w := suite.postJSON("/auth/register", body)
	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	w = suite.postJSON("/auth/register", body)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *AuthTestSuite) TestWeakPasswordRejected() {
	w := suite.postJSON("/auth/register", map[string]interface{}{
		"username": "testuser",
		"email":    "test@example.com",
		"password": "weak",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *AuthTestSuite) TestUserLogin() {
	w := suite.postJSON("/auth/register", map[string]interface{}{
		"username": "testuser",
		"email":    "test@example.com",
		"password": "TestPass123!",
	})
	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	w = suite.postJSON("/auth/login", map[string]interface{}{
		"email":    "test@example.com",
		"password": "TestPass123!",
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), response["success"].(bool))
}

func (suite *AuthTestSuite) TestLoginWrongPassword() {
	w := suite.postJSON("/auth/register", map[string]interface{}{
		"username": "testuser",
		"email":    "test@example.com",
		"password": "TestPass123!",
	})
	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	w = suite.postJSON("/auth/login", map[string]interface{}{
		"email":    "test@example.com",
		"password": "WrongPass123!",
	})

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func TestAuthSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}
