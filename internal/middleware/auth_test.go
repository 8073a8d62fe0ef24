package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/icarusiftctts/campus-bus-backend/internal/tokens"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testTokenSvc() *tokens.Service {
	return tokens.NewService(tokens.Secrets{Passenger: "p", Operator: "o", Boarding: "b"})
}

func TestPassengerAuth_MissingHeader(t *testing.T) {
	router := gin.New()
	router.Use(PassengerAuth(testTokenSvc()))
	router.GET("/test", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "MISSING_CREDENTIALS")
}

func TestPassengerAuth_MalformedHeader(t *testing.T) {
	router := gin.New()
	router.Use(PassengerAuth(testTokenSvc()))
	router.GET("/test", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "MISSING_CREDENTIALS")
}

func TestPassengerAuth_InvalidToken(t *testing.T) {
	router := gin.New()
	router.Use(PassengerAuth(testTokenSvc()))
	router.GET("/test", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_TOKEN")
}

func TestPassengerAuth_RejectsOperatorToken(t *testing.T) {
	svc := testTokenSvc()
	operatorToken, err := svc.IssueOperatorSession("op-1", "EMP-001")
	assert.NoError(t, err)

	router := gin.New()
	router.Use(PassengerAuth(svc))
	router.GET("/test", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+operatorToken)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_TOKEN")
}

func TestPassengerAuth_SetsPassengerIDOnSuccess(t *testing.T) {
	svc := testTokenSvc()
	token, err := svc.IssuePassengerSession("passenger-1", "student@campus.edu")
	assert.NoError(t, err)

	router := gin.New()
	router.Use(PassengerAuth(svc))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(200, gin.H{"passengerId": c.GetString("passengerId")})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "passenger-1")
}

func TestOperatorAuth_SetsOperatorIDOnSuccess(t *testing.T) {
	svc := testTokenSvc()
	token, err := svc.IssueOperatorSession("op-1", "EMP-001")
	assert.NoError(t, err)

	router := gin.New()
	router.Use(OperatorAuth(svc))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(200, gin.H{"operatorId": c.GetString("operatorId")})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "op-1")
}
